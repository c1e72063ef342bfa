// Package logging provides a minimal logging interface and adapters for AgentSim.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the engine, schedulers and analytics use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SimLogger with contextual helpers and simulation-specific log methods
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	eng := engine.New(world, engine.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
