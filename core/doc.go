// Package core provides the foundational domain types, interfaces and
// contracts used by AgentSim. It defines the core abstractions for:
//
//   - Agents (external sense/decide/act entities referenced by the engine)
//   - Worlds (the shared environment, mutated once per step)
//   - Events (immutable lifecycle + step records delivered to observers)
//   - Simulation configuration and the run state machine states
//   - Step results and per-agent outcomes
//
// The package intentionally keeps implementation concerns (scheduling,
// analytics, engine orchestration) out of scope, exposing small interfaces to
// enable custom agent and world implementations. All exported identifiers
// include concise documentation to aid discoverability and external
// consumption.
package core
