package core

import "fmt"

// ConfigurationError reports an invalid SimulationConfig. It is returned by
// Initialize and never silently clamped away.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// StateError reports an operation invoked from a state that does not permit
// it, for example Step on a completed engine.
type StateError struct {
	Op      string
	Current SimulationState
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("operation %s not permitted in state %s", e.Op, e.Current)
}

// AgentUpdateError wraps a failure raised from a single agent's
// sense/decide/act cycle. It is caught and isolated at the per-agent
// boundary: the error is recorded in the step's AgentResult, optionally
// logged, and the remainder of the round proceeds.
type AgentUpdateError struct {
	AgentID string
	Step    int
	Phase   string // "sense", "decide" or "act"
	Cause   error
}

// Error implements the error interface.
func (e *AgentUpdateError) Error() string {
	return fmt.Sprintf("agent %s failed during %s at step %d: %v", e.AgentID, e.Phase, e.Step, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *AgentUpdateError) Unwrap() error { return e.Cause }
