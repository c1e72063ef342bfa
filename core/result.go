package core

import "time"

// AgentResult records the outcome of one agent's sense/decide/act cycle
// within a step.
type AgentResult struct {
	// AgentID identifies the agent this result belongs to.
	AgentID string `json:"agent_id"`

	// Acted reports whether the agent's Decide produced an action that was
	// executed. False means the agent deliberately idled this step.
	Acted bool `json:"acted"`

	// Err carries the isolated failure of this agent's cycle, if any. A
	// non-nil value is always a *AgentUpdateError.
	Err error `json:"-"`
}

// Failed reports whether the agent's cycle ended in an isolated error.
func (r AgentResult) Failed() bool { return r.Err != nil }

// StepResult aggregates the outcomes of one completed step.
//
// StepNumber is monotonic and starts at 1; it increases by exactly 1 per
// completed step. AgentResults holds one entry per agent updated this round,
// in scheduler order.
type StepResult struct {
	StepNumber   int           `json:"step_number"`
	AgentResults []AgentResult `json:"agent_results"`
	Timestamp    time.Time     `json:"timestamp"`
	Duration     time.Duration `json:"duration"`
}

// FailureCount returns the number of agents whose cycle failed this step.
func (r StepResult) FailureCount() int {
	n := 0
	for _, ar := range r.AgentResults {
		if ar.Failed() {
			n++
		}
	}
	return n
}

// RunResult summarizes a completed or interrupted Run invocation.
type RunResult struct {
	// FinalStep is the value of the step counter when the run stopped.
	FinalStep int `json:"final_step"`

	// StepsRun is the number of steps executed by this Run invocation. It
	// differs from FinalStep when the engine had already stepped before.
	StepsRun int `json:"steps_run"`

	// State is the engine state when Run returned.
	State SimulationState `json:"state"`
}
