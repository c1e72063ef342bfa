package scheduler

import "github.com/hupe1980/agentsim/core"

// Strategy produces the per-step update ordering over the live agent set.
//
// Implementations must:
//   - Return a permutation of the input (same agents, same count)
//   - Never mutate the input slice
//   - Complete synchronously; orderings are consumed in a single pass
//
// The lifecycle hooks bracket every engine step and allow a strategy to carry
// state across steps (update counters, per-step caches). Strategies with no
// such state embed Hooks for no-op implementations.
type Strategy interface {
	// UpdateOrder returns the order in which agents are updated this step.
	UpdateOrder(agents []core.Agent, world core.World) []core.Agent

	// Name returns a human-readable identifier including relevant
	// configuration, used for diagnostics and adaptive introspection.
	Name() string

	// OnStepStart is invoked by the engine before a step executes.
	OnStepStart(step int)

	// OnStepEnd is invoked by the engine after a step completed.
	OnStepEnd(step int)
}

// Hooks provides no-op lifecycle hook implementations. Embed it in strategies
// that carry no cross-step state.
type Hooks struct{}

// OnStepStart is a no-op.
func (Hooks) OnStepStart(int) {}

// OnStepEnd is a no-op.
func (Hooks) OnStepEnd(int) {}

// clone returns a shallow copy of the agent slice so strategies never alias
// or mutate the engine's snapshot.
func clone(agents []core.Agent) []core.Agent {
	out := make([]core.Agent, len(agents))
	copy(out, agents)
	return out
}
