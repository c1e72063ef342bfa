package core

// SensorData is the opaque perception payload an agent produces from Sense and
// consumes in Decide. The engine never inspects it; its concrete shape is a
// contract between an agent implementation and its decision policy.
type SensorData any

// Action is the opaque decision payload returned by Decide and executed by
// Act. As with SensorData, the engine treats it as pass-through data.
type Action any

// Agent defines the capability contract every simulated entity must implement
// to participate in a run.
//
// Agents are external collaborators: the engine holds a non-owning reference
// set and drives each agent through one Sense -> Decide -> Act cycle per step.
// Creation and death are driven by the host via Engine.AddAgent and
// Engine.RemoveAgent, never by the engine itself.
//
// Implementations must:
//   - Return a stable, unique ID for the lifetime of the agent
//   - Report health and energy as current/maximum pairs (maximums > 0)
//   - Tolerate Act being skipped entirely when Decide yields no action
type Agent interface {
	// ID returns the stable unique identifier of the agent.
	ID() string

	// Health returns the agent's current health.
	Health() float64

	// MaxHealth returns the agent's maximum health. Must be positive.
	MaxHealth() float64

	// Energy returns the agent's current energy.
	Energy() float64

	// MaxEnergy returns the agent's maximum energy. Must be positive.
	MaxEnergy() float64

	// Sense observes the world and returns the agent's perception of it.
	Sense(world World) SensorData

	// Decide maps a perception to an action. The boolean reports whether an
	// action was chosen; when false the engine skips Act for this step.
	Decide(data SensorData) (Action, bool)

	// Act executes the chosen action against the world. Errors are isolated
	// to the agent and recorded; they never abort the remainder of the round.
	Act(action Action, world World) error
}

// World is the minimal contract the engine requires from the shared
// environment: a single per-step mutation entry point, invoked exactly once
// after every agent in the round has been updated. The engine assumes nothing
// else about the world; agents receive it verbatim in Sense and Act.
type World interface {
	// Update advances the world by one step.
	Update() error
}

// HealthRatio returns the agent's current health as a fraction of its
// maximum, clamped to a non-negative value. A non-positive maximum yields 0.
func HealthRatio(a Agent) float64 {
	max := a.MaxHealth()
	if max <= 0 {
		return 0
	}
	ratio := a.Health() / max
	if ratio < 0 {
		return 0
	}
	return ratio
}
