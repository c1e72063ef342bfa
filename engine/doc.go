// Package engine implements the simulation orchestrator of AgentSim.
//
// The Engine composes a scheduling strategy and an analytics collector with
// the live agent set and the world. It owns the run's state machine
// (CREATED -> INITIALIZED -> RUNNING <-> PAUSED -> COMPLETED), executes the
// step loop, evaluates stop conditions, and dispatches lifecycle events to
// registered observers.
//
// The engine is single-threaded and cooperative: one step executes fully
// before the next begins, agents are updated sequentially in scheduler order,
// and observers are notified synchronously in registration order. Agent-set
// mutations requested while a round is in progress (for example from inside
// an agent's Act or an observer) are deferred and take effect for the next
// step's scheduling.
package engine
