package testutil

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentsim/core"
)

// StubAgent is a deterministic core.Agent implementation for tests. Its
// sense/decide/act behavior is configurable through the builder; by default
// every step senses nothing, decides to act, and acts successfully.
type StubAgent struct {
	id        string
	health    float64
	maxHealth float64
	energy    float64
	maxEnergy float64
	wealth    float64
	faction   string

	decide func(data core.SensorData) (core.Action, bool)
	act    func(action core.Action, world core.World) error

	mu       sync.Mutex
	actCalls int
}

// ID returns the agent identifier.
func (a *StubAgent) ID() string { return a.id }

// Health returns the configured current health.
func (a *StubAgent) Health() float64 { return a.health }

// MaxHealth returns the configured maximum health.
func (a *StubAgent) MaxHealth() float64 { return a.maxHealth }

// Energy returns the configured current energy.
func (a *StubAgent) Energy() float64 { return a.energy }

// MaxEnergy returns the configured maximum energy.
func (a *StubAgent) MaxEnergy() float64 { return a.maxEnergy }

// Wealth returns the configured wealth, for analytics wealth lookups.
func (a *StubAgent) Wealth() float64 { return a.wealth }

// Faction returns the configured faction, for membership lookups.
func (a *StubAgent) Faction() string { return a.faction }

// Sense returns the agent ID as its perception.
func (a *StubAgent) Sense(_ core.World) core.SensorData { return a.id }

// Decide runs the configured decision function.
func (a *StubAgent) Decide(data core.SensorData) (core.Action, bool) {
	if a.decide != nil {
		return a.decide(data)
	}
	return "noop", true
}

// Act runs the configured act function and counts the invocation.
func (a *StubAgent) Act(action core.Action, world core.World) error {
	a.mu.Lock()
	a.actCalls++
	a.mu.Unlock()

	if a.act != nil {
		return a.act(action, world)
	}
	return nil
}

// ActCalls returns how many times Act has been invoked.
func (a *StubAgent) ActCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.actCalls
}

// SetHealth mutates current health, for scenarios where health changes
// between steps.
func (a *StubAgent) SetHealth(h float64) { a.health = h }

// AgentBuilder provides a fluent helper for constructing stub agents in tests.
// Example:
//
//	a := testutil.NewAgentBuilder().ID("a1").Health(5, 100).Faction("red").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type AgentBuilder struct {
	agent StubAgent
}

// NewAgentBuilder creates a builder with a healthy default agent.
func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{agent: StubAgent{
		id:        "agent",
		health:    100,
		maxHealth: 100,
		energy:    50,
		maxEnergy: 50,
	}}
}

// ID sets the agent identifier (chainable).
func (b *AgentBuilder) ID(id string) *AgentBuilder { b.agent.id = id; return b }

// Health sets current and maximum health (chainable).
func (b *AgentBuilder) Health(current, max float64) *AgentBuilder {
	b.agent.health = current
	b.agent.maxHealth = max
	return b
}

// Energy sets current and maximum energy (chainable).
func (b *AgentBuilder) Energy(current, max float64) *AgentBuilder {
	b.agent.energy = current
	b.agent.maxEnergy = max
	return b
}

// Wealth sets the agent's wealth (chainable).
func (b *AgentBuilder) Wealth(w float64) *AgentBuilder { b.agent.wealth = w; return b }

// Faction sets the agent's faction membership (chainable).
func (b *AgentBuilder) Faction(f string) *AgentBuilder { b.agent.faction = f; return b }

// DecideFunc overrides the decision behavior (chainable).
func (b *AgentBuilder) DecideFunc(fn func(data core.SensorData) (core.Action, bool)) *AgentBuilder {
	b.agent.decide = fn
	return b
}

// ActFunc overrides the act behavior (chainable).
func (b *AgentBuilder) ActFunc(fn func(action core.Action, world core.World) error) *AgentBuilder {
	b.agent.act = fn
	return b
}

// Idle configures the agent to never produce an action (chainable).
func (b *AgentBuilder) Idle() *AgentBuilder {
	b.agent.decide = func(core.SensorData) (core.Action, bool) { return nil, false }
	return b
}

// Build returns the constructed stub agent.
func (b *AgentBuilder) Build() *StubAgent {
	return &StubAgent{
		id:        b.agent.id,
		health:    b.agent.health,
		maxHealth: b.agent.maxHealth,
		energy:    b.agent.energy,
		maxEnergy: b.agent.maxEnergy,
		wealth:    b.agent.wealth,
		faction:   b.agent.faction,
		decide:    b.agent.decide,
		act:       b.agent.act,
	}
}

// Agents builds n healthy agents with IDs prefix-1..prefix-n.
func Agents(prefix string, n int) []core.Agent {
	out := make([]core.Agent, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewAgentBuilder().ID(fmt.Sprintf("%s-%d", prefix, i)).Build())
	}
	return out
}

// StubWorld is a minimal core.World implementation that counts updates and
// can be configured to fail.
type StubWorld struct {
	mu      sync.Mutex
	updates int

	// Err is returned from Update when set.
	Err error
}

// Update counts the invocation and returns the configured error.
func (w *StubWorld) Update() error {
	w.mu.Lock()
	w.updates++
	w.mu.Unlock()

	return w.Err
}

// Updates returns how many times Update has been invoked.
func (w *StubWorld) Updates() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.updates
}
