package analytics

import (
	"sync"

	"github.com/hupe1980/agentsim/core"
)

// DefaultStepWindow bounds how many per-step aggregates the collector
// retains. Agent-level aggregates are always kept for the whole run.
const DefaultStepWindow = 1000

// WealthFunc extracts an agent's wealth for distribution analytics.
type WealthFunc func(agent core.Agent) float64

// KillsFunc extracts an agent's cumulative kill count.
type KillsFunc func(agent core.Agent) int

// wealthProvider is the optional capability the default WealthFunc probes
// for; agents without it report zero wealth.
type wealthProvider interface{ Wealth() float64 }

// killsProvider is the optional capability the default KillsFunc probes for.
type killsProvider interface{ Kills() int }

// CollectorOptions configures a Collector.
type CollectorOptions struct {
	// StepWindow limits retained per-step statistics to the most recent N
	// steps. 0 retains everything. Defaults to DefaultStepWindow.
	StepWindow int

	// Wealth overrides the default wealth lookup (a type probe for a
	// Wealth() float64 method).
	Wealth WealthFunc

	// Kills overrides the default kill-count lookup (a type probe for a
	// Kills() int method).
	Kills KillsFunc
}

// Collector incrementally folds step results and agent snapshots into
// running aggregates and answers pull-based summary queries. All methods are
// safe for concurrent use, though the engine drives it single-threaded.
type Collector struct {
	mu         sync.Mutex
	stepWindow int
	wealthFn   WealthFunc
	killsFn    KillsFunc

	totalSteps int
	agents     map[string]*AgentStatistics
	steps      []StepStatistics
}

// NewCollector creates a Collector with optional configuration.
func NewCollector(optFns ...func(o *CollectorOptions)) *Collector {
	opts := CollectorOptions{StepWindow: DefaultStepWindow}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Wealth == nil {
		opts.Wealth = func(a core.Agent) float64 {
			if p, ok := a.(wealthProvider); ok {
				return p.Wealth()
			}
			return 0
		}
	}
	if opts.Kills == nil {
		opts.Kills = func(a core.Agent) int {
			if p, ok := a.(killsProvider); ok {
				return p.Kills()
			}
			return 0
		}
	}

	return &Collector{
		stepWindow: opts.StepWindow,
		wealthFn:   opts.Wealth,
		killsFn:    opts.Kills,
		agents:     make(map[string]*AgentStatistics),
	}
}

// RecordStep folds one completed step into the running aggregates. The agents
// slice is the live set the step operated on, in scheduler order; the result
// carries one outcome per agent.
func (c *Collector) RecordStep(result core.StepResult, agents []core.Agent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcomes := make(map[string]core.AgentResult, len(result.AgentResults))
	for _, ar := range result.AgentResults {
		outcomes[ar.AgentID] = ar
	}

	acted := 0
	for _, a := range agents {
		stats := c.agents[a.ID()]
		if stats == nil {
			stats = &AgentStatistics{AgentID: a.ID(), FirstStep: result.StepNumber}
			c.agents[a.ID()] = stats
		}

		stats.StepsSeen++
		stats.LastHealth = a.Health()
		stats.LastEnergy = a.Energy()
		stats.Wealth = c.wealthFn(a)
		stats.Kills = c.killsFn(a)

		if outcome, ok := outcomes[a.ID()]; ok {
			if outcome.Acted {
				stats.Actions++
				acted++
			}
			if outcome.Failed() {
				stats.Failures++
			}
		}
	}

	c.totalSteps++
	c.steps = append(c.steps, StepStatistics{
		StepNumber: result.StepNumber,
		AgentCount: len(agents),
		ActedCount: acted,
		Failures:   result.FailureCount(),
		AliveCount: len(agents),
		Timestamp:  result.Timestamp,
		Duration:   result.Duration,
	})
	if c.stepWindow > 0 && len(c.steps) > c.stepWindow {
		c.steps = c.steps[len(c.steps)-c.stepWindow:]
	}
}

// MarkDead records the step at which an agent left the live set. Unknown
// agents get a statistics entry so externally-created-and-killed agents still
// appear in survival analysis. Marking an already dead agent is a no-op.
func (c *Collector) MarkDead(agentID string, step int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.agents[agentID]
	if stats == nil {
		stats = &AgentStatistics{AgentID: agentID, FirstStep: step}
		c.agents[agentID] = stats
	}
	if stats.DeathStep == nil {
		s := step
		stats.DeathStep = &s
	}
}

// AgentStats returns a copy of the per-agent running aggregates keyed by
// agent ID.
func (c *Collector) AgentStats() map[string]*AgentStatistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]*AgentStatistics, len(c.agents))
	for id, stats := range c.agents {
		s := *stats
		if stats.DeathStep != nil {
			d := *stats.DeathStep
			s.DeathStep = &d
		}
		out[id] = &s
	}
	return out
}

// StepStats returns the retained per-step statistics, oldest first.
func (c *Collector) StepStats() []StepStatistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]StepStatistics, len(c.steps))
	copy(out, c.steps)
	return out
}

// Summary answers the pull-based summary query over everything observed so
// far.
func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Summary{
		TotalSteps: c.totalSteps,
		AgentsSeen: len(c.agents),
	}
	for _, stats := range c.agents {
		if stats.Alive() {
			s.AgentsAlive++
		}
		s.TotalActions += stats.Actions
		s.TotalFailures += stats.Failures
	}
	return s
}
