package scheduler

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// AdaptiveOptions configures an Adaptive strategy.
type AdaptiveOptions struct {
	// PopulationThreshold is the agent count above which Random is selected
	// to keep per-step cost and fairness acceptable at scale. Default 100.
	PopulationThreshold int

	// LowHealthRatio is the health ratio below which an agent counts as low
	// health for conflict detection. Default 0.3.
	LowHealthRatio float64

	// LowHealthFraction is the fraction of low-health agents (a proxy for
	// conflict) above which Priority is selected. Default 0.3.
	LowHealthFraction float64

	// Random is the strategy used for large populations. Defaults to
	// NewRandom().
	Random Strategy

	// Priority is the strategy used under conflict. Defaults to
	// NewPriority().
	Priority Strategy

	// Default is the strategy used when no heuristic fires. Defaults to
	// NewSequential().
	Default Strategy
}

// Adaptive holds several concrete strategies and selects one per call by a
// fixed heuristic over the current population: large populations favor
// Random, a high fraction of low-health agents favors Priority, otherwise the
// configured default runs. Name reflects the most recent selection.
type Adaptive struct {
	popThreshold      int
	lowHealthRatio    float64
	lowHealthFraction float64
	random            Strategy
	priority          Strategy
	fallback          Strategy
	last              Strategy
}

// NewAdaptive creates an Adaptive strategy with optional configuration.
func NewAdaptive(optFns ...func(o *AdaptiveOptions)) *Adaptive {
	opts := AdaptiveOptions{
		PopulationThreshold: 100,
		LowHealthRatio:      0.3,
		LowHealthFraction:   0.3,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Random == nil {
		opts.Random = NewRandom()
	}
	if opts.Priority == nil {
		opts.Priority = NewPriority()
	}
	if opts.Default == nil {
		opts.Default = NewSequential()
	}

	return &Adaptive{
		popThreshold:      opts.PopulationThreshold,
		lowHealthRatio:    opts.LowHealthRatio,
		lowHealthFraction: opts.LowHealthFraction,
		random:            opts.Random,
		priority:          opts.Priority,
		fallback:          opts.Default,
	}
}

// UpdateOrder selects a concrete strategy for the current population and
// delegates ordering to it.
func (s *Adaptive) UpdateOrder(agents []core.Agent, world core.World) []core.Agent {
	s.last = s.selectStrategy(agents)
	return s.last.UpdateOrder(agents, world)
}

func (s *Adaptive) selectStrategy(agents []core.Agent) Strategy {
	if len(agents) > s.popThreshold {
		return s.random
	}
	if len(agents) > 0 {
		low := 0
		for _, a := range agents {
			if core.HealthRatio(a) < s.lowHealthRatio {
				low++
			}
		}
		if float64(low)/float64(len(agents)) > s.lowHealthFraction {
			return s.priority
		}
	}
	return s.fallback
}

// Name reflects the most recently selected concrete strategy. Before the
// first call it reports the configured default.
func (s *Adaptive) Name() string {
	selected := s.last
	if selected == nil {
		selected = s.fallback
	}
	return fmt.Sprintf("Adaptive(%s)", selected.Name())
}

// OnStepStart forwards the hook to all held strategies so any of them may
// carry state across steps.
func (s *Adaptive) OnStepStart(step int) {
	s.random.OnStepStart(step)
	s.priority.OnStepStart(step)
	s.fallback.OnStepStart(step)
}

// OnStepEnd forwards the hook to all held strategies.
func (s *Adaptive) OnStepEnd(step int) {
	s.random.OnStepEnd(step)
	s.priority.OnStepEnd(step)
	s.fallback.OnStepEnd(step)
}
