package scheduler

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentsim/core"
)

// RoundRobin emits the full agent set once per call in input order. With
// update tracking enabled it additionally maintains a cumulative per-agent
// count of how many times each agent has appeared in an emitted ordering,
// useful for fairness auditing over long runs.
type RoundRobin struct {
	Hooks
	track  bool
	mu     sync.Mutex
	counts map[string]int
}

// NewRoundRobin creates a RoundRobin strategy. Counting is only performed
// when trackUpdates is true.
func NewRoundRobin(trackUpdates bool) *RoundRobin {
	return &RoundRobin{track: trackUpdates, counts: make(map[string]int)}
}

// UpdateOrder returns the agents in input order, recording one appearance per
// agent when tracking is enabled.
func (s *RoundRobin) UpdateOrder(agents []core.Agent, _ core.World) []core.Agent {
	out := clone(agents)
	if s.track {
		s.mu.Lock()
		for _, a := range out {
			s.counts[a.ID()]++
		}
		s.mu.Unlock()
	}
	return out
}

// UpdateCount returns the cumulative number of emitted orderings that
// included the agent. Always 0 when tracking is disabled.
func (s *RoundRobin) UpdateCount(a core.Agent) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts[a.ID()]
}

// ResetCounts clears all per-agent counts.
func (s *RoundRobin) ResetCounts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts = make(map[string]int)
}

// Name identifies the strategy and its configuration.
func (s *RoundRobin) Name() string {
	return fmt.Sprintf("RoundRobin(track=%t)", s.track)
}
