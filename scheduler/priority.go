package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/hupe1980/agentsim/core"
)

// Classifier maps an agent to a PriorityLevel. It receives the world so
// custom classifiers can triage on environmental conditions, not just agent
// state.
type Classifier func(agent core.Agent, world core.World) core.PriorityLevel

// DefaultClassifier triages purely on health ratio: below 10% is critical,
// below 30% is high, everything else is normal. PriorityLow is reserved for
// caller-supplied classifiers.
func DefaultClassifier(agent core.Agent, _ core.World) core.PriorityLevel {
	switch ratio := core.HealthRatio(agent); {
	case ratio < 0.1:
		return core.PriorityCritical
	case ratio < 0.3:
		return core.PriorityHigh
	default:
		return core.PriorityNormal
	}
}

// PriorityOptions configures a Priority strategy.
type PriorityOptions struct {
	// Classifier fully overrides DefaultClassifier when set.
	Classifier Classifier

	// ShuffleWithinLevel randomizes tie order inside each priority level.
	// When false, ties keep their input order (stable sort).
	ShuffleWithinLevel bool

	// ShuffleSeed fixes the within-level shuffle for reproducible tests.
	// Ignored unless ShuffleWithinLevel is set.
	ShuffleSeed *int64
}

// Priority classifies every agent into a PriorityLevel and updates lower
// levels first (critical before high before normal before low).
type Priority struct {
	Hooks
	classify Classifier
	shuffle  bool
	rng      *rand.Rand
}

// NewPriority creates a Priority strategy with optional configuration.
func NewPriority(optFns ...func(o *PriorityOptions)) *Priority {
	opts := PriorityOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	classify := opts.Classifier
	if classify == nil {
		classify = DefaultClassifier
	}

	var rng *rand.Rand
	if opts.ShuffleWithinLevel {
		seed := time.Now().UnixNano()
		if opts.ShuffleSeed != nil {
			seed = *opts.ShuffleSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Priority{classify: classify, shuffle: opts.ShuffleWithinLevel, rng: rng}
}

// UpdateOrder returns the agents sorted ascending by priority level. The sort
// is stable, so without within-level shuffling ties keep their input order.
func (s *Priority) UpdateOrder(agents []core.Agent, world core.World) []core.Agent {
	out := clone(agents)
	levels := make(map[string]core.PriorityLevel, len(out))
	for _, a := range out {
		levels[a.ID()] = s.classify(a, world)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return levels[out[i].ID()] < levels[out[j].ID()]
	})

	if s.shuffle {
		s.shuffleLevels(out, levels)
	}
	return out
}

// shuffleLevels randomizes each contiguous run of equal-level agents in place.
func (s *Priority) shuffleLevels(agents []core.Agent, levels map[string]core.PriorityLevel) {
	start := 0
	for i := 1; i <= len(agents); i++ {
		if i == len(agents) || levels[agents[i].ID()] != levels[agents[start].ID()] {
			run := agents[start:i]
			s.rng.Shuffle(len(run), func(a, b int) {
				run[a], run[b] = run[b], run[a]
			})
			start = i
		}
	}
}

// Name identifies the strategy and its configuration.
func (s *Priority) Name() string {
	return fmt.Sprintf("Priority(shuffle=%t)", s.shuffle)
}
