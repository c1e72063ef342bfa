package scheduler

import "github.com/hupe1980/agentsim/core"

// SequentialOptions configures a Sequential strategy.
type SequentialOptions struct {
	// Reverse emits the agents in reversed input order.
	Reverse bool
}

// Sequential returns agents in their input order, or reversed when
// configured. It is fully deterministic and O(n) per call.
type Sequential struct {
	Hooks
	reverse bool
}

// NewSequential creates a Sequential strategy with optional configuration.
func NewSequential(optFns ...func(o *SequentialOptions)) *Sequential {
	opts := SequentialOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Sequential{reverse: opts.Reverse}
}

// UpdateOrder returns the input order, reversed if configured.
func (s *Sequential) UpdateOrder(agents []core.Agent, _ core.World) []core.Agent {
	out := clone(agents)
	if s.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Name identifies the strategy and its configuration.
func (s *Sequential) Name() string {
	if s.reverse {
		return "Sequential(reversed)"
	}
	return "Sequential"
}
