package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/agentsim/core"
)

// RandomOptions configures a Random strategy.
type RandomOptions struct {
	// Seed fixes the shuffle sequence. When nil the strategy draws from a
	// non-reproducible entropy source.
	Seed *int64
}

// WithSeed returns an option that fixes the shuffle seed.
func WithSeed(seed int64) func(o *RandomOptions) {
	return func(o *RandomOptions) { o.Seed = &seed }
}

// Random returns a shuffled permutation of the agent set on every call.
//
// Reproducibility contract: a seeded Random holds ONE generator, seeded once
// at construction and advanced across calls. Two instances constructed with
// the same seed and fed the same agent sets produce the same full sequence of
// orderings; an individual call is only reproducible as part of that
// sequence, not in isolation.
type Random struct {
	Hooks
	seed *int64
	rng  *rand.Rand
}

// NewRandom creates a Random strategy with optional configuration.
func NewRandom(optFns ...func(o *RandomOptions)) *Random {
	opts := RandomOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	return &Random{
		seed: opts.Seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// UpdateOrder returns a shuffled copy of the agent set.
func (s *Random) UpdateOrder(agents []core.Agent, _ core.World) []core.Agent {
	out := clone(agents)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Name identifies the strategy and its configuration.
func (s *Random) Name() string {
	if s.seed != nil {
		return fmt.Sprintf("Random(seed=%d)", *s.seed)
	}
	return "Random"
}
