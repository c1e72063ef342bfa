package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/internal/testutil"
)

func TestPriority_CriticalFirst(t *testing.T) {
	healthy := testutil.NewAgentBuilder().ID("healthy").Health(90, 100).Build()
	critical := testutil.NewAgentBuilder().ID("critical").Health(5, 100).Build()
	wounded := testutil.NewAgentBuilder().ID("wounded").Health(25, 100).Build()

	s := NewPriority()
	order := s.UpdateOrder([]core.Agent{healthy, critical, wounded}, &testutil.StubWorld{})

	assert.Equal(t, []string{"critical", "wounded", "healthy"}, agentIDs(order))
}

func TestPriority_StableWithinLevel(t *testing.T) {
	a := testutil.NewAgentBuilder().ID("a").Health(80, 100).Build()
	b := testutil.NewAgentBuilder().ID("b").Health(60, 100).Build()
	c := testutil.NewAgentBuilder().ID("c").Health(95, 100).Build()

	s := NewPriority()
	order := s.UpdateOrder([]core.Agent{a, b, c}, &testutil.StubWorld{})

	// All three are normal priority; ties keep input order.
	assert.Equal(t, []string{"a", "b", "c"}, agentIDs(order))
}

func TestPriority_CustomClassifier(t *testing.T) {
	a := testutil.NewAgentBuilder().ID("a").Build()
	b := testutil.NewAgentBuilder().ID("b").Build()

	// Custom classifier fully overrides the default: "b" becomes critical
	// despite full health.
	s := NewPriority(func(o *PriorityOptions) {
		o.Classifier = func(agent core.Agent, _ core.World) core.PriorityLevel {
			if agent.ID() == "b" {
				return core.PriorityCritical
			}
			return core.PriorityLow
		}
	})
	order := s.UpdateOrder([]core.Agent{a, b}, &testutil.StubWorld{})

	assert.Equal(t, []string{"b", "a"}, agentIDs(order))
}

func TestPriority_ShuffleWithinLevelIsPermutation(t *testing.T) {
	agents := testutil.Agents("agent", 12)

	seed := int64(3)
	s := NewPriority(func(o *PriorityOptions) {
		o.ShuffleWithinLevel = true
		o.ShuffleSeed = &seed
	})
	order := s.UpdateOrder(agents, &testutil.StubWorld{})

	assertPermutation(t, agents, order)
}

func TestPriority_ShuffleKeepsLevelBoundaries(t *testing.T) {
	critical := testutil.NewAgentBuilder().ID("critical").Health(1, 100).Build()
	agents := append(testutil.Agents("agent", 6), critical)

	seed := int64(11)
	s := NewPriority(func(o *PriorityOptions) {
		o.ShuffleWithinLevel = true
		o.ShuffleSeed = &seed
	})
	order := s.UpdateOrder(agents, &testutil.StubWorld{})

	assert.Equal(t, "critical", order[0].ID())
	assertPermutation(t, agents, order)
}

func TestDefaultClassifier(t *testing.T) {
	world := &testutil.StubWorld{}

	tests := []struct {
		name   string
		health float64
		want   core.PriorityLevel
	}{
		{"critical below 10 percent", 5, core.PriorityCritical},
		{"high below 30 percent", 25, core.PriorityHigh},
		{"normal otherwise", 90, core.PriorityNormal},
		{"boundary 10 percent is high", 10, core.PriorityHigh},
		{"boundary 30 percent is normal", 30, core.PriorityNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.NewAgentBuilder().ID("a").Health(tt.health, 100).Build()
			assert.Equal(t, tt.want, DefaultClassifier(a, world))
		})
	}
}

func TestPriority_Name(t *testing.T) {
	assert.Equal(t, "Priority(shuffle=false)", NewPriority().Name())
	assert.Equal(t, "Priority(shuffle=true)", NewPriority(func(o *PriorityOptions) { o.ShuffleWithinLevel = true }).Name())
}
