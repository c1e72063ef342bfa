package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/agentsim/internal/testutil"
)

func TestRoundRobin_TracksUpdateCounts(t *testing.T) {
	agents := testutil.Agents("agent", 3)
	world := &testutil.StubWorld{}

	s := NewRoundRobin(true)
	const calls = 5
	for i := 0; i < calls; i++ {
		order := s.UpdateOrder(agents, world)
		assertPermutation(t, agents, order)
	}

	for _, a := range agents {
		assert.Equal(t, calls, s.UpdateCount(a))
	}
}

func TestRoundRobin_ResetCounts(t *testing.T) {
	agents := testutil.Agents("agent", 3)

	s := NewRoundRobin(true)
	s.UpdateOrder(agents, &testutil.StubWorld{})
	s.ResetCounts()

	for _, a := range agents {
		assert.Equal(t, 0, s.UpdateCount(a))
	}
}

func TestRoundRobin_TrackingDisabled(t *testing.T) {
	agents := testutil.Agents("agent", 2)

	s := NewRoundRobin(false)
	s.UpdateOrder(agents, &testutil.StubWorld{})

	assert.Equal(t, 0, s.UpdateCount(agents[0]))
}

func TestRoundRobin_Name(t *testing.T) {
	assert.Equal(t, "RoundRobin(track=true)", NewRoundRobin(true).Name())
	assert.Equal(t, "RoundRobin(track=false)", NewRoundRobin(false).Name())
}
