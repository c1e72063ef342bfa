package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/internal/testutil"
)

// recordingObserver captures every delivered event in order.
type recordingObserver struct {
	events []core.Event
}

func (r *recordingObserver) OnEvent(event core.Event) {
	r.events = append(r.events, event)
}

func (r *recordingObserver) types() []core.EventType {
	out := make([]core.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func TestObservers_LifecycleSequence(t *testing.T) {
	eng := newEngine(&testutil.StubWorld{}, core.SimulationConfig{MaxSteps: 5}, testutil.Agents("agent", 3)...)

	first := &recordingObserver{}
	second := &recordingObserver{}
	eng.AddObserver(first)
	eng.AddObserver(second)

	require.NoError(t, eng.Initialize())
	_, err := eng.Run(context.Background(), 0)
	require.NoError(t, err)

	want := []core.EventType{
		core.EventInitialized,
		core.EventStarted,
		core.EventStepCompleted,
		core.EventStepCompleted,
		core.EventStepCompleted,
		core.EventStepCompleted,
		core.EventStepCompleted,
		core.EventCompleted,
	}
	assert.Equal(t, want, first.types())
	assert.Equal(t, want, second.types())
}

func TestObservers_StepNumbersIncrease(t *testing.T) {
	eng := newEngine(&testutil.StubWorld{}, core.SimulationConfig{MaxSteps: 3}, testutil.Agents("agent", 1)...)

	obs := &recordingObserver{}
	eng.AddObserver(obs)

	require.NoError(t, eng.Initialize())
	_, err := eng.Run(context.Background(), 0)
	require.NoError(t, err)

	var steps []int
	for _, e := range obs.events {
		if e.Type == core.EventStepCompleted {
			steps = append(steps, e.StepNumber)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, steps)
}

func TestObservers_PanicIsolation(t *testing.T) {
	eng := newEngine(&testutil.StubWorld{}, core.SimulationConfig{MaxSteps: 2}, testutil.Agents("agent", 1)...)

	eng.AddObserver(core.ObserverFunc(func(core.Event) {
		panic("bad observer")
	}))
	healthy := &recordingObserver{}
	eng.AddObserver(healthy)

	require.NoError(t, eng.Initialize())
	_, err := eng.Run(context.Background(), 0)
	require.NoError(t, err)

	// Delivery to the later-registered observer is unaffected.
	assert.Len(t, healthy.events, 5) // INITIALIZED, STARTED, 2x STEP_COMPLETED, COMPLETED
}

func TestObservers_AgentLifecycleEvents(t *testing.T) {
	eng := newEngine(&testutil.StubWorld{}, core.SimulationConfig{MaxSteps: 10})

	obs := &recordingObserver{}
	eng.AddObserver(obs)

	require.NoError(t, eng.AddAgent(testutil.NewAgentBuilder().ID("a1").Build()))
	require.True(t, eng.RemoveAgent("a1"))

	require.Len(t, obs.events, 2)
	assert.Equal(t, core.EventAgentAdded, obs.events[0].Type)
	assert.Equal(t, "a1", obs.events[0].Payload["agent_id"])
	assert.Equal(t, core.EventAgentRemoved, obs.events[1].Type)
}

func TestObservers_CompletedPayloadReason(t *testing.T) {
	eng := newEngine(&testutil.StubWorld{}, core.SimulationConfig{MaxSteps: 1}, testutil.Agents("agent", 1)...)

	obs := &recordingObserver{}
	eng.AddObserver(obs)

	require.NoError(t, eng.Initialize())
	_, err := eng.Step()
	require.NoError(t, err)

	last := obs.events[len(obs.events)-1]
	require.Equal(t, core.EventCompleted, last.Type)
	assert.Equal(t, "max_steps_reached", last.Payload["reason"])
}
