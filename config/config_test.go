package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "default", s.Name)
	assert.True(t, s.EnableAnalytics)
	assert.True(t, s.StopOnExtinction)
	assert.Equal(t, "sequential", s.Scheduler.Type)
}

func TestLoad_File(t *testing.T) {
	path := writeScenario(t, `
name: battle-royale
max_steps: 250
enable_analytics: true
stop_on_extinction: true
scheduler:
  type: random
  seed: 42
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "battle-royale", s.Name)
	assert.Equal(t, 250, s.MaxSteps)

	cfg := s.Config()
	assert.Equal(t, 250, cfg.MaxSteps)
	assert.True(t, cfg.StopOnExtinction)

	strat, err := s.BuildScheduler()
	require.NoError(t, err)
	assert.Equal(t, "Random(seed=42)", strat.Name())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_InvalidSchedulerType(t *testing.T) {
	path := writeScenario(t, `
scheduler:
  type: quantum
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scheduler type")
}

func TestLoad_NegativeMaxSteps(t *testing.T) {
	path := writeScenario(t, `max_steps: -5`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestBuildScheduler_AllTypes(t *testing.T) {
	tests := []struct {
		spec SchedulerSpec
		want string
	}{
		{SchedulerSpec{Type: "sequential"}, "Sequential"},
		{SchedulerSpec{Type: "sequential", Reverse: true}, "Sequential(reversed)"},
		{SchedulerSpec{Type: "priority"}, "Priority(shuffle=false)"},
		{SchedulerSpec{Type: "priority", ShuffleWithinLevel: true}, "Priority(shuffle=true)"},
		{SchedulerSpec{Type: "round_robin", TrackUpdates: true}, "RoundRobin(track=true)"},
		{SchedulerSpec{Type: "adaptive"}, "Adaptive(Sequential)"},
		{SchedulerSpec{Type: ""}, "Sequential"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := defaults()
			s.Scheduler = tt.spec

			strat, err := s.BuildScheduler()
			require.NoError(t, err)
			assert.Equal(t, tt.want, strat.Name())
		})
	}
}
