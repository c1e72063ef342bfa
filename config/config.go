// Package config loads simulation scenarios from YAML files. A scenario
// bundles the engine configuration with a scheduler selection so hosts can
// swap run parameters without recompiling.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/scheduler"
)

// Scenario is the YAML document describing one simulation run.
type Scenario struct {
	Name             string        `yaml:"name"`
	MaxSteps         int           `yaml:"max_steps"`
	EnableAnalytics  bool          `yaml:"enable_analytics"`
	StopOnExtinction bool          `yaml:"stop_on_extinction"`
	Scheduler        SchedulerSpec `yaml:"scheduler"`
}

// SchedulerSpec selects and configures the scheduling strategy.
type SchedulerSpec struct {
	// Type is one of sequential, random, priority, round_robin, adaptive.
	Type string `yaml:"type"`

	// Seed fixes the random strategy's shuffle sequence when set.
	Seed *int64 `yaml:"seed,omitempty"`

	// Reverse applies to the sequential strategy.
	Reverse bool `yaml:"reverse,omitempty"`

	// ShuffleWithinLevel applies to the priority strategy.
	ShuffleWithinLevel bool `yaml:"shuffle_within_level,omitempty"`

	// TrackUpdates applies to the round_robin strategy.
	TrackUpdates bool `yaml:"track_updates,omitempty"`

	// PopulationThreshold applies to the adaptive strategy; 0 keeps the
	// default.
	PopulationThreshold int `yaml:"population_threshold,omitempty"`
}

func defaults() Scenario {
	return Scenario{
		Name:             "default",
		MaxSteps:         core.DefaultConfig.MaxSteps,
		EnableAnalytics:  true,
		StopOnExtinction: true,
		Scheduler:        SchedulerSpec{Type: "sequential"},
	}
}

// Load reads a scenario from path, applying defaults for absent fields. An
// empty path returns the defaults.
func Load(path string) (Scenario, error) {
	s := defaults()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scenario for invalid values.
func (s Scenario) Validate() error {
	if err := s.Config().Validate(); err != nil {
		return err
	}
	switch strings.ToLower(s.Scheduler.Type) {
	case "", "sequential", "random", "priority", "round_robin", "adaptive":
		return nil
	default:
		return fmt.Errorf("unknown scheduler type %q", s.Scheduler.Type)
	}
}

// Config maps the scenario onto the engine's configuration.
func (s Scenario) Config() core.SimulationConfig {
	return core.SimulationConfig{
		MaxSteps:         s.MaxSteps,
		EnableAnalytics:  s.EnableAnalytics,
		StopOnExtinction: s.StopOnExtinction,
	}
}

// BuildScheduler constructs the selected scheduling strategy.
func (s Scenario) BuildScheduler() (scheduler.Strategy, error) {
	spec := s.Scheduler
	switch strings.ToLower(spec.Type) {
	case "", "sequential":
		return scheduler.NewSequential(func(o *scheduler.SequentialOptions) {
			o.Reverse = spec.Reverse
		}), nil
	case "random":
		return scheduler.NewRandom(func(o *scheduler.RandomOptions) {
			o.Seed = spec.Seed
		}), nil
	case "priority":
		return scheduler.NewPriority(func(o *scheduler.PriorityOptions) {
			o.ShuffleWithinLevel = spec.ShuffleWithinLevel
		}), nil
	case "round_robin":
		return scheduler.NewRoundRobin(spec.TrackUpdates), nil
	case "adaptive":
		return scheduler.NewAdaptive(func(o *scheduler.AdaptiveOptions) {
			if spec.PopulationThreshold > 0 {
				o.PopulationThreshold = spec.PopulationThreshold
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown scheduler type %q", spec.Type)
	}
}
