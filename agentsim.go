// Package agentsim provides a high-level façade over the core Engine and its
// collaborators (schedulers, analytics & logging) enabling rapid construction
// of turn-based multi-agent simulations. Most applications interact with this
// package by:
//  1. Creating a Simulation via New() (optionally overriding the scheduler,
//     analytics collector or logger)
//  2. Adding agents and registering observers
//  3. Initializing once, then stepping manually (Step) or driving the run to
//     completion (Run)
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production hosts typically supply a tuned scheduler, a structured
// logger and a metrics observer.
package agentsim

import (
	"context"

	"github.com/hupe1980/agentsim/analytics"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/engine"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/scheduler"
)

// Options configures the Simulation instance.
type Options struct {
	// Config contains the immutable run parameters (step bound, analytics
	// switch, extinction stop). Defaults to core.DefaultConfig.
	Config core.SimulationConfig

	// Scheduler produces the per-step update ordering. Defaults to a
	// Sequential strategy.
	Scheduler scheduler.Strategy

	// Collector receives per-step results when analytics is enabled
	// (defaults to a fresh in-memory collector).
	Collector *analytics.Collector

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Simulation is the high-level façade aggregating the underlying engine and
// its collaborators.
type Simulation struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new Simulation around the given world with optional
// overrides. Any unset collaborator is initialized with its default.
func New(world core.World, optFns ...func(o *Options)) *Simulation {
	opts := Options{
		Config:    core.DefaultConfig,
		Scheduler: scheduler.NewSequential(),
		Collector: analytics.NewCollector(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := engine.New(world, func(o *engine.Options) {
		o.Config = opts.Config
		o.Scheduler = opts.Scheduler
		o.Collector = opts.Collector
		o.Logger = opts.Logger
	})

	return &Simulation{opts: opts, engine: eng}
}

// Engine exposes the underlying engine for advanced use.
func (s *Simulation) Engine() *engine.Engine { return s.engine }

// AddAgent adds an agent to the live set.
func (s *Simulation) AddAgent(a core.Agent) error { return s.engine.AddAgent(a) }

// RemoveAgent removes an agent from the live set by ID.
func (s *Simulation) RemoveAgent(agentID string) bool { return s.engine.RemoveAgent(agentID) }

// AddObserver registers an observer for all subsequent events.
func (s *Simulation) AddObserver(o core.Observer) { s.engine.AddObserver(o) }

// OnEvent registers a plain function as an observer.
func (s *Simulation) OnEvent(fn func(event core.Event)) {
	s.engine.AddObserver(core.ObserverFunc(fn))
}

// Initialize validates the configuration and readies the simulation.
func (s *Simulation) Initialize() error { return s.engine.Initialize() }

// Step executes exactly one round.
func (s *Simulation) Step() (core.StepResult, error) { return s.engine.Step() }

// Run drives the simulation until the optional step budget is exhausted or a
// stop condition fires. A budget of 0 or less runs to completion.
func (s *Simulation) Run(ctx context.Context, steps int) (core.RunResult, error) {
	return s.engine.Run(ctx, steps)
}

// Pause halts progress between steps.
func (s *Simulation) Pause() error { return s.engine.Pause() }

// Resume continues a paused simulation.
func (s *Simulation) Resume() error { return s.engine.Resume() }

// State returns the current lifecycle state.
func (s *Simulation) State() core.SimulationState { return s.engine.State() }

// Summary reports state, step counter, agent count and analytics.
func (s *Simulation) Summary() engine.Summary { return s.engine.Summary() }

// Collector exposes the analytics collector for pull-based queries.
func (s *Simulation) Collector() *analytics.Collector { return s.engine.Collector() }
