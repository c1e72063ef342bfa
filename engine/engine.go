package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/agentsim/analytics"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/scheduler"
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Config contains the immutable run parameters. Defaults to
	// core.DefaultConfig if not specified.
	Config core.SimulationConfig

	// Scheduler produces the per-step update ordering. Defaults to a
	// Sequential strategy.
	Scheduler scheduler.Strategy

	// Collector receives per-step results when analytics is enabled.
	// Defaults to a fresh analytics.Collector.
	Collector *analytics.Collector

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// Summary reports the engine's current state in one pull-based query.
type Summary struct {
	State       core.SimulationState `json:"state"`
	CurrentStep int                  `json:"current_step"`
	AgentCount  int                  `json:"agent_count"`

	// Analytics is nil when analytics is disabled.
	Analytics *analytics.Summary `json:"analytics,omitempty"`
}

// Engine orchestrates a turn-based simulation of autonomous agents sharing
// one world.
//
// Core responsibilities:
//   - State machine: owns the run lifecycle and rejects operations invoked
//     from states that do not permit them
//   - Step loop: asks the scheduler for an ordering, drives every agent
//     through one sense/decide/act cycle, updates the world once, folds
//     results into analytics and emits STEP_COMPLETED
//   - Agent set: maintains the live agent references; mutations mid-round
//     are deferred to the next round
//   - Event dispatch: notifies observers synchronously, in registration
//     order, with per-observer panic isolation
//
// Error handling:
//   - Engine-level invariant violations (bad config, bad state, failing
//     world update) propagate to the caller
//   - Agent-level failures (errors and panics from sense/decide/act) are
//     isolated to the agent, recorded in the step result and logged; they
//     never abort the round or the run
//
// Concurrency model:
// The engine is deliberately single-threaded; all methods must be called
// from one goroutine. Reentrant calls (an agent or observer calling
// AddAgent/RemoveAgent mid-round) are supported through deferred mutations.
// This keeps analytics aggregation and observer delivery race-free without
// any locking discipline.
type Engine struct {
	// Immutable after construction.
	world     core.World
	config    core.SimulationConfig
	sched     scheduler.Strategy
	collector *analytics.Collector
	logger    logging.Logger
	runID     string

	// Engine-owned mutable state.
	state   core.SimulationState
	step    int
	agents  []core.Agent
	ids     map[string]struct{}
	inRound bool

	pending []pendingMutation

	// Set when the configured Logger also implements stepLogger.
	stepLog stepLogger

	observers *observerRegistry
}

// pendingMutation is one deferred agent-set change requested mid-round.
// Additions carry the agent, removals only the ID; replaying the queue in
// request order yields the post-round set.
type pendingMutation struct {
	agent   core.Agent
	agentID string
}

// stepLogger is the richer logging surface a *logging.SimLogger provides.
// When the configured Logger implements it, the engine prefers its structured
// step, failure and scheduler records over generic level calls.
type stepLogger interface {
	LogStep(step int, agents int, failures int, dur time.Duration)
	LogAgentFailure(agentID string, step int, phase string, err error)
	LogSchedulerSelection(step int, strategy string, agents int)
	ErrorWithStack(err error, msg string, args ...interface{})
}

// New creates an Engine bound to the given world with optional configuration.
//
// Defaults: core.DefaultConfig, a Sequential scheduler, a fresh analytics
// collector and a NoOp logger.
//
// Example:
//
//	eng := engine.New(world, func(o *engine.Options) {
//	    o.Config = core.SimulationConfig{MaxSteps: 500, EnableAnalytics: true}
//	    o.Scheduler = scheduler.NewRandom(scheduler.WithSeed(42))
//	    o.Logger = logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	})
func New(world core.World, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:    core.DefaultConfig,
		Scheduler: scheduler.NewSequential(),
		Collector: analytics.NewCollector(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	e := &Engine{
		world:     world,
		config:    opts.Config,
		sched:     opts.Scheduler,
		collector: opts.Collector,
		logger:    opts.Logger,
		runID:     core.NewID(),
		state:     core.StateCreated,
		ids:       make(map[string]struct{}),
		observers: newObserverRegistry(opts.Logger),
	}
	if sl, ok := opts.Logger.(stepLogger); ok {
		e.stepLog = sl
	}
	return e
}

// RunID returns the unique identifier of this engine instance.
func (e *Engine) RunID() string { return e.runID }

// State returns the current state machine state.
func (e *Engine) State() core.SimulationState { return e.state }

// CurrentStep returns the number of completed steps (0 before the first).
func (e *Engine) CurrentStep() int { return e.step }

// AgentCount returns the size of the live agent set, excluding deferred
// mutations.
func (e *Engine) AgentCount() int { return len(e.agents) }

// Agents returns a copy of the live agent set in insertion order.
func (e *Engine) Agents() []core.Agent {
	out := make([]core.Agent, len(e.agents))
	copy(out, e.agents)
	return out
}

// Collector exposes the analytics collector for pull-based queries. It is
// non-nil even when analytics is disabled; it simply stays empty then.
func (e *Engine) Collector() *analytics.Collector { return e.collector }

// AddObserver registers an observer for all subsequent events. Registration
// order determines delivery order.
func (e *Engine) AddObserver(o core.Observer) {
	e.observers.add(o)
}

// Initialize validates the configuration and transitions the engine from
// CREATED to INITIALIZED, emitting an INITIALIZED event. Configuration
// errors are surfaced as *core.ConfigurationError and never silently
// clamped.
func (e *Engine) Initialize() error {
	if e.state != core.StateCreated {
		return &core.StateError{Op: "initialize", Current: e.state}
	}

	if err := e.config.Validate(); err != nil {
		return err
	}

	e.state = core.StateInitialized
	e.logger.Info("Simulation initialized", "run_id", e.runID, "agent_count", len(e.agents), "max_steps", e.config.MaxSteps)
	e.emit(core.EventInitialized, map[string]any{
		"agent_count": len(e.agents),
		"max_steps":   e.config.MaxSteps,
		"scheduler":   e.sched.Name(),
	})
	return nil
}

// Step executes one round: scheduler ordering, per-agent sense/decide/act,
// one world update, analytics folding, STEP_COMPLETED emission and stop
// condition evaluation.
//
// Step is permitted from INITIALIZED (transitioning to RUNNING and emitting
// STARTED) and from RUNNING. Calling it from any other state returns a
// *core.StateError. A failing world update propagates to the caller;
// agent-level failures do not.
func (e *Engine) Step() (core.StepResult, error) {
	switch e.state {
	case core.StateInitialized:
		e.state = core.StateRunning
		e.emit(core.EventStarted, map[string]any{"agent_count": len(e.agents)})
	case core.StateRunning:
	default:
		return core.StepResult{}, &core.StateError{Op: "step", Current: e.state}
	}

	stepNumber := e.step + 1
	start := time.Now()

	e.inRound = true
	e.sched.OnStepStart(stepNumber)

	order := e.sched.UpdateOrder(e.Agents(), e.world)
	if e.stepLog != nil {
		e.stepLog.LogSchedulerSelection(stepNumber, e.sched.Name(), len(order))
	} else {
		e.logger.Debug("Update order computed", "step", stepNumber, "strategy", e.sched.Name(), "agent_count", len(order))
	}

	agentResults := make([]core.AgentResult, 0, len(order))
	for _, a := range order {
		agentResults = append(agentResults, e.updateAgent(a, stepNumber))
	}

	if err := e.world.Update(); err != nil {
		e.endRound(stepNumber)
		if e.stepLog != nil {
			e.stepLog.ErrorWithStack(err, "World update failed at step %d", stepNumber)
		} else {
			e.logger.Error("World update failed", "step", stepNumber, "error", err.Error())
		}
		return core.StepResult{}, fmt.Errorf("world update failed at step %d: %w", stepNumber, err)
	}

	result := core.StepResult{
		StepNumber:   stepNumber,
		AgentResults: agentResults,
		Timestamp:    start.UTC(),
		Duration:     time.Since(start),
	}

	if e.config.EnableAnalytics && e.collector != nil {
		e.collector.RecordStep(result, order)
	}

	e.step = stepNumber
	e.endRound(stepNumber)

	if e.stepLog != nil {
		e.stepLog.LogStep(stepNumber, len(order), result.FailureCount(), result.Duration)
	} else if failures := result.FailureCount(); failures > 0 {
		e.logger.Warn("Step completed with agent failures", "step", stepNumber, "failures", failures)
	}

	e.emit(core.EventStepCompleted, map[string]any{
		"agent_count":      len(order),
		"failures":         result.FailureCount(),
		"duration_ms":      result.Duration.Milliseconds(),
		"duration_seconds": result.Duration.Seconds(),
		"scheduler":        e.sched.Name(),
	})

	e.evaluateStopConditions()
	return result, nil
}

// updateAgent drives one agent through its sense/decide/act cycle, isolating
// errors and panics to this agent's result.
func (e *Engine) updateAgent(a core.Agent, stepNumber int) (result core.AgentResult) {
	result = core.AgentResult{AgentID: a.ID()}
	phase := "sense"

	defer func() {
		if rec := recover(); rec != nil {
			cause := fmt.Errorf("panic: %v", rec)
			result.Acted = false
			result.Err = &core.AgentUpdateError{
				AgentID: a.ID(),
				Step:    stepNumber,
				Phase:   phase,
				Cause:   cause,
			}
			if e.stepLog != nil {
				e.stepLog.LogAgentFailure(a.ID(), stepNumber, phase, cause)
			} else {
				e.logger.Warn("Agent update panicked", "agent_id", a.ID(), "step", stepNumber, "phase", phase, "panic", fmt.Sprintf("%v", rec))
			}
		}
	}()

	data := a.Sense(e.world)

	phase = "decide"
	action, ok := a.Decide(data)
	if !ok {
		return result
	}

	phase = "act"
	if err := a.Act(action, e.world); err != nil {
		result.Err = &core.AgentUpdateError{AgentID: a.ID(), Step: stepNumber, Phase: phase, Cause: err}
		if e.stepLog != nil {
			e.stepLog.LogAgentFailure(a.ID(), stepNumber, phase, err)
		} else {
			e.logger.Warn("Agent update failed", "agent_id", a.ID(), "step", stepNumber, "phase", phase, "error", err.Error())
		}
		return result
	}

	result.Acted = true
	return result
}

// Run repeatedly invokes Step until the optional step budget is exhausted, a
// stop condition completes the run, or the context is cancelled. A budget of
// 0 or less runs until a stop condition fires; combined with unlimited
// MaxSteps and no extinction this never returns.
//
// Run is permitted from INITIALIZED and RUNNING. The returned RunResult
// reports the final step counter and how many steps this invocation
// executed.
func (e *Engine) Run(ctx context.Context, steps int) (core.RunResult, error) {
	if e.state != core.StateInitialized && e.state != core.StateRunning {
		return core.RunResult{}, &core.StateError{Op: "run", Current: e.state}
	}

	executed := 0
	for e.state != core.StateCompleted {
		if steps > 0 && executed >= steps {
			break
		}
		if err := ctx.Err(); err != nil {
			return e.runResult(executed), err
		}
		if _, err := e.Step(); err != nil {
			return e.runResult(executed), err
		}
		executed++
	}

	return e.runResult(executed), nil
}

func (e *Engine) runResult(executed int) core.RunResult {
	return core.RunResult{FinalStep: e.step, StepsRun: executed, State: e.state}
}

// Pause halts progress between steps, transitioning RUNNING to PAUSED and
// emitting a PAUSED event. No step executes while paused.
func (e *Engine) Pause() error {
	if e.state != core.StateRunning {
		return &core.StateError{Op: "pause", Current: e.state}
	}

	e.state = core.StatePaused
	e.logger.Info("Simulation paused", "step", e.step)
	e.emit(core.EventPaused, nil)
	return nil
}

// Resume transitions PAUSED back to RUNNING and emits a RESUMED event.
func (e *Engine) Resume() error {
	if e.state != core.StatePaused {
		return &core.StateError{Op: "resume", Current: e.state}
	}

	e.state = core.StateRunning
	e.logger.Info("Simulation resumed", "step", e.step)
	e.emit(core.EventResumed, nil)
	return nil
}

// AddAgent adds an agent to the live set and emits AGENT_ADDED. When a round
// is in progress the addition is deferred and takes effect for the next
// step's scheduling. Nil agents and duplicate IDs are rejected.
func (e *Engine) AddAgent(a core.Agent) error {
	if a == nil {
		return fmt.Errorf("agent must not be nil")
	}
	if e.contains(a.ID()) {
		return fmt.Errorf("agent %s already present", a.ID())
	}

	if e.inRound {
		e.pending = append(e.pending, pendingMutation{agent: a, agentID: a.ID()})
		return nil
	}

	e.addAgent(a, e.step)
	return nil
}

// RemoveAgent removes the agent with the given ID from the live set, emits
// AGENT_REMOVED and records the death in the analytics collector. When a
// round is in progress the removal is deferred to the end of the round. It
// returns false when no such agent is present or scheduled for addition.
func (e *Engine) RemoveAgent(agentID string) bool {
	if !e.contains(agentID) {
		return false
	}

	if e.inRound {
		e.pending = append(e.pending, pendingMutation{agentID: agentID})
		return true
	}

	e.removeAgent(agentID, e.step)
	return true
}

// Summary reports state, step counter, agent count and, when analytics is
// enabled, the collector's summary.
func (e *Engine) Summary() Summary {
	s := Summary{
		State:       e.state,
		CurrentStep: e.step,
		AgentCount:  len(e.agents),
	}
	if e.config.EnableAnalytics && e.collector != nil {
		cs := e.collector.Summary()
		s.Analytics = &cs
	}
	return s
}

// contains reports whether the agent would be present once the pending
// mutation queue is replayed over the live set.
func (e *Engine) contains(agentID string) bool {
	_, present := e.ids[agentID]
	for _, m := range e.pending {
		if m.agentID == agentID {
			present = m.agent != nil
		}
	}
	return present
}

func (e *Engine) addAgent(a core.Agent, step int) {
	e.agents = append(e.agents, a)
	e.ids[a.ID()] = struct{}{}
	e.logger.Debug("Agent added", "agent_id", a.ID(), "step", step, "agent_count", len(e.agents))
	e.emit(core.EventAgentAdded, map[string]any{"agent_id": a.ID(), "agent_count": len(e.agents)})
}

func (e *Engine) removeAgent(agentID string, step int) {
	for i, a := range e.agents {
		if a.ID() == agentID {
			e.agents = append(e.agents[:i], e.agents[i+1:]...)
			break
		}
	}
	delete(e.ids, agentID)

	if e.config.EnableAnalytics && e.collector != nil {
		e.collector.MarkDead(agentID, step)
	}

	e.logger.Debug("Agent removed", "agent_id", agentID, "step", step, "agent_count", len(e.agents))
	e.emit(core.EventAgentRemoved, map[string]any{"agent_id": agentID, "agent_count": len(e.agents)})
}

// endRound balances the scheduler hook pair and applies deferred agent-set
// mutations. It runs on both the success and the world-failure paths of Step,
// so every OnStepStart is matched by an OnStepEnd.
func (e *Engine) endRound(stepNumber int) {
	e.sched.OnStepEnd(stepNumber)
	e.inRound = false
	e.applyPending(stepNumber)
}

// applyPending replays agent-set mutations requested while the round was in
// progress, in request order. An agent added and removed within one round
// therefore ends the round absent, with its AGENT_ADDED and AGENT_REMOVED
// events emitted in that order; an ID removed and re-added ends present.
func (e *Engine) applyPending(step int) {
	queued := e.pending
	e.pending = nil

	for _, m := range queued {
		if m.agent != nil {
			e.addAgent(m.agent, step)
		} else {
			e.removeAgent(m.agentID, step)
		}
	}
}

// evaluateStopConditions transitions RUNNING to COMPLETED when the step
// bound is reached or, with StopOnExtinction, the live agent set is empty.
// Stop conditions are checked only here, at the end of a completed step: an
// engine started with zero agents still executes its first (empty) round
// before extinction completes it.
func (e *Engine) evaluateStopConditions() {
	if e.state != core.StateRunning {
		return
	}

	var reason string
	switch {
	case e.config.MaxSteps != core.UnlimitedSteps && e.step >= e.config.MaxSteps:
		reason = "max_steps_reached"
	case e.config.StopOnExtinction && len(e.agents) == 0:
		reason = "extinction"
	default:
		return
	}

	e.state = core.StateCompleted
	e.logger.Info("Simulation completed", "step", e.step, "reason", reason)
	e.emit(core.EventCompleted, map[string]any{"reason": reason, "final_step": e.step})
}

// emit builds an event at the current step counter and notifies observers.
func (e *Engine) emit(eventType core.EventType, payload map[string]any) {
	e.observers.notify(core.NewEvent(eventType, e.step, payload))
}
