package core

// UnlimitedSteps is the MaxSteps sentinel for an unbounded run. A run with
// unlimited steps only terminates through another stop condition (extinction)
// or an explicit step budget passed to Run.
const UnlimitedSteps = 0

// SimulationConfig carries the immutable run parameters of an engine.
// It is passed by value at construction and never mutated afterwards.
type SimulationConfig struct {
	// MaxSteps bounds the run: the engine completes once the step counter
	// reaches this value. UnlimitedSteps (0) disables the bound. Negative
	// values are a configuration error surfaced by Initialize.
	MaxSteps int

	// EnableAnalytics controls whether per-step results are folded into the
	// analytics collector.
	EnableAnalytics bool

	// StopOnExtinction completes the run once the live agent set is empty.
	StopOnExtinction bool
}

// DefaultConfig provides safe defaults: a bounded run with analytics enabled.
var DefaultConfig = SimulationConfig{
	MaxSteps:         1000,
	EnableAnalytics:  true,
	StopOnExtinction: true,
}

// Validate checks the configuration for invalid values. It returns a
// *ConfigurationError describing the first violation found, or nil.
func (c SimulationConfig) Validate() error {
	if c.MaxSteps < 0 {
		return &ConfigurationError{Field: "MaxSteps", Reason: "must be non-negative (0 means unlimited)"}
	}
	return nil
}
