package core

// SimulationState enumerates the lifecycle states of an engine. Exactly one
// state is active at any time.
//
// Valid transitions:
//
//	Created     -> Initialized          (Initialize)
//	Initialized -> Running              (first Step or Run)
//	Running     -> Running | Completed  (Step; stop condition)
//	Running     -> Paused               (Pause)
//	Paused      -> Running              (Resume)
//
// Completed is terminal.
type SimulationState int

const (
	// StateCreated is the initial state of a freshly constructed engine.
	StateCreated SimulationState = iota
	// StateInitialized indicates configuration has been validated.
	StateInitialized
	// StateRunning indicates steps are being executed.
	StateRunning
	// StatePaused indicates progress is halted between steps.
	StatePaused
	// StateCompleted is the terminal state after a stop condition fired.
	StateCompleted
)

// String returns the canonical upper-case name of the state.
func (s SimulationState) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateInitialized:
		return "INITIALIZED"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the state permits no further transitions.
func (s SimulationState) Terminal() bool { return s == StateCompleted }
