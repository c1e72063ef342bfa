package core

// PriorityLevel classifies agents for triage ordering. Levels are ordered
// ascending: lower values are updated first.
type PriorityLevel int

const (
	// PriorityCritical marks agents in immediate danger; updated first.
	PriorityCritical PriorityLevel = iota
	// PriorityHigh marks agents under stress.
	PriorityHigh
	// PriorityNormal is the default classification.
	PriorityNormal
	// PriorityLow is reserved for caller-supplied classifiers; the default
	// health-ratio classifier never assigns it.
	PriorityLow
)

// String returns the canonical upper-case name of the level.
func (p PriorityLevel) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityNormal:
		return "NORMAL"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}
