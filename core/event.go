package core

import (
	"time"

	"github.com/google/uuid"
)

// EventType categorizes simulation lifecycle and step events.
type EventType string

const (
	// EventInitialized is emitted once after successful configuration
	// validation in Initialize.
	EventInitialized EventType = "INITIALIZED"

	// EventStarted is emitted on the first transition into the running state
	// within a run.
	EventStarted EventType = "STARTED"

	// EventStepCompleted is emitted after every completed step, before stop
	// conditions are evaluated.
	EventStepCompleted EventType = "STEP_COMPLETED"

	// EventPaused is emitted when the engine is paused between steps.
	EventPaused EventType = "PAUSED"

	// EventResumed is emitted when a paused engine resumes.
	EventResumed EventType = "RESUMED"

	// EventCompleted is emitted exactly once, when a stop condition fires.
	EventCompleted EventType = "COMPLETED"

	// EventAgentAdded is emitted when an agent joins the live set.
	EventAgentAdded EventType = "AGENT_ADDED"

	// EventAgentRemoved is emitted when an agent leaves the live set.
	EventAgentRemoved EventType = "AGENT_REMOVED"
)

// Event is the immutable record delivered to observers for every lifecycle
// transition and completed step. It captures:
//   - Identity (ID) for correlation and deduplication
//   - The event category (Type)
//   - The step counter value at emission time
//   - A high precision UTC timestamp
//   - An event-specific payload (agent IDs, counts, durations)
//
// After emission an event should be treated as immutable; observers must not
// mutate the payload map.
type Event struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	StepNumber int            `json:"step_number"`
	Timestamp  time.Time      `json:"timestamp"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewEvent creates an event of the given type bound to a step counter value.
// The payload may be nil for events that carry no extra data.
func NewEvent(eventType EventType, stepNumber int, payload map[string]any) Event {
	return Event{
		ID:         NewID(),
		Type:       eventType,
		StepNumber: stepNumber,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// NewID generates a globally unique identifier for events and runs.
func NewID() string { return uuid.NewString() }

// Observer receives simulation events. Observers are notified synchronously,
// in registration order; a panicking observer must not prevent delivery to
// subsequently registered observers (the engine isolates each invocation).
type Observer interface {
	OnEvent(event Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(event Event)

// OnEvent calls the wrapped function.
func (f ObserverFunc) OnEvent(event Event) { f(event) }
