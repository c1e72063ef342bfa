package engine

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// observerRegistry holds the ordered set of registered observers and
// dispatches events to them.
//
// Dispatch is synchronous and follows registration order. Each delivery is
// wrapped in panic isolation so one misbehaving observer cannot suppress
// delivery to subsequently registered observers; panics are logged and
// swallowed.
type observerRegistry struct {
	observers []core.Observer
	logger    logging.Logger
}

func newObserverRegistry(logger logging.Logger) *observerRegistry {
	return &observerRegistry{logger: logger}
}

// add appends an observer to the registry. Registration order determines
// delivery order.
func (r *observerRegistry) add(o core.Observer) {
	r.observers = append(r.observers, o)
}

// notify delivers the event to every registered observer in order.
func (r *observerRegistry) notify(event core.Event) {
	for _, o := range r.observers {
		r.dispatch(o, event)
	}
}

func (r *observerRegistry) dispatch(o core.Observer, event core.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("Observer panicked during event delivery", "event_type", string(event.Type), "panic", fmt.Sprintf("%v", rec))
		}
	}()

	o.OnEvent(event)
}
