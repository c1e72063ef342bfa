// Package observability exposes Prometheus metrics for AgentSim runs. The
// SimulationCollector plugs into the engine as an ordinary observer, so every
// lifecycle event and completed step updates the exported series.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/agentsim/core"
)

// SimulationCollector bundles Prometheus metrics for a simulation run and
// provides an observer adapter to wire them into the engine.
type SimulationCollector struct {
	gatherer prometheus.Gatherer

	StepsTotal         prometheus.Counter
	StepDuration       prometheus.Histogram
	LiveAgents         prometheus.Gauge
	AgentFailuresTotal prometheus.Counter
	EventsTotal        *prometheus.CounterVec
}

// NewSimulationCollector registers simulation Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewSimulationCollector(reg prometheus.Registerer) (*SimulationCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	steps, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulation_steps_total",
		Help: "Cumulative number of completed simulation steps.",
	}), "simulation_steps_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_step_duration_seconds",
		Help:    "Duration of one full simulation step.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
	duration, err = registerHistogram(reg, duration, "simulation_step_duration_seconds")
	if err != nil {
		return nil, err
	}

	agents, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_live_agents",
		Help: "Current number of agents in the live set.",
	}), "simulation_live_agents")
	if err != nil {
		return nil, err
	}

	failures, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulation_agent_failures_total",
		Help: "Cumulative number of isolated agent update failures.",
	}), "simulation_agent_failures_total")
	if err != nil {
		return nil, err
	}

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_events_total",
		Help: "Total number of emitted simulation events, labeled by event type.",
	}, []string{"type"})
	events, err = registerCounterVec(reg, events, "simulation_events_total")
	if err != nil {
		return nil, err
	}

	return &SimulationCollector{
		gatherer:           gatherer,
		StepsTotal:         steps,
		StepDuration:       duration,
		LiveAgents:         agents,
		AgentFailuresTotal: failures,
		EventsTotal:        events,
	}, nil
}

// Observer returns a core.Observer that updates the metrics from simulation
// events. Register it on the engine before Initialize so lifecycle events are
// counted too.
func (c *SimulationCollector) Observer() core.Observer {
	return core.ObserverFunc(func(event core.Event) {
		c.EventsTotal.WithLabelValues(string(event.Type)).Inc()

		switch event.Type {
		case core.EventStepCompleted:
			c.StepsTotal.Inc()
			if secs, ok := payloadFloat64(event.Payload, "duration_seconds"); ok {
				c.StepDuration.Observe(secs)
			} else if ms, ok := payloadInt64(event.Payload, "duration_ms"); ok {
				c.StepDuration.Observe(float64(ms) / 1000)
			}
			if n, ok := payloadInt64(event.Payload, "failures"); ok {
				c.AgentFailuresTotal.Add(float64(n))
			}
			if n, ok := payloadInt64(event.Payload, "agent_count"); ok {
				c.LiveAgents.Set(float64(n))
			}
		case core.EventAgentAdded, core.EventAgentRemoved:
			if n, ok := payloadInt64(event.Payload, "agent_count"); ok {
				c.LiveAgents.Set(float64(n))
			}
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SimulationCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func payloadFloat64(payload map[string]any, key string) (float64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func payloadInt64(payload map[string]any, key string) (int64, bool) {
	switch v := payload[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, histogram prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return histogram, nil
}
