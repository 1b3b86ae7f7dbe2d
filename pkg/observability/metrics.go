package observability

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/builder"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts reporter events by kind and tracks builder states.
type Metrics struct {
	events *prometheus.CounterVec
	states *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_events_total",
				Help: "Total number of reporter events by kind",
			},
			[]string{"kind"},
		),
		states: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_builder_transitions_total",
				Help: "Total number of builder state transitions by target state",
			},
			[]string{"state"},
		),
	}

	for _, c := range []prometheus.Collector{m.events, m.states} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	// Pre-create the series so dashboards see zeros before the first event.
	for _, k := range []report.EventKind{report.EventStateChange, report.EventLeafFound, report.EventRuleFound, report.EventChildRejected} {
		m.events.WithLabelValues(string(k))
	}
	for _, s := range []builder.State{builder.StateSplitting, builder.StateStopping, builder.StatePruning} {
		m.states.WithLabelValues(s.String())
	}
	return m, nil
}

// Report records e.
func (m *Metrics) Report(e report.Event) {
	m.events.WithLabelValues(string(e.Kind)).Inc()
	if e.Kind == report.EventStateChange && e.Subject != "" {
		m.states.WithLabelValues(e.Subject).Inc()
	}
}
