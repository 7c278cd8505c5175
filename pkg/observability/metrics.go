package observability

import (
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for navigation controllers.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Deferred    *prometheus.CounterVec
	Replayed    *prometheus.CounterVec
	Depth       prometheus.Gauge
	Active      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navstack_transitions_total",
				Help: "Navigation transitions executed against a container",
			},
			[]string{"kind"},
		),
		Deferred: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navstack_deferred_operations_total",
				Help: "Operations recorded while the controller was suspended",
			},
			[]string{"kind"},
		),
		Replayed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navstack_replayed_operations_total",
				Help: "Deferred operations replayed on resume",
			},
			[]string{"kind", "executed"},
		),
		Depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "navstack_stack_depth",
			Help: "Stack depth after the last executed transition",
		}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "navstack_active_controllers",
			Help: "Controllers currently in the active state",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Transitions, m.Deferred, m.Replayed, m.Depth, m.Active)
	}
	return m
}

// Hooks returns controller hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e domain.TransitionEvent) {
			m.Transitions.WithLabelValues(string(e.Kind)).Inc()
			m.Depth.Set(float64(e.Depth))
		},
		OnDeferred: func(op domain.Operation) {
			m.Deferred.WithLabelValues(string(op.Kind)).Inc()
		},
		OnReplay: func(op domain.Operation, executed bool) {
			label := "false"
			if executed {
				label = "true"
			}
			m.Replayed.WithLabelValues(string(op.Kind), label).Inc()
		},
		OnLifecycle: func(ch domain.LifecycleChange) {
			if ch.To == domain.Active {
				m.Active.Inc()
			} else {
				m.Active.Dec()
			}
		},
	}
}
