// Package observability exposes engine lifecycle events as Prometheus
// metrics. Hosts attach the hooks bundle to the engine and mount
// promhttp wherever they serve metrics.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/reflex/pkg/domain"
)

// Metrics bundles the engine's Prometheus collectors.
type Metrics struct {
	executions *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reflex_command_executions_total",
				Help: "Total number of command executions",
			},
			[]string{"command", "outcome"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reflex_item_failures_total",
				Help: "Total number of failing series items",
			},
			[]string{"command"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "reflex_command_duration_seconds",
				Help: "Duration of command executions",
			},
			[]string{"command"},
		),
	}
	reg.MustRegister(m.executions, m.failures, m.duration)
	return m
}

// Executions exposes the execution counter, mainly for tests.
func (m *Metrics) Executions() *prometheus.CounterVec {
	return m.executions
}

// Failures exposes the item-failure counter, mainly for tests.
func (m *Metrics) Failures() *prometheus.CounterVec {
	return m.failures
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandEnd: func(ctx context.Context, e *domain.ActionEvent) {
			outcome := "success"
			if !e.Success {
				outcome = "failure"
			}
			m.executions.WithLabelValues(e.Command, outcome).Inc()
			m.duration.WithLabelValues(e.Command).Observe(e.Duration.Seconds())
		},
		OnItemFailure: func(ctx context.Context, e *domain.ActionEvent) {
			m.failures.WithLabelValues(e.Command).Inc()
		},
	}
}
