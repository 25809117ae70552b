package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initValidationMetrics() {
	r.ValidationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netonto_validations_total",
			Help: "Total number of validation runs by result (conforms, violations, error)",
		},
		[]string{"result"},
	)

	r.ValidationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netonto_validation_duration_seconds",
			Help:    "Validation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
	)

	r.ViolationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netonto_violations_total",
			Help: "Total number of violations reported, by constraint component and severity",
		},
		[]string{"component", "severity"},
	)

	r.SchemaLoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netonto_schema_loads_total",
			Help: "Total number of shapes schema loads",
		},
		[]string{"status"},
	)

	r.FocusNodesEvaluated = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netonto_focus_nodes_evaluated",
			Help:    "Number of focus nodes checked per validation run",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)
}
