package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSerializationMetrics() {
	r.SerializationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netonto_serializations_total",
			Help: "Total number of serialization calls",
		},
		[]string{"status"},
	)

	r.SerializationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netonto_serialization_duration_seconds",
			Help:    "Serialization duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)

	r.EntitiesSerializedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netonto_entities_serialized_total",
			Help: "Total number of entities serialized, by kind",
		},
		[]string{"kind"},
	)

	r.TriplesEmitted = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netonto_triples_emitted",
			Help:    "Number of triples in each serialized graph",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)
}
