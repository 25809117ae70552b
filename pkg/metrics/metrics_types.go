package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the toolkit
type Registry struct {
	// Serialization Metrics
	SerializationsTotal     *prometheus.CounterVec
	SerializationDuration   prometheus.Histogram
	EntitiesSerializedTotal *prometheus.CounterVec
	TriplesEmitted          prometheus.Histogram

	// Validation Metrics
	ValidationsTotal    *prometheus.CounterVec
	ValidationDuration  prometheus.Histogram
	ViolationsTotal     *prometheus.CounterVec
	SchemaLoadsTotal    *prometheus.CounterVec
	FocusNodesEvaluated prometheus.Histogram

	// System Metrics
	BuildInfo *prometheus.GaugeVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initSerializationMetrics()
	r.initValidationMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
