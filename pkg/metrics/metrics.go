package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Validation result label values
const (
	ResultConforms   = "conforms"
	ResultViolations = "violations"
	ResultError      = "error"
)

// RecordSerialization records one serialization call. kinds counts the
// entities emitted per kind; it is ignored on failure.
func (r *Registry) RecordSerialization(status string, duration time.Duration, triples int, kinds map[string]int) {
	r.SerializationsTotal.WithLabelValues(status).Inc()
	r.SerializationDuration.Observe(duration.Seconds())
	if status != StatusSuccess {
		return
	}
	r.TriplesEmitted.Observe(float64(triples))
	for kind, n := range kinds {
		r.EntitiesSerializedTotal.WithLabelValues(kind).Add(float64(n))
	}
}

// RecordValidation records one validation run
func (r *Registry) RecordValidation(result string, duration time.Duration, focusNodes int) {
	r.ValidationsTotal.WithLabelValues(result).Inc()
	r.ValidationDuration.Observe(duration.Seconds())
	r.FocusNodesEvaluated.Observe(float64(focusNodes))
}

// RecordViolation counts one reported violation
func (r *Registry) RecordViolation(component, severity string) {
	r.ViolationsTotal.WithLabelValues(component, severity).Inc()
}

// RecordSchemaLoad records a shapes schema load attempt
func (r *Registry) RecordSchemaLoad(status string) {
	r.SchemaLoadsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile dumps every metric in the Prometheus text format, for the
// node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
