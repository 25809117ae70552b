package constraints

import (
	"errors"
	"fmt"
	"io"

	"github.com/dd0wney/cluso-netontology/pkg/metrics"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// ErrNoData is returned when Validate is given no data graph
var ErrNoData = errors.New("no data graph to validate")

// Validate checks data against schema. A nil schema selects the packaged
// network shapes. A non-nil ontology enables RDFS subclass inference:
// superclass types are materialized into a copy of data before checking.
// Data is never modified.
func Validate(data *rdf.Graph, schema *Schema, ontology *rdf.Graph, opts ...Option) (*ValidationResult, error) {
	if data == nil {
		return nil, ErrNoData
	}

	v := NewValidator(opts...)
	if schema == nil {
		s, err := DefaultSchema()
		if v.metrics != nil {
			v.metrics.RecordSchemaLoad(loadStatus(err))
		}
		if err != nil {
			return nil, err
		}
		schema = s
	}
	v.AddConstraints(schema.Constraints())

	return v.Validate(NewDataGraph(data, ontology))
}

// LoadShapesWithMetrics loads a shapes document and records the attempt
func LoadShapesWithMetrics(r io.Reader, source string, reg *metrics.Registry) (*Schema, error) {
	schema, err := LoadShapes(r, source)
	if reg != nil {
		reg.RecordSchemaLoad(loadStatus(err))
	}
	return schema, err
}

// LoadOntology parses a Turtle ontology document used for inference
func LoadOntology(r io.Reader, source string) (*rdf.Graph, error) {
	g, err := rdf.ParseTurtle(r, source)
	if err != nil {
		return nil, fmt.Errorf("load ontology: %w", err)
	}
	return g, nil
}

func loadStatus(err error) string {
	if err != nil {
		return metrics.StatusError
	}
	return metrics.StatusSuccess
}
