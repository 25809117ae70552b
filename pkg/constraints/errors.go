package constraints

import (
	"errors"
	"fmt"
)

// ErrSchemaLoad is the sentinel wrapped by every SchemaLoadError
var ErrSchemaLoad = errors.New("shapes could not be loaded")

// SchemaLoadError reports a shapes document that is unreadable or uses a
// structure the validator does not support
type SchemaLoadError struct {
	Source string
	Shape  string // offending shape, empty for document-level failures
	Cause  error
}

// Error implements the error interface.
func (e *SchemaLoadError) Error() string {
	if e.Shape != "" {
		return fmt.Sprintf("load shapes %s: shape %s: %v", e.Source, e.Shape, e.Cause)
	}
	return fmt.Sprintf("load shapes %s: %v", e.Source, e.Cause)
}

// Unwrap returns the cause
func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Is matches ErrSchemaLoad.
func (e *SchemaLoadError) Is(target error) bool {
	return target == ErrSchemaLoad
}
