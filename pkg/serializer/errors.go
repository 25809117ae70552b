package serializer

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-netontology/pkg/model"
)

// Sentinel errors for serialization failures
var (
	ErrUnsupportedEntity   = errors.New("unsupported entity type")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// SerializationError reports an entity that could not be emitted. No graph
// is returned alongside it.
type SerializationError struct {
	EntityID string
	Kind     model.Kind
	Field    string // empty when the failure is not tied to one field
	Cause    error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	msg := fmt.Sprintf("serialize %s %q", e.Kind, e.EntityID)
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *SerializationError) Unwrap() error {
	return e.Cause
}

func wrapEntity(e model.Entity, field string, cause error) *SerializationError {
	se := &SerializationError{Field: field, Cause: cause}
	if e != nil {
		se.EntityID = e.EntityID()
		se.Kind = e.Kind()
	}
	return se
}
