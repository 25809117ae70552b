// Package model holds the typed network topology entities.
//
// Entities reference each other by logical key (a plain string id) rather
// than by pointer, so they can be built in any order. Inverse relations
// such as Node.Interfaces and Interface.Node are separate fields and are
// never synchronized here; keeping them consistent is checked later by
// the constraint validator.
package model

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-netontology/pkg/validation"
)

// Kind names a concrete entity type. Values match ontology class names.
type Kind string

const (
	KindRouter            Kind = "Router"
	KindSwitch            Kind = "Switch"
	KindHost              Kind = "Host"
	KindInterface         Kind = "Iface"
	KindLink              Kind = "Link"
	KindVLAN              Kind = "VLAN"
	KindSubnet            Kind = "Subnet"
	KindAddressAssignment Kind = "AddressAssignment"
)

// HWStatus is the operational status of a hardware element
type HWStatus string

const (
	StatusOn       HWStatus = "ON"
	StatusOff      HWStatus = "OFF"
	StatusAbnormal HWStatus = "ABN"
)

// DefaultHWStatus applies when no status is set
const DefaultHWStatus = StatusOn

// PortMode is the switchport mode of an interface
type PortMode string

const (
	PortAccess       PortMode = "ACCESS"
	PortTrunk        PortMode = "TRUNK"
	PortUnconfigured PortMode = "UNCONFIGURED"
)

// DefaultPortMode applies when no mode is set
const DefaultPortMode = PortUnconfigured

// Entity is implemented by every concrete entity pointer type
type Entity interface {
	EntityID() string
	Kind() Kind
	Describe() *Base
	Validate() error
}

// Base carries the fields shared by every entity
type Base struct {
	ID          string `yaml:"id" validate:"required,logicalkey"`
	Label       string `yaml:"label,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// EntityID returns the logical key
func (b *Base) EntityID() string { return b.ID }

// Describe returns the shared descriptive fields
func (b *Base) Describe() *Base { return b }

// ErrInvalidEntity is wrapped by every ValidationError
var ErrInvalidEntity = errors.New("invalid entity")

// ValidationError reports an entity whose own fields break its invariants
type ValidationError struct {
	EntityID   string
	Kind       Kind
	Field      string
	Constraint string
	Message    string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	id := e.EntityID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Kind, id, e.Field, e.Message)
}

// Unwrap returns ErrInvalidEntity.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntity
}

// check runs tag validation on e and converts the first failure
func check(e Entity) error {
	err := validation.Struct(e)
	if err == nil {
		return nil
	}

	var fe *validation.FieldError
	if !errors.As(err, &fe) {
		return fmt.Errorf("%s %s: %w", e.Kind(), e.EntityID(), err)
	}
	return &ValidationError{
		EntityID:   e.EntityID(),
		Kind:       e.Kind(),
		Field:      fe.Field,
		Constraint: fe.Constraint(),
		Message:    fe.Message(),
	}
}

// ValidateAll validates a batch and returns the first failure
func ValidateAll(entities []Entity) error {
	for _, e := range entities {
		if e == nil {
			return fmt.Errorf("%w: nil entity", ErrInvalidEntity)
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
