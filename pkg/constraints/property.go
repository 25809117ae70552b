package constraints

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// DatatypeConstraint requires every value to be a literal of Datatype
type DatatypeConstraint struct {
	Rule
	Datatype rdf.Term
}

// Name returns the constraint name
func (dc *DatatypeConstraint) Name() string {
	return fmt.Sprintf("Datatype(%s,%s)", dc.Scope, ShortName(dc.Datatype))
}

// Validate checks every value of the path on every focus node
func (dc *DatatypeConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range dc.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, dc.Scope.Path) {
			if value.HasDatatype(dc.Datatype) {
				continue
			}
			violations = append(violations, dc.violation(InvalidType, dc.Name(), node, value,
				fmt.Sprintf("%s value %s is not a literal of type %s",
					ShortName(dc.Scope.Path), value, ShortName(dc.Datatype)),
				map[string]any{"expected": dc.Datatype.Value, "actual": value.Datatype}))
		}
	}

	return violations, nil
}

// ClassConstraint requires every value to be an instance of Class,
// subclasses included
type ClassConstraint struct {
	Rule
	Class rdf.Term
}

// Name returns the constraint name
func (cc *ClassConstraint) Name() string {
	return fmt.Sprintf("Class(%s,%s)", cc.Scope, ShortName(cc.Class))
}

// Validate checks every value of the path on every focus node
func (cc *ClassConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range cc.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, cc.Scope.Path) {
			if !value.IsLiteral() && graph.IsInstanceOf(value, cc.Class) {
				continue
			}
			violations = append(violations, cc.violation(ClassMismatch, cc.Name(), node, value,
				fmt.Sprintf("%s value %s is not an instance of %s",
					ShortName(cc.Scope.Path), ShortName(value), ShortName(cc.Class)),
				map[string]any{"class": cc.Class.Value}))
		}
	}

	return violations, nil
}

// InConstraint restricts values to an enumeration
type InConstraint struct {
	Rule
	Allowed []rdf.Term
}

// Name returns the constraint name
func (ic *InConstraint) Name() string {
	vals := make([]string, len(ic.Allowed))
	for i, a := range ic.Allowed {
		vals[i] = a.Value
	}
	return fmt.Sprintf("In(%s,{%s})", ic.Scope, strings.Join(vals, ","))
}

func (ic *InConstraint) allows(value rdf.Term) bool {
	for _, a := range ic.Allowed {
		if a.SameValue(value) {
			return true
		}
	}
	return false
}

// Validate checks every value of the path on every focus node
func (ic *InConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range ic.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, ic.Scope.Path) {
			if ic.allows(value) {
				continue
			}
			violations = append(violations, ic.violation(ValueNotAllowed, ic.Name(), node, value,
				fmt.Sprintf("%s value %q is not one of the allowed values",
					ShortName(ic.Scope.Path), value.Value),
				map[string]any{"allowed": len(ic.Allowed)}))
		}
	}

	return violations, nil
}

// RangeConstraint validates that integer values fall within an inclusive
// range. A nil bound is not checked.
type RangeConstraint struct {
	Rule
	Min *int64
	Max *int64
}

// Name returns the constraint name
func (rc *RangeConstraint) Name() string {
	lo, hi := "-inf", "+inf"
	if rc.Min != nil {
		lo = fmt.Sprintf("%d", *rc.Min)
	}
	if rc.Max != nil {
		hi = fmt.Sprintf("%d", *rc.Max)
	}
	return fmt.Sprintf("Range(%s,[%s,%s])", rc.Scope, lo, hi)
}

// Validate checks every value of the path on every focus node
func (rc *RangeConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range rc.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, rc.Scope.Path) {
			n, err := value.Int()
			if !value.IsLiteral() || err != nil {
				violations = append(violations, rc.violation(OutOfRange, rc.Name(), node, value,
					fmt.Sprintf("%s value %s is not numeric", ShortName(rc.Scope.Path), value),
					nil))
				continue
			}

			if rc.Min != nil && n < *rc.Min {
				violations = append(violations, rc.violation(OutOfRange, rc.Name(), node, value,
					fmt.Sprintf("%s value %d is below minimum %d", ShortName(rc.Scope.Path), n, *rc.Min),
					map[string]any{"value": n, "min": *rc.Min}))
			}
			if rc.Max != nil && n > *rc.Max {
				violations = append(violations, rc.violation(OutOfRange, rc.Name(), node, value,
					fmt.Sprintf("%s value %d is above maximum %d", ShortName(rc.Scope.Path), n, *rc.Max),
					map[string]any{"value": n, "max": *rc.Max}))
			}
		}
	}

	return violations, nil
}
