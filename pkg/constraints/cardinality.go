package constraints

import (
	"fmt"
)

// Unbounded disables the maximum of a CardinalityConstraint
const Unbounded = -1

// CardinalityConstraint validates the number of values a focus node has
// for a property
type CardinalityConstraint struct {
	Rule
	Min int // 0 = optional
	Max int // Unbounded = no maximum
}

// Name returns the constraint name
func (cc *CardinalityConstraint) Name() string {
	upper := "*"
	if cc.Max != Unbounded {
		upper = fmt.Sprintf("%d", cc.Max)
	}
	return fmt.Sprintf("Cardinality(%s,[%d,%s])", cc.Scope, cc.Min, upper)
}

// Validate checks the cardinality constraint against every focus node
func (cc *CardinalityConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range cc.Scope.FocusNodes(graph) {
		count := len(graph.Objects(node, cc.Scope.Path))

		// Check minimum
		if count < cc.Min {
			violations = append(violations, cc.violation(CardinalityViolation, cc.Name(), node, zeroTerm,
				fmt.Sprintf("%s has %d value(s) for %s, minimum is %d",
					ShortName(node), count, ShortName(cc.Scope.Path), cc.Min),
				map[string]any{"count": count, "min": cc.Min}))
		}

		// Check maximum
		if cc.Max != Unbounded && count > cc.Max {
			violations = append(violations, cc.violation(CardinalityViolation, cc.Name(), node, zeroTerm,
				fmt.Sprintf("%s has %d value(s) for %s, maximum is %d",
					ShortName(node), count, ShortName(cc.Scope.Path), cc.Max),
				map[string]any{"count": count, "max": cc.Max}))
		}
	}

	return violations, nil
}
