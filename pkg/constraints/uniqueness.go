package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// UniqueValueConstraint ensures no two focus nodes share a value for the
// path. Every focus node involved in a clash is reported.
type UniqueValueConstraint struct {
	Rule
}

// Name returns a human-readable name for this constraint
func (c *UniqueValueConstraint) Name() string {
	return fmt.Sprintf("Unique(%s)", c.Scope)
}

// Validate groups focus nodes by value and reports every shared value
func (c *UniqueValueConstraint) Validate(graph GraphReader) ([]Violation, error) {
	var violations []Violation

	holders := make(map[rdf.Term][]rdf.Term)
	var order []rdf.Term
	for _, node := range c.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, c.Scope.Path) {
			key := value.Canonical()
			if _, seen := holders[key]; !seen {
				order = append(order, key)
			}
			holders[key] = appendUnique(holders[key], node)
		}
	}

	for _, key := range order {
		nodes := holders[key]
		if len(nodes) < 2 {
			continue
		}
		for _, node := range nodes {
			violations = append(violations, c.violation(UniquenessViolation, c.Name(), node, key,
				fmt.Sprintf("%s value %q is shared by %d instances of %s",
					ShortName(c.Scope.Path), key.Value, len(nodes), ShortName(c.Scope.TargetClass)),
				map[string]any{"conflicting_nodes": len(nodes)}))
		}
	}

	return violations, nil
}

func appendUnique(ts []rdf.Term, t rdf.Term) []rdf.Term {
	for _, existing := range ts {
		if existing == t {
			return ts
		}
	}
	return append(ts, t)
}
