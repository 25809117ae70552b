package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// BackReferenceConstraint requires every value v of the path on a focus
// node n to state (v, Inverse, n). It catches one-sided relations such as
// a node listing an interface that does not name the node as its owner.
type BackReferenceConstraint struct {
	Rule
	Inverse rdf.Term
}

// Name returns the constraint name
func (bc *BackReferenceConstraint) Name() string {
	return fmt.Sprintf("BackReference(%s,%s)", bc.Scope, ShortName(bc.Inverse))
}

// Validate checks every value of the path on every focus node
func (bc *BackReferenceConstraint) Validate(graph GraphReader) ([]Violation, error) {
	violations := make([]Violation, 0)

	for _, node := range bc.Scope.FocusNodes(graph) {
		for _, value := range graph.Objects(node, bc.Scope.Path) {
			if value.IsLiteral() {
				continue
			}
			if graph.Has(rdf.T(value, bc.Inverse, node)) {
				continue
			}
			violations = append(violations, bc.violation(InverseMismatch, bc.Name(), node, value,
				fmt.Sprintf("%s lists %s via %s, but %s has no %s pointing back",
					ShortName(node), ShortName(value), ShortName(bc.Scope.Path),
					ShortName(value), ShortName(bc.Inverse)),
				map[string]any{"inverse": bc.Inverse.Value}))
		}
	}

	return violations, nil
}
