package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// Filter narrows focus nodes to those carrying Value on Path
type Filter struct {
	Path  rdf.Term
	Value rdf.Term
}

// Scope selects focus nodes and the property checked on them
type Scope struct {
	Shape       rdf.Term // declaring shape, for reporting
	TargetClass rdf.Term
	Filter      *Filter
	Path        rdf.Term
}

// FocusNodes returns the targeted instances that pass the filter
func (s Scope) FocusNodes(graph GraphReader) []rdf.Term {
	nodes := graph.InstancesOf(s.TargetClass)
	if s.Filter == nil {
		return nodes
	}
	out := nodes[:0:0]
	for _, n := range nodes {
		for _, v := range graph.Objects(n, s.Filter.Path) {
			if v.SameValue(s.Filter.Value) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

func (s Scope) String() string {
	name := ShortName(s.TargetClass)
	if s.Filter != nil {
		name += fmt.Sprintf("[%s=%s]", ShortName(s.Filter.Path), s.Filter.Value.Value)
	}
	return name + "." + ShortName(s.Path)
}

// Rule holds what every packaged constraint shares
type Rule struct {
	Scope    Scope
	Severity Severity
	Message  string // replaces the generated message when set
}

// Target returns the rule's scope
func (r Rule) Target() Scope {
	return r.Scope
}

func (r Rule) violation(vt ViolationType, name string, focus, value rdf.Term, generated string, details map[string]any) Violation {
	msg := generated
	if r.Message != "" {
		msg = r.Message
	}
	if details == nil {
		details = make(map[string]any)
	}
	details["target"] = ShortName(r.Scope.TargetClass)
	if !r.Scope.Shape.IsZero() {
		details["shape"] = ShortName(r.Scope.Shape)
	}
	return Violation{
		Type:       vt,
		Severity:   r.Severity,
		Focus:      focus,
		Path:       r.Scope.Path,
		Value:      value,
		Constraint: name,
		Message:    msg,
		Details:    details,
	}
}

// scoped is implemented by constraints that evaluate focus nodes
type scoped interface {
	Target() Scope
}

var zeroTerm rdf.Term
