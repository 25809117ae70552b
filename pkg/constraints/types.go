package constraints

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// GraphReader defines the read-only operations needed for constraint
// validation. Type lookups account for rdfs:subClassOf, so an instance of
// Router is also returned for Node.
type GraphReader interface {
	// Objects returns the values of (subject, predicate, ?)
	Objects(subject, predicate rdf.Term) []rdf.Term
	// Has reports whether a triple is present
	Has(t rdf.Triple) bool
	// InstancesOf returns every node typed with class or a subclass of it
	InstancesOf(class rdf.Term) []rdf.Term
	// IsInstanceOf reports whether node is typed with class or a subclass
	IsInstanceOf(node, class rdf.Term) bool
}

// Severity indicates the importance of a violation
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Violation"
	default:
		return "Unknown"
	}
}

// severityFromIRI maps sh:Info, sh:Warning and sh:Violation
func severityFromIRI(t rdf.Term) (Severity, error) {
	switch t {
	case rdf.IRI(rdf.SHNS + "Info"):
		return Info, nil
	case rdf.IRI(rdf.SHNS + "Warning"):
		return Warning, nil
	case rdf.IRI(rdf.SHNS + "Violation"):
		return Error, nil
	default:
		return Error, fmt.Errorf("unknown severity %s", t)
	}
}

// ViolationType categorizes the type of constraint violation
type ViolationType int

const (
	CardinalityViolation ViolationType = iota
	InvalidType
	ClassMismatch
	ValueNotAllowed
	OutOfRange
	UniquenessViolation
	InverseMismatch
)

func (vt ViolationType) String() string {
	switch vt {
	case CardinalityViolation:
		return "Cardinality"
	case InvalidType:
		return "Datatype"
	case ClassMismatch:
		return "Class"
	case ValueNotAllowed:
		return "In"
	case OutOfRange:
		return "Range"
	case UniquenessViolation:
		return "Unique"
	case InverseMismatch:
		return "BackReference"
	default:
		return "Unknown"
	}
}

// Violation represents one constraint failure on one focus node
type Violation struct {
	Type       ViolationType
	Severity   Severity
	Focus      rdf.Term // the instance the constraint was checked on
	Path       rdf.Term // the property being constrained
	Value      rdf.Term // offending value, zero when the failure is about absence
	Constraint string
	Message    string
	Details    map[string]any
}

func (v Violation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s: %s", v.Severity, ShortName(v.Focus), ShortName(v.Path), v.Message)
	return b.String()
}

// Constraint is the interface that all constraint types must implement.
type Constraint interface {
	// Validate checks the constraint against the graph
	// Returns a list of violations (empty if valid)
	Validate(graph GraphReader) ([]Violation, error)

	// Name returns a human-readable name for the constraint
	Name() string
}

// ShortName renders an IRI by its local part, for messages
func ShortName(t rdf.Term) string {
	if !t.IsIRI() {
		if t.IsZero() {
			return ""
		}
		return t.Value
	}
	if i := strings.LastIndexAny(t.Value, "#/"); i >= 0 && i < len(t.Value)-1 {
		return t.Value[i+1:]
	}
	return t.Value
}
