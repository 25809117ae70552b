package constraints

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

var (
	shNodeShape   = sh("NodeShape")
	shTargetClass = sh("targetClass")
	shProperty    = sh("property")
	shPath        = sh("path")
	shMinCount    = sh("minCount")
	shMaxCount    = sh("maxCount")
	shDatatype    = sh("datatype")
	shClass       = sh("class")
	shIn          = sh("in")
	shMinIncl     = sh("minInclusive")
	shMaxIncl     = sh("maxInclusive")
	shSeverity    = sh("severity")
	shMessage     = sh("message")
	shHasValue    = sh("hasValue")
	shDeactivated = sh("deactivated")

	nshBackReference = rdf.IRI(ontology.ShapeBackReference)
	nshUnique        = rdf.IRI(ontology.ShapeUnique)
	nshFilter        = rdf.IRI(ontology.ShapeFilter)
)

func sh(local string) rdf.Term {
	return rdf.IRI(rdf.SHNS + local)
}

// Keywords that carry documentation only
var annotations = map[rdf.Term]bool{
	sh("name"):        true,
	sh("description"): true,
	sh("order"):       true,
	sh("group"):       true,
}

// Shape is one node shape: a target plus the constraints checked on it
type Shape struct {
	IRI         rdf.Term
	TargetClass rdf.Term
	Filter      *Filter
	Constraints []Constraint
}

// Schema is a loaded shapes document
type Schema struct {
	Source string
	Shapes []Shape
}

// Constraints returns the constraints of every shape, in shape order
func (s *Schema) Constraints() []Constraint {
	var out []Constraint
	for _, shape := range s.Shapes {
		out = append(out, shape.Constraints...)
	}
	return out
}

// LoadShapes parses a Turtle shapes document. Supported: sh:NodeShape with
// sh:targetClass and sh:property; property shapes with an IRI sh:path and
// sh:minCount, sh:maxCount, sh:datatype, sh:class, sh:in, sh:minInclusive,
// sh:maxInclusive, sh:severity and sh:message; the extensions
// nsh:backReference, nsh:unique and nsh:filter. Anything else in the SHACL
// or extension namespaces fails the load.
func LoadShapes(r io.Reader, source string) (*Schema, error) {
	g, err := rdf.ParseTurtle(r, source)
	if err != nil {
		return nil, &SchemaLoadError{Source: source, Cause: err}
	}
	return SchemaFromGraph(g, source)
}

// SchemaFromGraph reads shapes out of an already parsed graph
func SchemaFromGraph(g *rdf.Graph, source string) (*Schema, error) {
	schema := &Schema{Source: source}

	for _, node := range g.Subjects(rdf.RDFType, shNodeShape) {
		shapes, err := loadNodeShape(g, node)
		if err != nil {
			return nil, &SchemaLoadError{Source: source, Shape: ShortName(node), Cause: err}
		}
		schema.Shapes = append(schema.Shapes, shapes...)
	}

	if len(schema.Shapes) == 0 {
		return nil, &SchemaLoadError{Source: source, Cause: fmt.Errorf("no sh:NodeShape found")}
	}
	return schema, nil
}

var (
	defaultSchemaOnce sync.Once
	defaultSchema     *Schema
	defaultSchemaErr  error
)

// DefaultSchema returns the packaged network shapes, loaded once
func DefaultSchema() (*Schema, error) {
	defaultSchemaOnce.Do(func() {
		defaultSchema, defaultSchemaErr = LoadShapes(ontology.PackagedShapes(), ontology.PackagedShapesName)
	})
	return defaultSchema, defaultSchemaErr
}

// loadNodeShape returns one Shape per sh:targetClass
func loadNodeShape(g *rdf.Graph, node rdf.Term) ([]Shape, error) {
	var filter *Filter
	var propertyNodes []rdf.Term
	var targets []rdf.Term

	for _, t := range g.About(node) {
		switch {
		case t.P == rdf.RDFType:
		case t.P == shTargetClass:
			if !t.O.IsIRI() {
				return nil, fmt.Errorf("sh:targetClass must be an IRI, got %s", t.O)
			}
			targets = append(targets, t.O)
		case t.P == shProperty:
			propertyNodes = append(propertyNodes, t.O)
		case t.P == nshFilter:
			if filter != nil {
				return nil, fmt.Errorf("more than one nsh:filter")
			}
			f, err := loadFilter(g, t.O)
			if err != nil {
				return nil, err
			}
			filter = f
		case t.P == shDeactivated:
			if t.O.Value == "true" {
				return nil, nil
			}
		case annotations[t.P]:
		case isKeyword(t.P):
			return nil, fmt.Errorf("unsupported keyword %s", ShortName(t.P))
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no sh:targetClass; only class targets are supported")
	}
	sortByString(targets)

	shapes := make([]Shape, 0, len(targets))
	for _, target := range targets {
		shape := Shape{IRI: node, TargetClass: target, Filter: filter}
		for _, p := range propertyNodes {
			cs, err := loadPropertyShape(g, p, Scope{Shape: node, TargetClass: target, Filter: filter})
			if err != nil {
				return nil, err
			}
			shape.Constraints = append(shape.Constraints, cs...)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func loadFilter(g *rdf.Graph, node rdf.Term) (*Filter, error) {
	path, ok := g.Object(node, shPath)
	if !ok || !path.IsIRI() {
		return nil, fmt.Errorf("nsh:filter needs an IRI sh:path")
	}
	value, ok := g.Object(node, shHasValue)
	if !ok {
		return nil, fmt.Errorf("nsh:filter needs sh:hasValue")
	}
	return &Filter{Path: path, Value: value}, nil
}

// loadPropertyShape turns one sh:property node into constraints
func loadPropertyShape(g *rdf.Graph, node rdf.Term, scope Scope) ([]Constraint, error) {
	paths := g.Objects(node, shPath)
	if len(paths) != 1 || !paths[0].IsIRI() {
		return nil, fmt.Errorf("property shape %s needs exactly one IRI sh:path; path expressions are not supported", node)
	}
	scope.Path = paths[0]
	rule := Rule{Scope: scope, Severity: Error}

	var (
		out          []Constraint
		card         *CardinalityConstraint
		rng          *RangeConstraint
		severitySeen bool
	)
	cardinality := func() *CardinalityConstraint {
		if card == nil {
			card = &CardinalityConstraint{Min: 0, Max: Unbounded}
		}
		return card
	}
	valueRange := func() *RangeConstraint {
		if rng == nil {
			rng = &RangeConstraint{}
		}
		return rng
	}

	for _, t := range g.About(node) {
		switch t.P {
		case shPath:
		case shMinCount:
			n, err := count(t.O)
			if err != nil {
				return nil, err
			}
			cardinality().Min = n
		case shMaxCount:
			n, err := count(t.O)
			if err != nil {
				return nil, err
			}
			cardinality().Max = n
		case shDatatype:
			if !t.O.IsIRI() {
				return nil, fmt.Errorf("sh:datatype must be an IRI")
			}
			out = append(out, &DatatypeConstraint{Datatype: t.O})
		case shClass:
			if !t.O.IsIRI() {
				return nil, fmt.Errorf("sh:class must be an IRI")
			}
			out = append(out, &ClassConstraint{Class: t.O})
		case shIn:
			values, ok := g.List(t.O)
			if !ok {
				return nil, fmt.Errorf("sh:in is not a well-formed list")
			}
			out = append(out, &InConstraint{Allowed: values})
		case shMinIncl, shMaxIncl:
			n, err := t.O.Int()
			if err != nil || !t.O.IsLiteral() {
				return nil, fmt.Errorf("%s must be an integer, got %s", ShortName(t.P), t.O)
			}
			if t.P == shMinIncl {
				valueRange().Min = &n
			} else {
				valueRange().Max = &n
			}
		case shSeverity:
			if severitySeen {
				return nil, fmt.Errorf("more than one sh:severity")
			}
			sev, err := severityFromIRI(t.O)
			if err != nil {
				return nil, err
			}
			rule.Severity = sev
			severitySeen = true
		case shMessage:
			rule.Message = t.O.Value
		case nshBackReference:
			if !t.O.IsIRI() {
				return nil, fmt.Errorf("nsh:backReference must be an IRI")
			}
			out = append(out, &BackReferenceConstraint{Inverse: t.O})
		case nshUnique:
			if t.O.Value == "true" {
				out = append(out, &UniqueValueConstraint{})
			}
		default:
			if isKeyword(t.P) && !annotations[t.P] {
				return nil, fmt.Errorf("unsupported keyword %s", ShortName(t.P))
			}
		}
	}

	if card != nil {
		out = append([]Constraint{card}, out...)
	}
	if rng != nil {
		out = append(out, rng)
	}
	for _, c := range out {
		setRule(c, rule)
	}
	return out, nil
}

// setRule stamps the shared scope, severity and message onto c
func setRule(c Constraint, rule Rule) {
	switch v := c.(type) {
	case *CardinalityConstraint:
		v.Rule = rule
	case *DatatypeConstraint:
		v.Rule = rule
	case *ClassConstraint:
		v.Rule = rule
	case *InConstraint:
		v.Rule = rule
	case *RangeConstraint:
		v.Rule = rule
	case *UniqueValueConstraint:
		v.Rule = rule
	case *BackReferenceConstraint:
		v.Rule = rule
	}
}

func count(t rdf.Term) (int, error) {
	n, err := t.Int()
	if err != nil || !t.IsLiteral() || n < 0 {
		return 0, fmt.Errorf("cardinality must be a non-negative integer, got %s", t)
	}
	return int(n), nil
}

func isKeyword(p rdf.Term) bool {
	if !p.IsIRI() {
		return false
	}
	return strings.HasPrefix(p.Value, rdf.SHNS) || strings.HasPrefix(p.Value, ontology.ShapesNamespace)
}

func sortByString(ts []rdf.Term) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].String() < ts[j].String() })
}
