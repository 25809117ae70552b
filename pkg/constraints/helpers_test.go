package constraints

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

const testPrefixes = `@prefix net:  <http://www.example.org/network-ontology#> .
@prefix ex:   <http://www.example.org/network-instance#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd:  <http://www.w3.org/2001/XMLSchema#> .
@prefix sh:   <http://www.w3.org/ns/shacl#> .
@prefix nsh:  <http://www.example.org/network-shapes#> .
`

// parseGraph reads a Turtle body with the test prefixes prepended
func parseGraph(t *testing.T, body string) *rdf.Graph {
	t.Helper()
	g, err := rdf.ParseTurtle(strings.NewReader(testPrefixes+body), t.Name())
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return g
}

// reader wraps a fixture without inference
func reader(t *testing.T, body string) *DataGraph {
	t.Helper()
	return NewDataGraph(parseGraph(t, body), nil)
}

func ex(local string) rdf.Term {
	return rdf.IRI(ontology.InstanceNamespace + local)
}

func onto(local string) rdf.Term {
	return rdf.IRI(ontology.Namespace + local)
}

func scopeOf(class, path string) Scope {
	return Scope{TargetClass: onto(class), Path: onto(path)}
}

func focusNames(vs []Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = ShortName(v.Focus)
	}
	return out
}
