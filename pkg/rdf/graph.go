package rdf

import (
	"sort"
)

// Graph is an in-memory set of triples with a subject index.
// It is not safe for concurrent mutation.
type Graph struct {
	triples   map[Triple]struct{}
	bySubject map[Term][]Triple
	prefixes  map[string]string // prefix -> namespace
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		triples:   make(map[Triple]struct{}),
		bySubject: make(map[Term][]Triple),
		prefixes:  make(map[string]string),
	}
}

// Add inserts a triple. It returns false if the triple was already present.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.triples[t]; ok {
		return false
	}
	g.triples[t] = struct{}{}
	g.bySubject[t.S] = append(g.bySubject[t.S], t)
	return true
}

// AddAll inserts every triple
func (g *Graph) AddAll(ts []Triple) {
	for _, t := range ts {
		g.Add(t)
	}
}

// Remove deletes a triple. It returns false if the triple was absent.
func (g *Graph) Remove(t Triple) bool {
	if _, ok := g.triples[t]; !ok {
		return false
	}
	delete(g.triples, t)

	list := g.bySubject[t.S]
	for i := range list {
		if list[i] == t {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(g.bySubject, t.S)
	} else {
		g.bySubject[t.S] = list
	}
	return true
}

// Has reports whether the triple is in the graph
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of triples
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns every triple in a stable order (subject, predicate, object)
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sortTriples(out)
	return out
}

// About returns the triples whose subject is s, sorted
func (g *Graph) About(s Term) []Triple {
	out := append([]Triple(nil), g.bySubject[s]...)
	sortTriples(out)
	return out
}

// Objects returns the objects of (s, p, ?), sorted
func (g *Graph) Objects(s, p Term) []Term {
	var out []Term
	for _, t := range g.bySubject[s] {
		if t.P == p {
			out = append(out, t.O)
		}
	}
	sortTerms(out)
	return out
}

// Object returns the first object of (s, p, ?)
func (g *Graph) Object(s, p Term) (Term, bool) {
	objs := g.Objects(s, p)
	if len(objs) == 0 {
		return Term{}, false
	}
	return objs[0], true
}

// Subjects returns the subjects of (?, p, o), sorted
func (g *Graph) Subjects(p, o Term) []Term {
	var out []Term
	for t := range g.triples {
		if t.P == p && t.O == o {
			out = append(out, t.S)
		}
	}
	sortTerms(out)
	return out
}

// SubjectTerms returns every distinct subject, sorted
func (g *Graph) SubjectTerms() []Term {
	out := make([]Term, 0, len(g.bySubject))
	for s := range g.bySubject {
		out = append(out, s)
	}
	sortTerms(out)
	return out
}

// Merge adds all triples and prefix bindings of other into g
func (g *Graph) Merge(other *Graph) {
	if other == nil {
		return
	}
	for t := range other.triples {
		g.Add(t)
	}
	for p, ns := range other.prefixes {
		if _, ok := g.prefixes[p]; !ok {
			g.prefixes[p] = ns
		}
	}
}

// Clone returns an independent copy of g
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.Merge(g)
	return c
}

// Bind associates a prefix with a namespace for serialization
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Namespaces returns a copy of the prefix bindings
func (g *Graph) Namespaces() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		out[p] = ns
	}
	return out
}

// List walks an RDF collection starting at head and returns its members.
// It stops at rdf:nil or at the first malformed cell.
func (g *Graph) List(head Term) ([]Term, bool) {
	var out []Term
	seen := make(map[Term]bool)
	for head != RDFNil {
		if seen[head] {
			return out, false
		}
		seen[head] = true
		first, ok := g.Object(head, RDFFirst)
		if !ok {
			return out, false
		}
		out = append(out, first)
		rest, ok := g.Object(head, RDFRest)
		if !ok {
			return out, false
		}
		head = rest
	}
	return out, true
}

func sortTerms(ts []Term) {
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].sortKey() < ts[j].sortKey()
	})
}

func sortTriples(ts []Triple) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.S != b.S {
			return a.S.sortKey() < b.S.sortKey()
		}
		if a.P != b.P {
			return a.P.sortKey() < b.P.sortKey()
		}
		return a.O.sortKey() < b.O.sortKey()
	})
}
