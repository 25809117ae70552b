package constraints

import (
	"sort"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// DataGraph adapts an rdf.Graph to GraphReader. Type lookups follow the
// rdfs:subClassOf closure collected from the data graph and, when given,
// the ontology graph.
type DataGraph struct {
	graph  *rdf.Graph
	supers map[rdf.Term][]rdf.Term // class -> every superclass, itself excluded
}

// NewDataGraph wraps data. With a non-nil ontology the wrapped graph is a
// copy of data in which every rdf:type statement is extended with the
// superclasses of its class; data itself is never modified.
func NewDataGraph(data, ontology *rdf.Graph) *DataGraph {
	dg := &DataGraph{graph: data}
	dg.supers = subclassClosure(data, ontology)

	if ontology != nil {
		dg.graph = data.Clone()
		Materialize(dg.graph, dg.supers)
	}
	return dg
}

// Graph returns the graph being read
func (dg *DataGraph) Graph() *rdf.Graph {
	return dg.graph
}

// Objects implements GraphReader
func (dg *DataGraph) Objects(subject, predicate rdf.Term) []rdf.Term {
	return dg.graph.Objects(subject, predicate)
}

// Has implements GraphReader
func (dg *DataGraph) Has(t rdf.Triple) bool {
	return dg.graph.Has(t)
}

// InstancesOf implements GraphReader. The result is sorted.
func (dg *DataGraph) InstancesOf(class rdf.Term) []rdf.Term {
	seen := make(map[rdf.Term]bool)
	var out []rdf.Term
	for _, c := range dg.subclassesOf(class) {
		for _, n := range dg.graph.Subjects(rdf.RDFType, c) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// IsInstanceOf implements GraphReader
func (dg *DataGraph) IsInstanceOf(node, class rdf.Term) bool {
	for _, t := range dg.graph.Objects(node, rdf.RDFType) {
		if t == class {
			return true
		}
		for _, s := range dg.supers[t] {
			if s == class {
				return true
			}
		}
	}
	return false
}

// subclassesOf returns class and every class below it
func (dg *DataGraph) subclassesOf(class rdf.Term) []rdf.Term {
	out := []rdf.Term{class}
	for sub, supers := range dg.supers {
		for _, s := range supers {
			if s == class {
				out = append(out, sub)
				break
			}
		}
	}
	return out
}

// subclassClosure computes the transitive rdfs:subClassOf relation over
// the union of the given graphs. Cycles are tolerated.
func subclassClosure(graphs ...*rdf.Graph) map[rdf.Term][]rdf.Term {
	direct := make(map[rdf.Term][]rdf.Term)
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, t := range g.Triples() {
			if t.P == rdf.RDFSSubClassOf && !t.O.IsLiteral() {
				direct[t.S] = appendUnique(direct[t.S], t.O)
			}
		}
	}

	closure := make(map[rdf.Term][]rdf.Term, len(direct))
	for class := range direct {
		visited := map[rdf.Term]bool{class: true}
		queue := append([]rdf.Term(nil), direct[class]...)
		var supers []rdf.Term
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if visited[next] {
				continue
			}
			visited[next] = true
			supers = append(supers, next)
			queue = append(queue, direct[next]...)
		}
		closure[class] = supers
	}
	return closure
}

// Materialize adds (x rdf:type S) for every (x rdf:type C) in g and every
// superclass S of C. It returns the number of triples added.
func Materialize(g *rdf.Graph, supers map[rdf.Term][]rdf.Term) int {
	added := 0
	for _, t := range g.Triples() {
		if t.P != rdf.RDFType {
			continue
		}
		for _, s := range supers[t.O] {
			if g.Add(rdf.T(t.S, rdf.RDFType, s)) {
				added++
			}
		}
	}
	return added
}

// InferTypes returns a copy of data with superclass types materialized
// from the subclass hierarchy of data and ontology combined
func InferTypes(data, ontology *rdf.Graph) *rdf.Graph {
	out := data.Clone()
	Materialize(out, subclassClosure(data, ontology))
	return out
}
