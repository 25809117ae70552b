package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

func TestDataGraph_InstancesOfFollowsChain(t *testing.T) {
	graph := reader(t, `
net:Node   rdfs:subClassOf net:HWNetEntity .
net:Router rdfs:subClassOf net:Node .
ex:R1 a net:Router .
ex:If1 a net:HWNetEntity .
ex:V1 a net:VLAN .
`)

	assert.Equal(t, []rdf.Term{ex("If1"), ex("R1")}, graph.InstancesOf(onto("HWNetEntity")))
	assert.Equal(t, []rdf.Term{ex("R1")}, graph.InstancesOf(onto("Node")))
	assert.True(t, graph.IsInstanceOf(ex("R1"), onto("HWNetEntity")))
	assert.False(t, graph.IsInstanceOf(ex("V1"), onto("Node")))
}

func TestDataGraph_CycleTolerated(t *testing.T) {
	graph := reader(t, `
net:A rdfs:subClassOf net:B .
net:B rdfs:subClassOf net:A .
ex:x a net:A .
`)

	assert.True(t, graph.IsInstanceOf(ex("x"), onto("B")))
	assert.Equal(t, []rdf.Term{ex("x")}, graph.InstancesOf(onto("B")))
}

func TestNewDataGraph_OntologyMaterializesCopy(t *testing.T) {
	data := parseGraph(t, `ex:Sw1 a net:Switch .`)
	before := data.Len()

	dg := NewDataGraph(data, ontology.Graph())

	assert.Equal(t, before, data.Len(), "input graph must not change")
	for _, class := range []string{"Switch", "Node", "HWNetEntity", "NetEntity"} {
		assert.True(t, dg.Graph().Has(rdf.T(ex("Sw1"), rdf.RDFType, onto(class))), class)
	}
}

func TestInferTypes(t *testing.T) {
	data := parseGraph(t, `ex:V1 a net:VLAN .`)
	out := InferTypes(data, ontology.Graph())

	require.NotSame(t, data, out)
	assert.True(t, out.Has(rdf.T(ex("V1"), rdf.RDFType, onto("LogicalEntity"))))
	assert.False(t, data.Has(rdf.T(ex("V1"), rdf.RDFType, onto("LogicalEntity"))))
}

func TestMaterialize_CountsAdded(t *testing.T) {
	g := parseGraph(t, `
net:Host rdfs:subClassOf net:Node .
ex:H1 a net:Host .
ex:H2 a net:Host, net:Node .
`)

	added := Materialize(g, subclassClosure(g))
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, Materialize(g, subclassClosure(g)))
}
