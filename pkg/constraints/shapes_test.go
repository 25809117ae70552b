package constraints

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

func loadTestShapes(t *testing.T, body string) (*Schema, error) {
	t.Helper()
	return LoadShapes(strings.NewReader(testPrefixes+body), "test-shapes.ttl")
}

func TestDefaultSchema(t *testing.T) {
	schema, err := DefaultSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	assert.Len(t, schema.Shapes, 11)
	assert.NotEmpty(t, schema.Constraints())

	again, err := DefaultSchema()
	require.NoError(t, err)
	assert.Same(t, schema, again)
}

func TestDefaultSchema_VLANUniquenessIsWarning(t *testing.T) {
	schema, err := DefaultSchema()
	require.NoError(t, err)

	var found bool
	for _, c := range schema.Constraints() {
		if u, ok := c.(*UniqueValueConstraint); ok {
			found = true
			assert.Equal(t, onto("VLAN"), u.Scope.TargetClass)
			assert.Equal(t, onto("vlanId"), u.Scope.Path)
			assert.Equal(t, Warning, u.Severity)
		}
	}
	assert.True(t, found, "packaged shapes declare VLAN id uniqueness")
}

func TestLoadShapes_PropertyKeywords(t *testing.T) {
	schema, err := loadTestShapes(t, `
ex:VLANShape a sh:NodeShape ;
    sh:targetClass net:VLAN ;
    sh:property [
        sh:path net:vlanId ;
        sh:name "VLAN id" ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
        sh:datatype xsd:integer ;
        sh:minInclusive 1 ;
        sh:maxInclusive 4094 ;
        sh:severity sh:Warning ;
        sh:message "bad vlan id"
    ] .
`)
	require.NoError(t, err)
	require.Len(t, schema.Shapes, 1)

	cs := schema.Shapes[0].Constraints
	require.Len(t, cs, 3)

	card, ok := cs[0].(*CardinalityConstraint)
	require.True(t, ok, "cardinality comes first")
	assert.Equal(t, 1, card.Min)
	assert.Equal(t, 1, card.Max)

	_, ok = cs[1].(*DatatypeConstraint)
	assert.True(t, ok)

	rng, ok := cs[2].(*RangeConstraint)
	require.True(t, ok)
	assert.Equal(t, int64(1), *rng.Min)
	assert.Equal(t, int64(4094), *rng.Max)

	for _, c := range cs {
		s := c.(scoped).Target()
		assert.Equal(t, ex("VLANShape"), s.Shape)
		assert.Equal(t, onto("vlanId"), s.Path)
	}
	assert.Equal(t, Warning, card.Severity)
	assert.Equal(t, "bad vlan id", card.Message)
}

func TestLoadShapes_FilterAndExtensions(t *testing.T) {
	schema, err := loadTestShapes(t, `
ex:AccessShape a sh:NodeShape ;
    sh:targetClass net:Iface ;
    nsh:filter [ sh:path net:portMode ; sh:hasValue "ACCESS" ] ;
    sh:property [ sh:path net:accessVlan ; sh:in ( ex:V10 ex:V20 ) ] .

ex:NodeShape a sh:NodeShape ;
    sh:targetClass net:Node ;
    sh:property [ sh:path net:HasIFace ; nsh:backReference net:BelongsToNode ] ;
    sh:property [ sh:path net:HWStatus ; nsh:unique true ] .
`)
	require.NoError(t, err)
	require.Len(t, schema.Shapes, 2)

	access := schema.Shapes[0]
	require.NotNil(t, access.Filter)
	assert.Equal(t, onto("portMode"), access.Filter.Path)
	assert.True(t, access.Filter.Value.SameValue(rdf.Literal("ACCESS")))

	in, ok := access.Constraints[0].(*InConstraint)
	require.True(t, ok)
	assert.Equal(t, []rdf.Term{ex("V10"), ex("V20")}, in.Allowed)
	assert.NotNil(t, in.Scope.Filter)

	node := schema.Shapes[1]
	require.Len(t, node.Constraints, 2)
	var backRefs, uniques int
	for _, c := range node.Constraints {
		switch v := c.(type) {
		case *BackReferenceConstraint:
			backRefs++
			assert.Equal(t, onto("HasIFace"), v.Scope.Path)
			assert.Equal(t, onto("BelongsToNode"), v.Inverse)
		case *UniqueValueConstraint:
			uniques++
			assert.Equal(t, onto("HWStatus"), v.Scope.Path)
		}
	}
	assert.Equal(t, 1, backRefs)
	assert.Equal(t, 1, uniques)
}

func TestLoadShapes_MultipleTargets(t *testing.T) {
	schema, err := loadTestShapes(t, `
ex:StatusShape a sh:NodeShape ;
    sh:targetClass net:Router, net:Switch ;
    sh:property [ sh:path net:HWStatus ; sh:minCount 1 ] .
`)
	require.NoError(t, err)
	require.Len(t, schema.Shapes, 2)
	assert.Equal(t, onto("Router"), schema.Shapes[0].TargetClass)
	assert.Equal(t, onto("Switch"), schema.Shapes[1].TargetClass)
}

func TestLoadShapes_Deactivated(t *testing.T) {
	schema, err := loadTestShapes(t, `
ex:On a sh:NodeShape ; sh:targetClass net:Router ;
    sh:property [ sh:path net:HWStatus ; sh:minCount 1 ] .
ex:Off a sh:NodeShape ; sh:targetClass net:Switch ; sh:deactivated true ;
    sh:property [ sh:path net:HWStatus ; sh:minCount 1 ] .
`)
	require.NoError(t, err)
	require.Len(t, schema.Shapes, 1)
	assert.Equal(t, ex("On"), schema.Shapes[0].IRI)
}

func TestLoadShapes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		shape string
	}{
		{
			name:  "unsupported component",
			body:  `ex:S a sh:NodeShape ; sh:targetClass net:Subnet ; sh:property [ sh:path net:subnetCidr ; sh:pattern "^10\\." ] .`,
			shape: "S",
		},
		{
			name:  "no target",
			body:  `ex:S a sh:NodeShape ; sh:property [ sh:path net:subnetCidr ; sh:minCount 1 ] .`,
			shape: "S",
		},
		{
			name:  "path expression",
			body:  `ex:S a sh:NodeShape ; sh:targetClass net:Subnet ; sh:property [ sh:path ( net:a net:b ) ] .`,
			shape: "S",
		},
		{
			name:  "negative count",
			body:  `ex:S a sh:NodeShape ; sh:targetClass net:Subnet ; sh:property [ sh:path net:subnetCidr ; sh:minCount -1 ] .`,
			shape: "S",
		},
		{
			name:  "unknown severity",
			body:  `ex:S a sh:NodeShape ; sh:targetClass net:Subnet ; sh:property [ sh:path net:subnetCidr ; sh:severity ex:Fatal ] .`,
			shape: "S",
		},
		{
			name: "no shapes",
			body: `ex:a ex:b ex:c .`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadTestShapes(t, tt.body)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchemaLoad))

			var sle *SchemaLoadError
			require.True(t, errors.As(err, &sle))
			assert.Equal(t, tt.shape, sle.Shape)
			assert.Equal(t, "test-shapes.ttl", sle.Source)
		})
	}
}

func TestLoadShapes_MalformedTurtle(t *testing.T) {
	_, err := LoadShapes(strings.NewReader("ex:S a sh:NodeShape ;;; ."), "broken.ttl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaLoad))
	assert.True(t, errors.Is(err, rdf.ErrParse))
}

func TestLoadShapes_NumberAtLineEnd(t *testing.T) {
	schema, err := loadTestShapes(t, `
ex:VLANShape a sh:NodeShape ;
    sh:targetClass net:VLAN ;
    sh:property [
        sh:path net:vlanId ;
        sh:maxCount 1
    ] ;
    sh:property [
        sh:path net:vlanId ;
        sh:maxInclusive 4094
    ] .
`)
	require.NoError(t, err)

	var card *CardinalityConstraint
	var rng *RangeConstraint
	for _, c := range schema.Constraints() {
		switch c := c.(type) {
		case *CardinalityConstraint:
			card = c
		case *RangeConstraint:
			rng = c
		}
	}
	require.NotNil(t, card)
	require.NotNil(t, rng)
	assert.Equal(t, 1, card.Max)
	require.NotNil(t, rng.Max)
	assert.Equal(t, int64(4094), *rng.Max)

	data := parseGraph(t, `
ex:VLAN10 a net:VLAN ;
    net:vlanId 5000
    .
`)
	result, err := Validate(data, schema, nil)
	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, OutOfRange, result.Violations[0].Type)
}
