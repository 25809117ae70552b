package rdf

import (
	"testing"
)

func TestGraph_AddIsSetSemantics(t *testing.T) {
	g := NewGraph()
	tr := T(IRI("urn:a"), RDFType, IRI("urn:C"))

	if !g.Add(tr) {
		t.Fatal("first Add should report insertion")
	}
	if g.Add(tr) {
		t.Error("second Add of same triple should be a no-op")
	}
	if g.Len() != 1 {
		t.Errorf("Expected 1 triple, got %d", g.Len())
	}
}

func TestGraph_Remove(t *testing.T) {
	g := NewGraph()
	a := T(IRI("urn:a"), RDFSLabel, Literal("A"))
	b := T(IRI("urn:a"), RDFSComment, Literal("about A"))
	g.AddAll([]Triple{a, b})

	if !g.Remove(a) {
		t.Fatal("Remove should report deletion")
	}
	if g.Remove(a) {
		t.Error("Remove of absent triple should return false")
	}
	if g.Has(a) || !g.Has(b) {
		t.Error("Remove touched the wrong triple")
	}
	if got := len(g.About(IRI("urn:a"))); got != 1 {
		t.Errorf("subject index out of sync: %d triples", got)
	}

	g.Remove(b)
	if len(g.SubjectTerms()) != 0 {
		t.Error("subject should disappear once its last triple is removed")
	}
}

func TestGraph_ObjectsAndSubjects(t *testing.T) {
	g := NewGraph()
	p := IRI("urn:p")
	g.Add(T(IRI("urn:s"), p, IRI("urn:o2")))
	g.Add(T(IRI("urn:s"), p, IRI("urn:o1")))
	g.Add(T(IRI("urn:t"), p, IRI("urn:o1")))

	objs := g.Objects(IRI("urn:s"), p)
	if len(objs) != 2 || objs[0] != IRI("urn:o1") {
		t.Errorf("Objects not sorted or incomplete: %v", objs)
	}

	subs := g.Subjects(p, IRI("urn:o1"))
	if len(subs) != 2 || subs[0] != IRI("urn:s") || subs[1] != IRI("urn:t") {
		t.Errorf("unexpected subjects: %v", subs)
	}

	if _, ok := g.Object(IRI("urn:missing"), p); ok {
		t.Error("Object should miss for unknown subject")
	}
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := NewGraph()
	g.Bind("ex", "urn:ex#")
	g.Add(T(IRI("urn:a"), RDFType, IRI("urn:C")))

	c := g.Clone()
	c.Add(T(IRI("urn:b"), RDFType, IRI("urn:C")))
	c.Bind("other", "urn:other#")

	if g.Len() != 1 {
		t.Errorf("clone mutation leaked into original: %d triples", g.Len())
	}
	if _, ok := g.Namespaces()["other"]; ok {
		t.Error("clone binding leaked into original")
	}
	if c.Namespaces()["ex"] != "urn:ex#" {
		t.Error("clone lost prefix binding")
	}
}

func TestGraph_List(t *testing.T) {
	g := NewGraph()
	n1, n2 := Blank("l1"), Blank("l2")
	g.Add(T(n1, RDFFirst, Literal("ON")))
	g.Add(T(n1, RDFRest, n2))
	g.Add(T(n2, RDFFirst, Literal("OFF")))
	g.Add(T(n2, RDFRest, RDFNil))

	items, ok := g.List(n1)
	if !ok {
		t.Fatal("well-formed list reported malformed")
	}
	if len(items) != 2 || items[0].Value != "ON" || items[1].Value != "OFF" {
		t.Errorf("unexpected list members: %v", items)
	}

	// cycle
	g.Remove(T(n2, RDFRest, RDFNil))
	g.Add(T(n2, RDFRest, n1))
	if _, ok := g.List(n1); ok {
		t.Error("cyclic list should be reported malformed")
	}
}

func TestTerm_ValueComparison(t *testing.T) {
	plain := Literal("10.0.10.0/24")
	typed := TypedLiteral("10.0.10.0/24", XSDString)

	if plain == typed {
		t.Fatal("plain and typed literal should be distinct terms")
	}
	if !plain.SameValue(typed) {
		t.Error("plain and xsd:string literal should have the same value")
	}
	if typed.Canonical() != plain {
		t.Error("Canonical should fold xsd:string")
	}
	if IntegerLiteral(10).SameValue(Literal("10")) {
		t.Error("integer and string literals must differ in value")
	}
	if !plain.HasDatatype(XSDString) || plain.HasDatatype(XSDInteger) {
		t.Error("plain literal datatype checks wrong")
	}
	if IRI("urn:x").HasDatatype(XSDString) {
		t.Error("IRIs carry no datatype")
	}
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{IRI("urn:a"), "<urn:a>"},
		{Blank("b0"), "_:b0"},
		{Literal(`say "hi"`), `"say \"hi\""`},
		{IntegerLiteral(42), `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{LangLiteral("switch", "en"), `"switch"@en`},
	}

	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
