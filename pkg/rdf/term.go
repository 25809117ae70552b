// Package rdf provides the minimal RDF data model used across the toolkit:
// terms, triples, an in-memory triple set, and Turtle/N-Triples codecs.
//
// Terms are plain comparable values so they can be used as map keys and
// compared with ==. A Graph is a set: adding the same triple twice is a no-op.
package rdf

import (
	"strconv"
	"strings"
)

// TermKind distinguishes IRIs, blank nodes and literals
type TermKind int

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "IRI"
	case KindBlank:
		return "Blank"
	case KindLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

// Well-known vocabularies
const (
	RDFNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNS  = "http://www.w3.org/2001/XMLSchema#"
	SHNS   = "http://www.w3.org/ns/shacl#"
)

var (
	RDFType  = IRI(RDFNS + "type")
	RDFFirst = IRI(RDFNS + "first")
	RDFRest  = IRI(RDFNS + "rest")
	RDFNil   = IRI(RDFNS + "nil")
	RDFProp  = IRI(RDFNS + "Property")

	RDFSClass      = IRI(RDFSNS + "Class")
	RDFSSubClassOf = IRI(RDFSNS + "subClassOf")
	RDFSLabel      = IRI(RDFSNS + "label")
	RDFSComment    = IRI(RDFSNS + "comment")
	RDFSDomain     = IRI(RDFSNS + "domain")
	RDFSRange      = IRI(RDFSNS + "range")

	XSDString  = IRI(XSDNS + "string")
	XSDInteger = IRI(XSDNS + "integer")
	XSDBoolean = IRI(XSDNS + "boolean")

	rdfLangString = RDFNS + "langString"
)

// Term is an RDF node. Datatype and Lang only apply to literals; a literal
// with an empty Datatype is a plain (simple) literal.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// IRI returns an IRI term
func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

// Blank returns a blank node term with the given label
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Literal returns a plain literal
func Literal(lexical string) Term {
	return Term{Kind: KindLiteral, Value: lexical}
}

// TypedLiteral returns a literal with an explicit datatype
func TypedLiteral(lexical string, datatype Term) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: datatype.Value}
}

// IntegerLiteral returns an xsd:integer literal
func IntegerLiteral(v int64) Term {
	return TypedLiteral(strconv.FormatInt(v, 10), XSDInteger)
}

// LangLiteral returns a language-tagged string
func LangLiteral(lexical, lang string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: rdfLangString, Lang: lang}
}

func (t Term) IsIRI() bool     { return t.Kind == KindIRI }
func (t Term) IsBlank() bool   { return t.Kind == KindBlank }
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsZero reports whether t is the zero Term
func (t Term) IsZero() bool {
	return t == Term{}
}

// HasDatatype reports whether a literal carries the given datatype.
// Plain literals count as xsd:string.
func (t Term) HasDatatype(datatype Term) bool {
	if t.Kind != KindLiteral {
		return false
	}
	if t.Datatype == "" {
		return datatype.Value == XSDString.Value
	}
	return t.Datatype == datatype.Value
}

// Int parses an integer literal
func (t Term) Int() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
}

// SameValue compares two terms, treating plain and xsd:string literals
// with the same lexical form as equal.
func (t Term) SameValue(other Term) bool {
	if t == other {
		return true
	}
	if t.Kind != KindLiteral || other.Kind != KindLiteral || t.Value != other.Value || t.Lang != other.Lang {
		return false
	}
	return t.HasDatatype(XSDString) && other.HasDatatype(XSDString)
}

// Canonical folds xsd:string literals to plain ones so that values read back
// from a parser compare equal to the ones that were written.
func (t Term) Canonical() Term {
	if t.Kind == KindLiteral && t.Datatype == XSDString.Value {
		t.Datatype = ""
	}
	return t
}

// String renders the term in N-Triples syntax
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + escapeIRI(t.Value) + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		s := `"` + escapeLiteral(t.Value) + `"`
		switch {
		case t.Lang != "":
			return s + "@" + t.Lang
		case t.Datatype != "":
			return s + "^^<" + escapeIRI(t.Datatype) + ">"
		}
		return s
	}
}

// sortKey orders terms: IRIs, then blanks, then literals
func (t Term) sortKey() string {
	return strconv.Itoa(int(t.Kind)) + t.Value + "\x00" + t.Datatype + "\x00" + t.Lang
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeIRI(s string) string {
	return strings.NewReplacer(">", "%3E", "<", "%3C", " ", "%20").Replace(s)
}

// Triple is a single subject-predicate-object statement
type Triple struct {
	S Term
	P Term
	O Term
}

// T is shorthand for building a Triple
func T(s, p, o Term) Triple {
	return Triple{S: s, P: p, O: o}
}

// String renders the triple as one N-Triples statement
func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String() + " ."
}
