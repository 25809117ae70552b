// Package resolver maps logical entity keys to graph identifiers.
//
// A logical key such as "Sw1_Fa0/1" becomes a reference token by
// replacing every rune that cannot appear in an IRI local part with "-".
// The token is appended to a fixed instance namespace. Resolution is a
// pure function of the key, so the order in which entities are built or
// emitted never changes the result.
package resolver

import (
	"strings"
	"unicode"

	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// Separator replaces every unsafe rune
const Separator = "-"

// unsafe runes besides whitespace and control characters
const unsafeRunes = "/\\<>\"{}|^`#%"

// Normalize turns a logical key into a reference token
func Normalize(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(unsafeRunes, r) {
			b.WriteString(Separator)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolver mints instance IRIs under a base namespace
type Resolver struct {
	Base string
}

// New returns a resolver for the given base namespace
func New(base string) Resolver {
	return Resolver{Base: base}
}

// Default resolves into the network instance namespace
func Default() Resolver {
	return New(ontology.InstanceNamespace)
}

// Token returns the normalized key
func (r Resolver) Token(key string) string {
	return Normalize(key)
}

// IRI returns the graph identifier for a logical key
func (r Resolver) IRI(key string) rdf.Term {
	return rdf.IRI(r.Base + Normalize(key))
}

// Local strips the base namespace from an identifier. It reports false for
// identifiers minted elsewhere.
func (r Resolver) Local(t rdf.Term) (string, bool) {
	if !t.IsIRI() {
		return "", false
	}
	return strings.CutPrefix(t.Value, r.Base)
}
