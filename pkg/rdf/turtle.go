package rdf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// localNamePattern is the conservative subset of Turtle PN_LOCAL we emit
// as prefixed names; anything else is written as a full <IRI>.
var localNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// WriteTurtle serializes g as Turtle. Output is deterministic: prefixes,
// subjects, predicates and objects are all sorted, with rdf:type first.
func WriteTurtle(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	pw := newPrefixWriter(g.Namespaces())

	for _, p := range pw.order {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p, pw.prefixes[p])
	}

	for _, s := range g.SubjectTerms() {
		bw.WriteString("\n")
		bw.WriteString(pw.term(s))

		groups := groupByPredicate(g.About(s))
		for i, grp := range groups {
			if i == 0 {
				bw.WriteString(" ")
			} else {
				bw.WriteString(" ;\n    ")
			}
			if grp.pred == RDFType {
				bw.WriteString("a")
			} else {
				bw.WriteString(pw.term(grp.pred))
			}
			for j, o := range grp.objects {
				if j == 0 {
					bw.WriteString(" ")
				} else {
					bw.WriteString(", ")
				}
				bw.WriteString(pw.term(o))
			}
		}
		bw.WriteString(" .\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write turtle: %w", err)
	}
	return nil
}

// WriteNTriples serializes g one statement per line, sorted
func WriteNTriples(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		bw.WriteString(t.String())
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write n-triples: %w", err)
	}
	return nil
}

type predicateGroup struct {
	pred    Term
	objects []Term
}

// groupByPredicate expects triples sorted by predicate and moves rdf:type first
func groupByPredicate(ts []Triple) []predicateGroup {
	var groups []predicateGroup
	for _, t := range ts {
		n := len(groups)
		if n > 0 && groups[n-1].pred == t.P {
			groups[n-1].objects = append(groups[n-1].objects, t.O)
			continue
		}
		groups = append(groups, predicateGroup{pred: t.P, objects: []Term{t.O}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].pred == RDFType && groups[j].pred != RDFType
	})
	return groups
}

type prefixWriter struct {
	prefixes map[string]string
	order    []string
	// namespaces sorted longest first so the most specific prefix wins
	byLength []string
	reverse  map[string]string
}

func newPrefixWriter(prefixes map[string]string) *prefixWriter {
	pw := &prefixWriter{prefixes: prefixes, reverse: make(map[string]string)}
	for p, ns := range prefixes {
		pw.order = append(pw.order, p)
		pw.byLength = append(pw.byLength, ns)
		pw.reverse[ns] = p
	}
	sort.Strings(pw.order)
	sort.Slice(pw.byLength, func(i, j int) bool {
		if len(pw.byLength[i]) != len(pw.byLength[j]) {
			return len(pw.byLength[i]) > len(pw.byLength[j])
		}
		return pw.byLength[i] < pw.byLength[j]
	})
	return pw
}

func (pw *prefixWriter) iri(value string) string {
	for _, ns := range pw.byLength {
		if local, ok := strings.CutPrefix(value, ns); ok && localNamePattern.MatchString(local) {
			return pw.reverse[ns] + ":" + local
		}
	}
	return "<" + escapeIRI(value) + ">"
}

func (pw *prefixWriter) term(t Term) string {
	switch t.Kind {
	case KindIRI:
		return pw.iri(t.Value)
	case KindBlank:
		return "_:" + t.Value
	default:
		s := `"` + escapeLiteral(t.Value) + `"`
		switch {
		case t.Lang != "":
			return s + "@" + t.Lang
		case t.Datatype != "":
			return s + "^^" + pw.iri(t.Datatype)
		}
		return s
	}
}
