package rdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	knakk "github.com/knakk/rdf"
)

// Format names an RDF text notation
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
)

// ParseFormat maps a user-supplied name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "n-triples", "nt":
		return FormatNTriples, nil
	default:
		return "", fmt.Errorf("unknown RDF format %q", s)
	}
}

// ErrParse is the sentinel wrapped by every ParseError
var ErrParse = errors.New("graph parse failed")

// ParseError reports input that could not be read as a graph at all.
// It is distinct from a graph that parses but fails validation.
type ParseError struct {
	Source string // file name or other label for the input
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse %s (%s): %v", e.Source, e.Format, e.Cause)
	}
	return fmt.Sprintf("parse %s: %v", e.Format, e.Cause)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Parse reads a whole graph in the given format
func Parse(r io.Reader, format Format, source string) (*Graph, error) {
	var kf knakk.Format
	switch format {
	case FormatTurtle:
		kf = knakk.Turtle
	case FormatNTriples:
		kf = knakk.NTriples
	default:
		return nil, &ParseError{Source: source, Format: format, Cause: fmt.Errorf("unsupported format")}
	}

	if format == FormatTurtle {
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, &ParseError{Source: source, Format: format, Cause: err}
		}
		r = bytes.NewReader(padNumbers(src))
	}

	dec := knakk.NewTripleDecoder(r, kf)
	g := NewGraph()
	for {
		tr, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Source: source, Format: format, Cause: err}
		}
		g.Add(Triple{
			S: fromKnakk(tr.Subj),
			P: fromKnakk(tr.Pred),
			O: fromKnakk(tr.Obj),
		})
	}
	return g, nil
}

// ParseTurtle reads a Turtle document
func ParseTurtle(r io.Reader, source string) (*Graph, error) {
	return Parse(r, FormatTurtle, source)
}

// ParseNTriples reads an N-Triples document
func ParseNTriples(r io.Reader, source string) (*Graph, error) {
	return Parse(r, FormatNTriples, source)
}

// Write serializes g in the given format
func Write(w io.Writer, g *Graph, format Format) error {
	switch format {
	case FormatNTriples:
		return WriteNTriples(w, g)
	case FormatTurtle, "":
		return WriteTurtle(w, g)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// padNumbers inserts a space between a bare numeric literal and a
// following line break, tab or comment. The decoder only ends a number at
// a space or punctuation. Strings, IRIs and comments are copied as is and
// no line breaks are added, so decoder positions keep their line numbers.
func padNumbers(src []byte) []byte {
	out := make([]byte, 0, len(src)+16)
	token := 0 // start of the current bare token in out
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\n', '\r', '\t':
			if isNumber(out[token:]) {
				out = append(out, ' ')
			}
			out = append(out, c)
			token = len(out)
		case ' ', ',', ';', '(', ')', '[', ']':
			out = append(out, c)
			token = len(out)
		case '#':
			if isNumber(out[token:]) {
				out = append(out, ' ')
			}
			end := len(src)
			if j := bytes.IndexByte(src[i:], '\n'); j >= 0 {
				end = i + j
			}
			out = append(out, src[i:end]...)
			i = end - 1
			token = len(out)
		case '<':
			end := len(src)
			if j := bytes.IndexByte(src[i:], '>'); j >= 0 {
				end = i + j + 1
			}
			out = append(out, src[i:end]...)
			i = end - 1
			token = len(out)
		case '"', '\'':
			end := stringEnd(src, i)
			out = append(out, src[i:end]...)
			i = end - 1
			token = len(out)
		default:
			out = append(out, c)
		}
	}
	return out
}

// stringEnd returns the index just past the string literal opening at i.
// An unterminated literal runs to the end of its line, or of the input for
// a long literal, and is left for the decoder to reject.
func stringEnd(src []byte, i int) int {
	q := src[i]
	if i+2 < len(src) && src[i+1] == q && src[i+2] == q {
		for k := i + 3; k < len(src); k++ {
			switch {
			case src[k] == '\\':
				k++
			case src[k] == q && k+2 < len(src) && src[k+1] == q && src[k+2] == q:
				return k + 3
			}
		}
		return len(src)
	}
	for k := i + 1; k < len(src); k++ {
		switch src[k] {
		case '\\':
			k++
		case q:
			return k + 1
		case '\n':
			return k
		}
	}
	return len(src)
}

// isNumber reports whether tok looks like a Turtle integer, decimal or double
func isNumber(tok []byte) bool {
	if len(tok) == 0 || !strings.ContainsRune("0123456789+-.", rune(tok[0])) {
		return false
	}
	digit := false
	for _, c := range tok {
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune("+-.eE", rune(c)):
		default:
			return false
		}
	}
	return digit
}

func fromKnakk(t knakk.Term) Term {
	switch t.Type() {
	case knakk.TermIRI:
		return IRI(t.String())
	case knakk.TermBlank:
		return Blank(strings.TrimPrefix(t.String(), "_:"))
	default:
		lit, ok := t.(knakk.Literal)
		if !ok {
			return Literal(t.String())
		}
		out := Term{Kind: KindLiteral, Value: lit.String(), Lang: lit.Lang()}
		if out.Lang != "" {
			out.Datatype = rdfLangString
		} else {
			out.Datatype = lit.DataType.String()
		}
		return out
	}
}
