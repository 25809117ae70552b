// Package topology reads network descriptions from YAML into model
// entities. Every entity is validated as it is loaded, and identifiers
// must be unique across the whole document.
package topology

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-netontology/pkg/model"
)

//go:embed example.yaml
var exampleData []byte

// ExampleName labels the packaged example in errors and logs
const ExampleName = "example.yaml"

// Sentinel errors for topology documents
var (
	// ErrDuplicateID is returned when two entities share an identifier
	ErrDuplicateID = errors.New("duplicate entity id")
	// ErrMultipleDocuments is returned when a stream holds more than one YAML document
	ErrMultipleDocuments = errors.New("topology must be a single YAML document")
)

// Document is the YAML layout of a topology file. Unknown keys are
// rejected.
type Document struct {
	Subnets    []*model.Subnet            `yaml:"subnets"`
	VLANs      []*model.VLAN              `yaml:"vlans"`
	Addresses  []*model.AddressAssignment `yaml:"addresses"`
	Routers    []*model.Router            `yaml:"routers"`
	Switches   []*model.Switch            `yaml:"switches"`
	Hosts      []*model.Host              `yaml:"hosts"`
	Interfaces []*model.Interface         `yaml:"interfaces"`
	Links      []*model.Link              `yaml:"links"`
}

// Entities flattens the document: nodes, interfaces, links, then the
// logical entities, each section in file order. Empty list items become
// nil entries.
func (d *Document) Entities() []model.Entity {
	var out []model.Entity
	out = appendEntities(out, d.Routers)
	out = appendEntities(out, d.Switches)
	out = appendEntities(out, d.Hosts)
	out = appendEntities(out, d.Interfaces)
	out = appendEntities(out, d.Links)
	out = appendEntities(out, d.VLANs)
	out = appendEntities(out, d.Subnets)
	out = appendEntities(out, d.Addresses)
	return out
}

func appendEntities[E any, P interface {
	*E
	model.Entity
}](out []model.Entity, items []P) []model.Entity {
	for _, it := range items {
		if it == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, it)
	}
	return out
}

// LoadError reports a topology that could not be read or failed checks
type LoadError struct {
	Source string
	Cause  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load topology %s: %v", e.Source, e.Cause)
}

// Unwrap returns the cause
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Decode parses a topology document without validating entities
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return nil, err
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, ErrMultipleDocuments
	case !errors.Is(err, io.EOF):
		return nil, err
	}
	return doc, nil
}

// Load parses and validates a topology. source labels errors.
func Load(r io.Reader, source string) ([]model.Entity, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, &LoadError{Source: source, Cause: err}
	}

	entities := doc.Entities()
	seen := make(map[string]model.Kind, len(entities))
	for _, e := range entities {
		if e == nil {
			return nil, &LoadError{Source: source, Cause: fmt.Errorf("%w: empty list item", model.ErrInvalidEntity)}
		}
		if err := e.Validate(); err != nil {
			return nil, &LoadError{Source: source, Cause: err}
		}
		if prev, dup := seen[e.EntityID()]; dup {
			return nil, &LoadError{Source: source, Cause: fmt.Errorf("%w: %q is both a %s and a %s", ErrDuplicateID, e.EntityID(), prev, e.Kind())}
		}
		seen[e.EntityID()] = e.Kind()
	}
	return entities, nil
}

// LoadFile reads a topology file
func LoadFile(path string) ([]model.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Cause: err}
	}
	defer f.Close()
	return Load(f, path)
}

// Example returns the packaged example network. Each call returns fresh
// entities that the caller may modify.
func Example() []model.Entity {
	entities, err := Load(bytes.NewReader(exampleData), ExampleName)
	if err != nil {
		panic(fmt.Sprintf("packaged topology is invalid: %v", err))
	}
	return entities
}
