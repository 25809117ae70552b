// Package serializer turns a collection of topology entities into RDF
// triples under the network ontology.
//
// Each call is all-or-nothing: triples are collected in a scratch graph
// that is only returned when every entity was emitted. Relations are
// written as references to other entities' identifiers, in the direction
// they were declared; inverse relations are never filled in.
package serializer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/metrics"
	"github.com/dd0wney/cluso-netontology/pkg/model"
	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
	"github.com/dd0wney/cluso-netontology/pkg/resolver"
)

// Serializer emits entity graphs. The zero value is not usable; call New.
type Serializer struct {
	resolver      resolver.Resolver
	logger        logging.Logger
	metrics       *metrics.Registry
	includeSchema bool
}

// Option configures a Serializer
type Option func(*Serializer)

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(s *Serializer) { s.logger = l }
}

// WithMetrics records every call in the given registry
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Serializer) { s.metrics = r }
}

// WithSchema controls whether ontology triples are merged into the output
func WithSchema(include bool) Option {
	return func(s *Serializer) { s.includeSchema = include }
}

// WithResolver overrides the identifier resolver
func WithResolver(r resolver.Resolver) Option {
	return func(s *Serializer) { s.resolver = r }
}

// New creates a Serializer. By default it resolves into the network
// instance namespace, includes the ontology, and does not log.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		resolver:      resolver.Default(),
		logger:        logging.NewNopLogger(),
		includeSchema: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize emits entities with default options
func Serialize(entities []model.Entity) (*rdf.Graph, error) {
	return New().Serialize(entities)
}

// Serialize emits every entity and returns the complete graph, or an error
// and no graph.
func (s *Serializer) Serialize(entities []model.Entity) (*rdf.Graph, error) {
	start := time.Now()
	em := &emitter{
		graph:    rdf.NewGraph(),
		resolver: s.resolver,
		claimed:  make(map[string]string, len(entities)),
		kinds:    make(map[string]int),
	}

	for _, e := range entities {
		if err := em.entity(e); err != nil {
			s.record(metrics.StatusError, start, 0, nil)
			fields := []logging.Field{logging.Error(err), logging.Count(len(entities))}
			var se *SerializationError
			if errors.As(err, &se) {
				fields = append(fields, logging.Entity(se.EntityID), logging.Kind(string(se.Kind)))
			}
			s.logger.Debug("serialization failed", fields...)
			return nil, err
		}
	}

	out := em.graph
	if s.includeSchema {
		out.Merge(ontology.Graph())
	}
	ontology.Bind(out)
	if s.resolver.Base != ontology.InstanceNamespace {
		out.Bind(ontology.InstancePrefix, s.resolver.Base)
	}

	s.record(metrics.StatusSuccess, start, out.Len(), em.kinds)
	s.logger.Debug("serialized entities",
		logging.Count(len(entities)),
		logging.Triples(out.Len()),
		logging.Latency(time.Since(start)))
	return out, nil
}

func (s *Serializer) record(status string, start time.Time, triples int, kinds map[string]int) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordSerialization(status, time.Since(start), triples, kinds)
}

// emitter holds the state of one Serialize call
type emitter struct {
	graph    *rdf.Graph
	resolver resolver.Resolver
	claimed  map[string]string // token -> entity id that minted it
	kinds    map[string]int
}

func isNil(e model.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (em *emitter) entity(e model.Entity) error {
	if isNil(e) {
		return &SerializationError{Cause: fmt.Errorf("%w: nil entity", ErrUnsupportedEntity)}
	}

	class, ok := ontology.Class(string(e.Kind()))
	if !ok {
		return wrapEntity(e, "", ErrUnsupportedEntity)
	}

	if err := e.Validate(); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return wrapEntity(e, ve.Field, err)
		}
		return wrapEntity(e, "", err)
	}

	token := em.resolver.Token(e.EntityID())
	if prev, dup := em.claimed[token]; dup {
		return wrapEntity(e, "ID", fmt.Errorf("%w: %q already minted by %q", ErrDuplicateIdentifier, token, prev))
	}
	em.claimed[token] = e.EntityID()

	subject := em.resolver.IRI(e.EntityID())
	em.base(subject, class, e.Describe())

	switch v := e.(type) {
	case model.NodeEntity:
		em.node(subject, v.NodeData())
		if r, ok := v.(*model.Router); ok {
			em.refs(subject, ontology.PropRoutesSubnet, r.RoutedSubnets...)
		}
	case *model.Interface:
		em.iface(subject, v)
	case *model.Link:
		em.link(subject, v)
	case *model.VLAN:
		em.literal(subject, ontology.PropVlanID, strconv.Itoa(v.VLANID))
		if v.Name != "" {
			em.literal(subject, ontology.PropVlanName, v.Name)
		}
		em.refs(subject, ontology.PropHasSubnet, v.Subnets...)
	case *model.Subnet:
		em.literal(subject, ontology.PropSubnetCidr, v.CIDR)
	case *model.AddressAssignment:
		em.literal(subject, ontology.PropIPValue, v.IP)
		em.refs(subject, ontology.PropOnSubnet, v.Subnet)
	default:
		return wrapEntity(e, "", ErrUnsupportedEntity)
	}

	em.kinds[string(e.Kind())]++
	return nil
}

// base emits the type, label and comment every entity carries
func (em *emitter) base(subject rdf.Term, class ontology.ClassDef, b *model.Base) {
	em.graph.Add(rdf.T(subject, rdf.RDFType, rdf.IRI(class.IRI)))
	if b.Label != "" {
		em.graph.Add(rdf.T(subject, rdf.RDFSLabel, rdf.Literal(b.Label)))
	}
	if b.Description != "" {
		em.graph.Add(rdf.T(subject, rdf.RDFSComment, rdf.Literal(b.Description)))
	}
}

// node emits the fields shared by Router, Switch and Host
func (em *emitter) node(subject rdf.Term, n *model.Node) {
	em.literal(subject, ontology.PropHWStatus, string(n.Status()))
	em.refs(subject, ontology.PropHasIFace, n.Interfaces...)
	em.refs(subject, ontology.PropHasNeighbor, n.Neighbors...)
}

func (em *emitter) iface(subject rdf.Term, i *model.Interface) {
	em.literal(subject, ontology.PropHWStatus, string(i.Status()))
	em.literal(subject, ontology.PropPortMode, string(i.Mode()))
	em.refs(subject, ontology.PropBelongsToNode, i.Node)
	if i.Link != "" {
		em.refs(subject, ontology.PropConnectedToLink, i.Link)
	}
	if i.AccessVLAN != "" {
		em.refs(subject, ontology.PropAccessVlan, i.AccessVLAN)
	}
	em.refs(subject, ontology.PropAllowedVlan, i.AllowedVLANs...)
	em.refs(subject, ontology.PropHasAddressAssignment, i.Addresses...)
}

func (em *emitter) link(subject rdf.Term, l *model.Link) {
	em.literal(subject, ontology.PropHWStatus, string(l.Status()))
	if l.Technology != "" {
		em.literal(subject, ontology.PropTechnology, l.Technology)
	}
	if l.Bandwidth != nil {
		em.literal(subject, ontology.PropBandwidth, strconv.Itoa(*l.Bandwidth))
	}
	if l.Cost != nil {
		em.literal(subject, ontology.PropCost, strconv.Itoa(*l.Cost))
	}
	em.refs(subject, ontology.PropHasInterface, l.Interfaces...)
}

// literal emits a datatype property, typed per the ontology
func (em *emitter) literal(subject rdf.Term, property, lexical string) {
	p := ontology.MustProperty(property)
	em.graph.Add(rdf.T(subject, p.Term(), p.Value(lexical)))
}

// refs emits one reference per key
func (em *emitter) refs(subject rdf.Term, property string, keys ...string) {
	p := rdf.IRI(property)
	for _, k := range keys {
		em.graph.Add(rdf.T(subject, p, em.resolver.IRI(k)))
	}
}
