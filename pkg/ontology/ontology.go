// Package ontology defines the network ontology: the class taxonomy, the
// property table with domains, ranges and literal datatypes, and the
// packaged validation shapes.
//
// Everything here is static data. The RDF form of the ontology is built
// once on first use and handed out as clones, so callers may modify what
// they receive without affecting other callers.
package ontology

import (
	"strings"
	"sync"

	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// ClassDef describes one ontology class
type ClassDef struct {
	IRI     string
	Parent  string // empty for the root
	Label   string
	Comment string
}

// Name returns the local part of the class IRI
func (c ClassDef) Name() string {
	return strings.TrimPrefix(c.IRI, Namespace)
}

// PropertyDef describes one ontology property. For datatype properties
// Range is an XSD datatype IRI; for object properties it is a class IRI.
type PropertyDef struct {
	IRI     string
	Domain  string
	Range   string
	Label   string
	Comment string

	// Literal is set for datatype properties.
	Literal bool

	// Tagged datatype properties are written with an explicit datatype.
	// Untagged ones are written as plain literals.
	Tagged bool
}

// Name returns the local part of the property IRI
func (p PropertyDef) Name() string {
	return strings.TrimPrefix(p.IRI, Namespace)
}

// Term returns the property IRI as a graph term
func (p PropertyDef) Term() rdf.Term {
	return rdf.IRI(p.IRI)
}

// Value builds the literal for a lexical form following the property's
// datatyping rule.
func (p PropertyDef) Value(lexical string) rdf.Term {
	if p.Tagged {
		return rdf.TypedLiteral(lexical, rdf.IRI(p.Range))
	}
	return rdf.Literal(lexical)
}

var classes = []ClassDef{
	{ClassNetEntity, "", "Network Entity", "Any concept that appears in a network topology."},
	{ClassHWNetEntity, ClassNetEntity, "Hardware Network Entity", "A physical element with an operational hardware status."},
	{ClassLogicalEntity, ClassNetEntity, "Logical Entity", "A configuration construct without hardware of its own."},
	{ClassNode, ClassHWNetEntity, "Node", "A network device that owns interfaces."},
	{ClassRouter, ClassNode, "Router", "A node that routes between subnets."},
	{ClassSwitch, ClassNode, "Switch", "A node that forwards frames within VLANs."},
	{ClassHost, ClassNode, "Host", "An end system."},
	{ClassIface, ClassHWNetEntity, "Interface", "A network interface belonging to exactly one node."},
	{ClassLink, ClassHWNetEntity, "Link", "A physical or logical connection between interfaces."},
	{ClassVLAN, ClassLogicalEntity, "VLAN", "A virtual LAN identified by a numeric id."},
	{ClassSubnet, ClassLogicalEntity, "Subnet", "An IP network in CIDR notation."},
	{ClassAddressAssignment, ClassLogicalEntity, "Address Assignment", "The binding of one IP address to one subnet."},
}

var properties = []PropertyDef{
	{IRI: PropHWStatus, Domain: ClassHWNetEntity, Range: rdf.XSDString.Value, Literal: true,
		Label: "hardware status", Comment: "Operational status: ON, OFF or ABN."},
	{IRI: PropHasIFace, Domain: ClassNode, Range: ClassIface,
		Label: "has interface", Comment: "Links a node to an interface it owns."},
	{IRI: PropBelongsToNode, Domain: ClassIface, Range: ClassNode,
		Label: "belongs to node", Comment: "Links an interface to its owning node."},
	{IRI: PropHasNeighbor, Domain: ClassNode, Range: ClassNode,
		Label: "has neighbor", Comment: "Links a node to an adjacent node."},
	{IRI: PropRoutesSubnet, Domain: ClassRouter, Range: ClassSubnet,
		Label: "routes subnet", Comment: "A subnet the router forwards traffic for."},
	{IRI: PropConnectedToLink, Domain: ClassIface, Range: ClassLink,
		Label: "connected to link", Comment: "Links an interface to the link it attaches to."},
	{IRI: PropHasInterface, Domain: ClassLink, Range: ClassIface,
		Label: "link interface", Comment: "An interface attached to the link."},
	{IRI: PropPortMode, Domain: ClassIface, Range: rdf.XSDString.Value, Literal: true,
		Label: "port mode", Comment: "Switchport mode: ACCESS, TRUNK or UNCONFIGURED."},
	{IRI: PropAccessVlan, Domain: ClassIface, Range: ClassVLAN,
		Label: "access VLAN", Comment: "The untagged VLAN of an access port."},
	{IRI: PropAllowedVlan, Domain: ClassIface, Range: ClassVLAN,
		Label: "allowed VLAN", Comment: "A VLAN carried by a trunk port."},
	{IRI: PropHasAddressAssignment, Domain: ClassIface, Range: ClassAddressAssignment,
		Label: "has address assignment", Comment: "An address configured on the interface."},
	{IRI: PropTechnology, Domain: ClassLink, Range: rdf.XSDString.Value, Literal: true,
		Label: "technology", Comment: "Link technology, e.g. Ethernet."},
	{IRI: PropBandwidth, Domain: ClassLink, Range: rdf.XSDInteger.Value, Literal: true, Tagged: true,
		Label: "bandwidth", Comment: "Link bandwidth in Mbit/s."},
	{IRI: PropCost, Domain: ClassLink, Range: rdf.XSDInteger.Value, Literal: true, Tagged: true,
		Label: "cost", Comment: "Routing cost of the link."},
	{IRI: PropVlanID, Domain: ClassVLAN, Range: rdf.XSDInteger.Value, Literal: true, Tagged: true,
		Label: "VLAN id", Comment: "Numeric 802.1Q VLAN identifier."},
	{IRI: PropVlanName, Domain: ClassVLAN, Range: rdf.XSDString.Value, Literal: true,
		Label: "VLAN name", Comment: "Human readable VLAN name."},
	{IRI: PropHasSubnet, Domain: ClassVLAN, Range: ClassSubnet,
		Label: "has subnet", Comment: "A subnet carried on the VLAN."},
	{IRI: PropSubnetCidr, Domain: ClassSubnet, Range: rdf.XSDString.Value, Literal: true, Tagged: true,
		Label: "subnet CIDR", Comment: "Network address and prefix length, e.g. 10.0.10.0/24."},
	{IRI: PropIPValue, Domain: ClassAddressAssignment, Range: rdf.XSDString.Value, Literal: true, Tagged: true,
		Label: "IP value", Comment: "The assigned IP address."},
	{IRI: PropOnSubnet, Domain: ClassAddressAssignment, Range: ClassSubnet,
		Label: "on subnet", Comment: "The subnet the address belongs to."},
}

var (
	classByIRI = make(map[string]ClassDef, len(classes))
	propByIRI  = make(map[string]PropertyDef, len(properties))
)

func init() {
	for _, c := range classes {
		classByIRI[c.IRI] = c
	}
	for _, p := range properties {
		propByIRI[p.IRI] = p
	}
}

// Classes returns every class definition, root first
func Classes() []ClassDef {
	return append([]ClassDef(nil), classes...)
}

// Properties returns every property definition
func Properties() []PropertyDef {
	return append([]PropertyDef(nil), properties...)
}

// Class looks a class up by local name ("Router") or full IRI
func Class(name string) (ClassDef, bool) {
	if !strings.HasPrefix(name, Namespace) {
		name = Namespace + name
	}
	c, ok := classByIRI[name]
	return c, ok
}

// Property looks a property up by local name or full IRI
func Property(name string) (PropertyDef, bool) {
	if !strings.HasPrefix(name, Namespace) {
		name = Namespace + name
	}
	p, ok := propByIRI[name]
	return p, ok
}

// MustProperty is Property for names known at compile time
func MustProperty(name string) PropertyDef {
	p, ok := Property(name)
	if !ok {
		panic("ontology: unknown property " + name)
	}
	return p
}

// SuperClasses returns the ancestors of class, nearest first
func SuperClasses(class string) []string {
	var out []string
	c, ok := classByIRI[class]
	for ok && c.Parent != "" {
		out = append(out, c.Parent)
		c, ok = classByIRI[c.Parent]
	}
	return out
}

// IsSubClassOf reports whether class equals or descends from ancestor
func IsSubClassOf(class, ancestor string) bool {
	if class == ancestor {
		return true
	}
	for _, s := range SuperClasses(class) {
		if s == ancestor {
			return true
		}
	}
	return false
}

var (
	graphOnce sync.Once
	graph     *rdf.Graph
)

// Graph returns the ontology as RDF triples. The result is a fresh copy.
func Graph() *rdf.Graph {
	graphOnce.Do(func() {
		graph = buildGraph()
	})
	return graph.Clone()
}

// Bind registers the standard prefixes on g
func Bind(g *rdf.Graph) {
	g.Bind(Prefix, Namespace)
	g.Bind(InstancePrefix, InstanceNamespace)
	g.Bind("rdf", rdf.RDFNS)
	g.Bind("rdfs", rdf.RDFSNS)
	g.Bind("xsd", rdf.XSDNS)
}

func buildGraph() *rdf.Graph {
	g := rdf.NewGraph()
	Bind(g)

	for _, c := range classes {
		s := rdf.IRI(c.IRI)
		g.Add(rdf.T(s, rdf.RDFType, rdf.RDFSClass))
		if c.Parent != "" {
			g.Add(rdf.T(s, rdf.RDFSSubClassOf, rdf.IRI(c.Parent)))
		}
		g.Add(rdf.T(s, rdf.RDFSLabel, rdf.Literal(c.Label)))
		g.Add(rdf.T(s, rdf.RDFSComment, rdf.Literal(c.Comment)))
	}

	for _, p := range properties {
		s := p.Term()
		g.Add(rdf.T(s, rdf.RDFType, rdf.RDFProp))
		g.Add(rdf.T(s, rdf.RDFSDomain, rdf.IRI(p.Domain)))
		g.Add(rdf.T(s, rdf.RDFSRange, rdf.IRI(p.Range)))
		g.Add(rdf.T(s, rdf.RDFSLabel, rdf.Literal(p.Label)))
		g.Add(rdf.T(s, rdf.RDFSComment, rdf.Literal(p.Comment)))
	}
	return g
}
