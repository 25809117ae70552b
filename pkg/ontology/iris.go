package ontology

// Namespace is the base IRI for network ontology classes and properties.
const Namespace = "http://www.example.org/network-ontology#"

// InstanceNamespace is the base IRI for network entity instances.
const InstanceNamespace = "http://www.example.org/network-instance#"

// ShapesNamespace holds the validator's extension keywords.
const ShapesNamespace = "http://www.example.org/network-shapes#"

// Prefixes used when writing graphs.
const (
	Prefix         = "net"
	InstancePrefix = "ex"
	ShapesPrefix   = "nsh"
)

// Class IRIs. The hierarchy is single inheritance rooted at NetEntity.
const (
	// ClassNetEntity is the root of every network concept.
	ClassNetEntity = Namespace + "NetEntity"

	// ClassHWNetEntity covers physical things that carry a hardware status.
	// Extends: ClassNetEntity
	ClassHWNetEntity = Namespace + "HWNetEntity"

	// ClassLogicalEntity covers configuration constructs.
	// Extends: ClassNetEntity
	ClassLogicalEntity = Namespace + "LogicalEntity"

	// ClassNode is a device with interfaces.
	// Extends: ClassHWNetEntity
	ClassNode = Namespace + "Node"

	// Extends: ClassNode
	ClassRouter = Namespace + "Router"
	ClassSwitch = Namespace + "Switch"
	ClassHost   = Namespace + "Host"

	// ClassIface is a network interface owned by exactly one node.
	// Extends: ClassHWNetEntity
	ClassIface = Namespace + "Iface"

	// ClassLink joins interfaces.
	// Extends: ClassHWNetEntity
	ClassLink = Namespace + "Link"

	// Extends: ClassLogicalEntity
	ClassVLAN              = Namespace + "VLAN"
	ClassSubnet            = Namespace + "Subnet"
	ClassAddressAssignment = Namespace + "AddressAssignment"
)

// Object property IRIs.
const (
	// PropHasIFace links a node to its interfaces.
	// Domain: ClassNode, Range: ClassIface. Inverse of PropBelongsToNode.
	PropHasIFace = Namespace + "HasIFace"

	// PropBelongsToNode links an interface to its owning node.
	// Domain: ClassIface, Range: ClassNode
	PropBelongsToNode = Namespace + "BelongsToNode"

	// PropHasNeighbor links adjacent nodes. Not symmetric by construction.
	// Domain: ClassNode, Range: ClassNode
	PropHasNeighbor = Namespace + "HasNeighbor"

	// Domain: ClassRouter, Range: ClassSubnet
	PropRoutesSubnet = Namespace + "routesSubnet"

	// PropConnectedToLink links an interface to its link.
	// Domain: ClassIface, Range: ClassLink. Inverse of PropHasInterface.
	PropConnectedToLink = Namespace + "ConnectedToLink"

	// Domain: ClassLink, Range: ClassIface
	PropHasInterface = Namespace + "hasInterface"

	// Domain: ClassIface, Range: ClassVLAN
	PropAccessVlan  = Namespace + "accessVlan"
	PropAllowedVlan = Namespace + "allowedVlan"

	// Domain: ClassIface, Range: ClassAddressAssignment
	PropHasAddressAssignment = Namespace + "hasAddressAssignment"

	// Domain: ClassVLAN, Range: ClassSubnet
	PropHasSubnet = Namespace + "hasSubnet"

	// Domain: ClassAddressAssignment, Range: ClassSubnet
	PropOnSubnet = Namespace + "onSubnet"
)

// Datatype property IRIs.
const (
	// Domain: ClassHWNetEntity, Range: xsd:string (ON, OFF, ABN)
	PropHWStatus = Namespace + "HWStatus"

	// Domain: ClassIface, Range: xsd:string (ACCESS, TRUNK, UNCONFIGURED)
	PropPortMode = Namespace + "portMode"

	// Domain: ClassLink, Range: xsd:string
	PropTechnology = Namespace + "Technology"

	// Domain: ClassLink, Range: xsd:integer
	PropBandwidth = Namespace + "Bandwidth"
	PropCost      = Namespace + "Cost"

	// Domain: ClassVLAN, Range: xsd:integer
	PropVlanID = Namespace + "vlanId"

	// Domain: ClassVLAN, Range: xsd:string
	PropVlanName = Namespace + "vlanName"

	// Domain: ClassSubnet, Range: xsd:string
	PropSubnetCidr = Namespace + "subnetCidr"

	// Domain: ClassAddressAssignment, Range: xsd:string
	PropIPValue = Namespace + "ipValue"
)

// Validator extension keywords.
const (
	// ShapeBackReference on a property shape names the inverse property
	// every value must point back along.
	ShapeBackReference = ShapesNamespace + "backReference"

	// ShapeUnique on a property shape requires values to be distinct
	// across all focus nodes.
	ShapeUnique = ShapesNamespace + "unique"

	// ShapeFilter on a node shape restricts focus nodes to those having a
	// given value on a given path.
	ShapeFilter = ShapesNamespace + "filter"
)
