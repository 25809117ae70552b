package model

// Node is the shared part of every network device. It is never used on its
// own; Router, Switch and Host embed it.
type Node struct {
	Base       `yaml:",inline"`
	HWStatus   HWStatus `yaml:"hw_status,omitempty" validate:"omitempty,oneof=ON OFF ABN"`
	Interfaces []string `yaml:"interfaces,omitempty" validate:"dive,logicalkey"`
	Neighbors  []string `yaml:"neighbors,omitempty" validate:"dive,logicalkey"`
}

// Status returns the hardware status, defaulting to ON
func (n *Node) Status() HWStatus {
	if n.HWStatus == "" {
		return DefaultHWStatus
	}
	return n.HWStatus
}

// NodeData returns the shared node fields
func (n *Node) NodeData() *Node { return n }

// NodeEntity is implemented by Router, Switch and Host
type NodeEntity interface {
	Entity
	NodeData() *Node
}

// Router is a node that routes between subnets
type Router struct {
	Node          `yaml:",inline"`
	RoutedSubnets []string `yaml:"routes,omitempty" validate:"dive,logicalkey"`
}

func (r *Router) Kind() Kind      { return KindRouter }
func (r *Router) Validate() error { return check(r) }

// NewRouter builds and validates a Router
func NewRouter(id string, interfaces, neighbors, subnets []string) (*Router, error) {
	r := &Router{
		Node:          Node{Base: Base{ID: id}, Interfaces: interfaces, Neighbors: neighbors},
		RoutedSubnets: subnets,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Switch forwards frames within VLANs
type Switch struct {
	Node `yaml:",inline"`
}

func (s *Switch) Kind() Kind      { return KindSwitch }
func (s *Switch) Validate() error { return check(s) }

// NewSwitch builds and validates a Switch
func NewSwitch(id string, interfaces, neighbors []string) (*Switch, error) {
	s := &Switch{Node: Node{Base: Base{ID: id}, Interfaces: interfaces, Neighbors: neighbors}}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Host is an end system
type Host struct {
	Node `yaml:",inline"`
}

func (h *Host) Kind() Kind      { return KindHost }
func (h *Host) Validate() error { return check(h) }

// NewHost builds and validates a Host
func NewHost(id string, interfaces, neighbors []string) (*Host, error) {
	h := &Host{Node: Node{Base: Base{ID: id}, Interfaces: interfaces, Neighbors: neighbors}}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}
