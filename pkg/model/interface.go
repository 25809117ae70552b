package model

// Interface is a port owned by exactly one node.
//
// AccessVLAN is meant for ACCESS ports and AllowedVLANs for TRUNK ports.
// That coupling is checked by the shapes schema, not here: an Interface
// with mismatched fields still constructs.
type Interface struct {
	Base         `yaml:",inline"`
	HWStatus     HWStatus `yaml:"hw_status,omitempty" validate:"omitempty,oneof=ON OFF ABN"`
	PortMode     PortMode `yaml:"port_mode,omitempty" validate:"omitempty,oneof=ACCESS TRUNK UNCONFIGURED"`
	Node         string   `yaml:"node" validate:"required,logicalkey"`
	Link         string   `yaml:"link,omitempty" validate:"omitempty,logicalkey"`
	AccessVLAN   string   `yaml:"access_vlan,omitempty" validate:"omitempty,logicalkey"`
	AllowedVLANs []string `yaml:"allowed_vlans,omitempty" validate:"dive,logicalkey"`
	Addresses    []string `yaml:"addresses,omitempty" validate:"dive,logicalkey"`
}

func (i *Interface) Kind() Kind      { return KindInterface }
func (i *Interface) Validate() error { return check(i) }

// Status returns the hardware status, defaulting to ON
func (i *Interface) Status() HWStatus {
	if i.HWStatus == "" {
		return DefaultHWStatus
	}
	return i.HWStatus
}

// Mode returns the port mode, defaulting to UNCONFIGURED
func (i *Interface) Mode() PortMode {
	if i.PortMode == "" {
		return DefaultPortMode
	}
	return i.PortMode
}

// NewInterface builds and validates an Interface owned by node
func NewInterface(id, node string, mode PortMode) (*Interface, error) {
	i := &Interface{Base: Base{ID: id}, Node: node, PortMode: mode}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Link connects interfaces. A nil Bandwidth or Cost is unset; zero is a value.
type Link struct {
	Base       `yaml:",inline"`
	HWStatus   HWStatus `yaml:"hw_status,omitempty" validate:"omitempty,oneof=ON OFF ABN"`
	Technology string   `yaml:"technology,omitempty"`
	Bandwidth  *int     `yaml:"bandwidth,omitempty" validate:"omitempty,min=0"`
	Cost       *int     `yaml:"cost,omitempty" validate:"omitempty,min=0"`
	Interfaces []string `yaml:"interfaces,omitempty" validate:"dive,logicalkey"`
}

func (l *Link) Kind() Kind      { return KindLink }
func (l *Link) Validate() error { return check(l) }

// Status returns the hardware status, defaulting to ON
func (l *Link) Status() HWStatus {
	if l.HWStatus == "" {
		return DefaultHWStatus
	}
	return l.HWStatus
}

// NewLink builds and validates a Link between interfaces
func NewLink(id, technology string, interfaces ...string) (*Link, error) {
	l := &Link{Base: Base{ID: id}, Technology: technology, Interfaces: interfaces}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
