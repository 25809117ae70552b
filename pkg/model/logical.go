package model

// VLAN ids are 802.1Q values; 0 and 4095 are reserved
const (
	MinVLANID = 1
	MaxVLANID = 4094
)

// VLAN is a virtual LAN. Uniqueness of VLANID across a graph is a
// convention reported by the validator, not enforced here.
type VLAN struct {
	Base    `yaml:",inline"`
	VLANID  int      `yaml:"vlan_id" validate:"required,min=1,max=4094"`
	Name    string   `yaml:"name,omitempty"`
	Subnets []string `yaml:"subnets,omitempty" validate:"dive,logicalkey"`
}

func (v *VLAN) Kind() Kind      { return KindVLAN }
func (v *VLAN) Validate() error { return check(v) }

// NewVLAN builds and validates a VLAN
func NewVLAN(id string, vlanID int, name string, subnets ...string) (*VLAN, error) {
	v := &VLAN{Base: Base{ID: id}, VLANID: vlanID, Name: name, Subnets: subnets}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Subnet is an IP network. CIDR is not pattern checked.
type Subnet struct {
	Base `yaml:",inline"`
	CIDR string `yaml:"cidr" validate:"required"`
}

func (s *Subnet) Kind() Kind      { return KindSubnet }
func (s *Subnet) Validate() error { return check(s) }

// NewSubnet builds and validates a Subnet
func NewSubnet(id, cidr string) (*Subnet, error) {
	s := &Subnet{Base: Base{ID: id}, CIDR: cidr}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// AddressAssignment binds one address to one subnet
type AddressAssignment struct {
	Base   `yaml:",inline"`
	IP     string `yaml:"ip" validate:"required"`
	Subnet string `yaml:"subnet" validate:"required,logicalkey"`
}

func (a *AddressAssignment) Kind() Kind      { return KindAddressAssignment }
func (a *AddressAssignment) Validate() error { return check(a) }

// NewAddressAssignment builds and validates an AddressAssignment
func NewAddressAssignment(id, ip, subnet string) (*AddressAssignment, error) {
	a := &AddressAssignment{Base: Base{ID: id}, IP: ip, Subnet: subnet}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
