package model

import (
	"errors"
	"testing"
)

func TestConstructors_Valid(t *testing.T) {
	if _, err := NewRouter("Router1", []string{"R1_Eth0"}, []string{"Switch1"}, []string{"Subnet_10.0.0.0_30"}); err != nil {
		t.Errorf("NewRouter: %v", err)
	}
	if _, err := NewSwitch("Switch1", nil, nil); err != nil {
		t.Errorf("NewSwitch: %v", err)
	}
	if _, err := NewHost("Host1", []string{"H1_Eth0"}, nil); err != nil {
		t.Errorf("NewHost: %v", err)
	}
	if _, err := NewInterface("Sw1_Fa0/1", "Switch1", PortAccess); err != nil {
		t.Errorf("NewInterface: %v", err)
	}
	if _, err := NewLink("Link_Sw1_H1", "Ethernet", "Sw1_Fa0-1", "H1_Eth0"); err != nil {
		t.Errorf("NewLink: %v", err)
	}
	if _, err := NewVLAN("VLAN10", 10, "Users"); err != nil {
		t.Errorf("NewVLAN: %v", err)
	}
	if _, err := NewSubnet("Subnet_10.0.10.0_24", "10.0.10.0/24"); err != nil {
		t.Errorf("NewSubnet: %v", err)
	}
	if _, err := NewAddressAssignment("Assign_H1", "10.0.10.50", "Subnet_10.0.10.0_24"); err != nil {
		t.Errorf("NewAddressAssignment: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		entity     Entity
		field      string
		constraint string
	}{
		{"empty id", &Switch{}, "ID", "required"},
		{"blank id", &Subnet{Base: Base{ID: " \t"}, CIDR: "10.0.0.0/8"}, "ID", "logicalkey"},
		{"unknown status", &Host{Node: Node{Base: Base{ID: "h"}, HWStatus: "BROKEN"}}, "HWStatus", "oneof=ON OFF ABN"},
		{"interface without node", &Interface{Base: Base{ID: "eth0"}}, "Node", "required"},
		{"unknown port mode", &Interface{Base: Base{ID: "eth0"}, Node: "n", PortMode: "HYBRID"}, "PortMode", "oneof=ACCESS TRUNK UNCONFIGURED"},
		{"blank neighbor", &Router{Node: Node{Base: Base{ID: "r"}, Neighbors: []string{""}}}, "Neighbors[0]", "logicalkey"},
		{"negative bandwidth", &Link{Base: Base{ID: "l"}, Bandwidth: intPtr(-1)}, "Bandwidth", "min=0"},
		{"vlan id missing", &VLAN{Base: Base{ID: "v"}}, "VLANID", "required"},
		{"vlan id too large", &VLAN{Base: Base{ID: "v"}, VLANID: 4095}, "VLANID", "max=4094"},
		{"subnet without cidr", &Subnet{Base: Base{ID: "s"}}, "CIDR", "required"},
		{"assignment without ip", &AddressAssignment{Base: Base{ID: "a"}, Subnet: "s"}, "IP", "required"},
		{"assignment without subnet", &AddressAssignment{Base: Base{ID: "a"}, IP: "10.0.0.1"}, "Subnet", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidEntity) {
				t.Errorf("error should wrap ErrInvalidEntity: %v", err)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.field || ve.Constraint != tt.constraint {
				t.Errorf("got %s/%s, want %s/%s", ve.Field, ve.Constraint, tt.field, tt.constraint)
			}
			if ve.Kind != tt.entity.Kind() {
				t.Errorf("Kind = %s, want %s", ve.Kind, tt.entity.Kind())
			}
		})
	}
}

func TestInterface_PortModeCouplingNotEnforced(t *testing.T) {
	// ACCESS with an allowed list and no access VLAN still constructs
	i := &Interface{
		Base:         Base{ID: "Sw1_Fa0-3"},
		Node:         "Switch1",
		PortMode:     PortAccess,
		AllowedVLANs: []string{"VLAN10", "VLAN20"},
	}
	if err := i.Validate(); err != nil {
		t.Errorf("model should not enforce port mode coupling: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	i := &Interface{Base: Base{ID: "eth0"}, Node: "n"}
	if i.Status() != StatusOn {
		t.Errorf("default status = %s", i.Status())
	}
	if i.Mode() != PortUnconfigured {
		t.Errorf("default mode = %s", i.Mode())
	}

	n := &Switch{Node: Node{Base: Base{ID: "s"}, HWStatus: StatusAbnormal}}
	if n.Status() != StatusAbnormal {
		t.Errorf("explicit status lost: %s", n.Status())
	}
	if (&Link{}).Status() != StatusOn {
		t.Error("link default status should be ON")
	}
}

func TestNodeVariants_ShareNodeData(t *testing.T) {
	var variants = []NodeEntity{
		&Router{Node: Node{Base: Base{ID: "r"}}},
		&Switch{Node: Node{Base: Base{ID: "s"}}},
		&Host{Node: Node{Base: Base{ID: "h"}}},
	}
	for _, v := range variants {
		if v.NodeData().ID != v.EntityID() {
			t.Errorf("%s: NodeData does not point at the embedded node", v.Kind())
		}
		if v.Describe() != &v.NodeData().Base {
			t.Errorf("%s: Describe should return the shared base", v.Kind())
		}
	}
}

func TestValidateAll(t *testing.T) {
	good := &Subnet{Base: Base{ID: "s"}, CIDR: "10.0.0.0/8"}
	bad := &VLAN{Base: Base{ID: "v"}}

	if err := ValidateAll([]Entity{good}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateAll([]Entity{good, bad})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.EntityID != "v" {
		t.Errorf("expected failure on v, got %v", err)
	}

	if err := ValidateAll([]Entity{nil}); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("nil entity should be invalid, got %v", err)
	}
}

func intPtr(v int) *int { return &v }

func TestLink_ZeroCostIsValid(t *testing.T) {
	l := &Link{Base: Base{ID: "l"}, Bandwidth: intPtr(0), Cost: intPtr(0)}
	if err := l.Validate(); err != nil {
		t.Errorf("zero bandwidth and cost should be valid: %v", err)
	}
}
