package fgsm

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// 9.11.4.13 Packet filter component type identifiers
const (
	ComponentMatchAll                uint8 = 0x01
	ComponentIPv4RemoteAddress       uint8 = 0x10
	ComponentIPv4LocalAddress        uint8 = 0x11
	ComponentIPv6RemoteAddressPrefix uint8 = 0x21
	ComponentIPv6LocalAddressPrefix  uint8 = 0x23
	ComponentProtocolIdentifier      uint8 = 0x30
	ComponentSingleLocalPort         uint8 = 0x40
	ComponentLocalPortRange          uint8 = 0x41
	ComponentSingleRemotePort        uint8 = 0x50
	ComponentRemotePortRange         uint8 = 0x51
	ComponentSecurityParameterIndex  uint8 = 0x60
	ComponentTypeOfService           uint8 = 0x70
	ComponentFlowLabel               uint8 = 0x80
	ComponentDestinationMACAddress   uint8 = 0x81
	ComponentSourceMACAddress        uint8 = 0x82
	ComponentCTagVID                 uint8 = 0x83
	ComponentSTagVID                 uint8 = 0x84
	ComponentCTagPCPDEI              uint8 = 0x85
	ComponentSTagPCPDEI              uint8 = 0x86
	ComponentEthertype               uint8 = 0x87
)

type PacketFilterComponent struct {
	Type  uint8
	Value []byte
}

func componentValueLen(t uint8) (int, bool) {
	switch t {
	case ComponentMatchAll:
		return 0, true
	case ComponentProtocolIdentifier, ComponentCTagPCPDEI, ComponentSTagPCPDEI:
		return 1, true
	case ComponentSingleLocalPort, ComponentSingleRemotePort, ComponentTypeOfService,
		ComponentCTagVID, ComponentSTagVID, ComponentEthertype:
		return 2, true
	case ComponentFlowLabel:
		return 3, true
	case ComponentLocalPortRange, ComponentRemotePortRange, ComponentSecurityParameterIndex:
		return 4, true
	case ComponentDestinationMACAddress, ComponentSourceMACAddress:
		return 6, true
	case ComponentIPv4RemoteAddress, ComponentIPv4LocalAddress:
		return 8, true
	case ComponentIPv6RemoteAddressPrefix, ComponentIPv6LocalAddressPrefix:
		return 17, true
	default:
		return 0, false
	}
}

// Components splits the contents of a create-shape packet filter into its components. A component
// of unknown type ends the list; it is returned with the rest of the contents as its value.
func (pf PacketFilter) Components() ([]PacketFilterComponent, error) {
	r := codec.NewRegion(pf.Contents, 0)
	comps := []PacketFilterComponent{}

	for r.Len() > 0 {
		t, err := r.Uint8()
		if err != nil {
			return nil, err
		}

		n, known := componentValueLen(t)
		if !known {
			comps = append(comps, PacketFilterComponent{Type: t, Value: r.Rest()})
			break
		}

		v, err := r.Bytes(n)
		if err != nil {
			return nil, fmt.Errorf("component 0x%02x: %w", t, err)
		}

		comps = append(comps, PacketFilterComponent{Type: t, Value: v})
	}

	return comps, nil
}

// NewPacketFilter builds create-shape packet filter contents from components.
func NewPacketFilter(direction, id uint8, comps ...PacketFilterComponent) (PacketFilter, error) {
	pf := PacketFilter{Shape: PacketFilterCreate, Direction: direction, Identifier: id}

	w := codec.NewWriter(make([]byte, 0xff))
	for _, c := range comps {
		if n, known := componentValueLen(c.Type); known && n != len(c.Value) {
			return pf, fmt.Errorf("component 0x%02x has %d octets, want %d: %w", c.Type, len(c.Value), n, codec.ErrMalformedIE)
		}
		if err := w.Uint8(c.Type); err != nil {
			return pf, fmt.Errorf("packet filter contents exceed 255 octets: %w", codec.ErrMalformedIE)
		}
		if err := w.Write(c.Value); err != nil {
			return pf, fmt.Errorf("packet filter contents exceed 255 octets: %w", codec.ErrMalformedIE)
		}
	}

	pf.Contents = w.Bytes()

	return pf, nil
}
