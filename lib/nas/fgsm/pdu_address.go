package fgsm

import (
	"fmt"
	"net/netip"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/free5gc/nas/nasMessage"
)

// 9.11.4.11 PDU session type
const (
	PDUSessionTypeIPv4         uint8 = nasMessage.PDUSessionTypeIPv4
	PDUSessionTypeIPv6         uint8 = nasMessage.PDUSessionTypeIPv6
	PDUSessionTypeIPv4IPv6     uint8 = nasMessage.PDUSessionTypeIPv4IPv6
	PDUSessionTypeUnstructured uint8 = 0x04
	PDUSessionTypeEthernet     uint8 = 0x05
)

const smfLinkLocalLen = 16

// 9.11.4.10 PDU address
type PDUAddress struct {
	Type             uint8
	SMFIPv6LinkLocal bool
	// Address holds the IPv4 address, the IPv6 interface identifier, or both in that order.
	Address      []byte
	SMFLinkLocal []byte
	// Spare is bits 5-8 of the type octet.
	Spare uint8
}

func addressLen(t uint8) (int, error) {
	switch t {
	case PDUSessionTypeIPv4:
		return 4, nil
	case PDUSessionTypeIPv6:
		return 8, nil
	case PDUSessionTypeIPv4IPv6:
		return 12, nil
	default:
		return 0, fmt.Errorf("PDU session type %d carries no address: %w", t, codec.ErrMalformedIE)
	}
}

// IPv4 returns the IPv4 address for IPv4 and IPv4v6 sessions.
func (a PDUAddress) IPv4() (netip.Addr, bool) {
	switch {
	case a.Type == PDUSessionTypeIPv4 && len(a.Address) == 4:
		return netip.AddrFrom4([4]byte(a.Address)), true
	case a.Type == PDUSessionTypeIPv4IPv6 && len(a.Address) == 12:
		return netip.AddrFrom4([4]byte(a.Address[8:])), true
	default:
		return netip.Addr{}, false
	}
}

// IPv6LinkLocal returns the fe80::/64 address built from the interface identifier for IPv6 and
// IPv4v6 sessions.
func (a PDUAddress) IPv6LinkLocal() (netip.Addr, bool) {
	var iid []byte

	switch {
	case a.Type == PDUSessionTypeIPv6 && len(a.Address) == 8:
		iid = a.Address
	case a.Type == PDUSessionTypeIPv4IPv6 && len(a.Address) == 12:
		iid = a.Address[:8]
	default:
		return netip.Addr{}, false
	}

	var b [16]byte
	b[0], b[1] = 0xfe, 0x80
	copy(b[8:], iid)

	return netip.AddrFrom16(b), true
}

func (a *PDUAddress) decode(r *codec.Reader) error {
	v, err := r.Uint8()
	if err != nil {
		return err
	}

	a.Spare = codec.Bits(v, 4, 4)
	a.SMFIPv6LinkLocal = codec.Bits(v, 3, 1) == 1
	a.Type = codec.Bits(v, 0, 3)

	n, err := addressLen(a.Type)
	if err != nil {
		return err
	}

	want := n
	if a.SMFIPv6LinkLocal {
		want += smfLinkLocalLen
	}

	if r.Len() != want {
		return &codec.Error{Offset: r.Offset(), Err: fmt.Errorf("address of %d octets, want %d: %w", r.Len(), want, codec.ErrMalformedIE)}
	}

	if a.Address, err = r.Bytes(n); err != nil {
		return err
	}

	if a.SMFIPv6LinkLocal {
		if a.SMFLinkLocal, err = r.Bytes(smfLinkLocalLen); err != nil {
			return err
		}
	}

	return nil
}

func (a PDUAddress) encode(w *codec.Writer) error {
	n, err := addressLen(a.Type)
	if err != nil {
		return err
	}

	if len(a.Address) != n {
		return fmt.Errorf("address of %d octets, want %d: %w", len(a.Address), n, codec.ErrMalformedIE)
	}

	if a.SMFIPv6LinkLocal != (a.SMFLinkLocal != nil) || (a.SMFIPv6LinkLocal && len(a.SMFLinkLocal) != smfLinkLocalLen) {
		return fmt.Errorf("SMF IPv6 link local address does not match the SI6LLA bit: %w", codec.ErrMalformedIE)
	}

	if a.Spare > 0x0f {
		return fmt.Errorf("PDU address spare bits 0x%x out of range: %w", a.Spare, codec.ErrMalformedIE)
	}

	v := codec.PutBits(a.Type, 3, 1, boolBit(a.SMFIPv6LinkLocal))
	if err := w.Uint8(codec.PutBits(v, 4, 4, a.Spare)); err != nil {
		return err
	}

	if err := w.Write(a.Address); err != nil {
		return err
	}

	if a.SMFIPv6LinkLocal {
		return w.Write(a.SMFLinkLocal)
	}

	return nil
}
