package fgsm

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// MaxQoSRules is the largest number of QoS rules a QoS rules IE may carry.
const MaxQoSRules = 64

// 9.11.4.13 Rule operation code
const (
	RuleOperationCreate                  uint8 = 0b001
	RuleOperationDelete                  uint8 = 0b010
	RuleOperationModifyAndAddFilters     uint8 = 0b011
	RuleOperationModifyAndReplaceFilters uint8 = 0b100
	RuleOperationModifyAndDeleteFilters  uint8 = 0b101
	RuleOperationModifyWithoutFilters    uint8 = 0b110
)

// 9.11.4.13 Packet filter direction
const (
	PacketFilterDirectionDownlink      uint8 = 0b01
	PacketFilterDirectionUplink        uint8 = 0b10
	PacketFilterDirectionBidirectional uint8 = 0b11
)

const (
	maxPacketFilters   = 15
	maxFilterID        = 0x0f
	maxQFI             = 0x3f
	maxFilterDirection = 0x03
)

// PacketFilterShape is the wire layout of one entry of a packet filter list. It is not encoded in
// the entry itself; the operation code of the enclosing rule selects it.
type PacketFilterShape uint8

const (
	// PacketFilterCreate carries direction, identifier, a content length and the contents.
	PacketFilterCreate PacketFilterShape = iota + 1
	// PacketFilterModify carries the packet filter identifier only.
	PacketFilterModify
)

func (s PacketFilterShape) String() string {
	switch s {
	case PacketFilterCreate:
		return "create"
	case PacketFilterModify:
		return "modify"
	default:
		return fmt.Sprintf("PacketFilterShape(%d)", uint8(s))
	}
}

type PacketFilter struct {
	Shape      PacketFilterShape
	Direction  uint8
	Identifier uint8
	Contents   []byte
	// Spare holds the octet bits above the identifier (modify shape) or the direction (create shape).
	Spare uint8
}

type QoSRule struct {
	Identifier    uint8
	OperationCode uint8
	DQR           bool
	PacketFilters []PacketFilter
	Precedence    uint8
	Segregation   bool
	QFI           uint8
	// Spare is bit 8 of the QFI octet.
	Spare uint8
}

// filterShape returns the packet filter layout used by op, and checks that a rule with op may
// carry n packet filters.
func filterShape(op uint8, n int) (PacketFilterShape, error) {
	switch op {
	case RuleOperationCreate, RuleOperationModifyAndAddFilters, RuleOperationModifyAndReplaceFilters:
		return PacketFilterCreate, nil
	case RuleOperationModifyAndDeleteFilters:
		return PacketFilterModify, nil
	case RuleOperationDelete, RuleOperationModifyWithoutFilters:
		if n != 0 {
			return 0, fmt.Errorf("operation code %03b carries %d packet filters: %w", op, n, codec.ErrMalformedIE)
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("reserved operation code %03b: %w", op, codec.ErrMalformedIE)
	}
}

// hasPrecedence reports whether the precedence and QFI octets follow the packet filter list.
func hasPrecedence(op uint8) bool {
	return op != RuleOperationDelete
}

func decodeQoSRules(r *codec.Reader) ([]QoSRule, error) {
	rules := []QoSRule{}

	for r.Len() > 0 {
		if len(rules) == MaxQoSRules {
			return nil, &codec.Error{Offset: r.Offset(), Err: fmt.Errorf("more than %d rules: %w", MaxQoSRules, codec.ErrTooManyRules)}
		}

		var q QoSRule
		if err := q.decode(r); err != nil {
			return nil, fmt.Errorf("QoS rule %d: %w", len(rules)+1, err)
		}

		rules = append(rules, q)
	}

	return rules, nil
}

func encodeQoSRules(w *codec.Writer, rules []QoSRule) error {
	if len(rules) > MaxQoSRules {
		return fmt.Errorf("%d rules, at most %d allowed: %w", len(rules), MaxQoSRules, codec.ErrTooManyRules)
	}

	for i, q := range rules {
		if err := q.encode(w); err != nil {
			return fmt.Errorf("QoS rule %d: %w", i+1, err)
		}
	}

	return nil
}

func (q *QoSRule) decode(r *codec.Reader) error {
	id, err := r.Uint8()
	if err != nil {
		return err
	}
	q.Identifier = id

	rr, err := r.SubPrefixed(2)
	if err != nil {
		return err
	}

	hdr, err := rr.Uint8()
	if err != nil {
		return err
	}

	q.OperationCode = codec.Bits(hdr, 5, 3)
	q.DQR = codec.Bits(hdr, 4, 1) == 1
	n := int(codec.Bits(hdr, 0, 4))

	shape, err := filterShape(q.OperationCode, n)
	if err != nil {
		return &codec.Error{Offset: rr.Offset() - 1, Err: err}
	}

	q.PacketFilters = make([]PacketFilter, 0, n)
	for i := 0; i < n; i++ {
		pf := PacketFilter{Shape: shape}
		if err := pf.decode(rr); err != nil {
			return fmt.Errorf("packet filter %d: %w", i+1, err)
		}
		q.PacketFilters = append(q.PacketFilters, pf)
	}

	if hasPrecedence(q.OperationCode) {
		if q.Precedence, err = rr.Uint8(); err != nil {
			return err
		}

		v, err := rr.Uint8()
		if err != nil {
			return err
		}
		q.Spare = codec.Bits(v, 7, 1)
		q.Segregation = codec.Bits(v, 6, 1) == 1
		q.QFI = codec.Bits(v, 0, 6)
	}

	return rr.Done()
}

func (q QoSRule) encode(w *codec.Writer) error {
	shape, err := filterShape(q.OperationCode, len(q.PacketFilters))
	if err != nil {
		return err
	}

	if len(q.PacketFilters) > maxPacketFilters {
		return fmt.Errorf("%d packet filters, at most %d allowed: %w", len(q.PacketFilters), maxPacketFilters, codec.ErrMalformedIE)
	}

	if q.QFI > maxQFI {
		return fmt.Errorf("QFI %d out of range: %w", q.QFI, codec.ErrMalformedIE)
	}

	if q.Spare > 1 {
		return fmt.Errorf("QFI octet spare bit %d out of range: %w", q.Spare, codec.ErrMalformedIE)
	}

	if err := w.Uint8(q.Identifier); err != nil {
		return err
	}

	return w.Prefixed(2, func(w *codec.Writer) error {
		hdr := codec.PutBits(0, 5, 3, q.OperationCode)
		hdr = codec.PutBits(hdr, 4, 1, boolBit(q.DQR))
		hdr = codec.PutBits(hdr, 0, 4, uint8(len(q.PacketFilters)))
		if err := w.Uint8(hdr); err != nil {
			return err
		}

		for i, pf := range q.PacketFilters {
			if pf.Shape != shape {
				return fmt.Errorf("packet filter %d has %v shape, operation code %03b needs %v: %w",
					i+1, pf.Shape, q.OperationCode, shape, codec.ErrMalformedIE)
			}
			if err := pf.encode(w); err != nil {
				return fmt.Errorf("packet filter %d: %w", i+1, err)
			}
		}

		if !hasPrecedence(q.OperationCode) {
			return nil
		}

		if err := w.Uint8(q.Precedence); err != nil {
			return err
		}

		v := codec.PutBits(q.QFI, 6, 1, boolBit(q.Segregation))
		return w.Uint8(codec.PutBits(v, 7, 1, q.Spare))
	})
}

func (pf *PacketFilter) decode(r *codec.Reader) error {
	v, err := r.Uint8()
	if err != nil {
		return err
	}

	pf.Identifier = codec.Bits(v, 0, 4)

	if pf.Shape == PacketFilterModify {
		pf.Spare = codec.Bits(v, 4, 4)
		return nil
	}

	pf.Direction = codec.Bits(v, 4, 2)
	pf.Spare = codec.Bits(v, 6, 2)

	contents, err := r.LengthPrefixed(1)
	if err != nil {
		return err
	}
	pf.Contents = contents

	return nil
}

func (pf PacketFilter) encode(w *codec.Writer) error {
	if pf.Identifier > maxFilterID {
		return fmt.Errorf("packet filter identifier %d out of range: %w", pf.Identifier, codec.ErrMalformedIE)
	}

	if pf.Shape == PacketFilterModify {
		if pf.Spare > 0x0f {
			return fmt.Errorf("packet filter spare bits 0x%x out of range: %w", pf.Spare, codec.ErrMalformedIE)
		}
		return w.Uint8(codec.PutBits(pf.Identifier, 4, 4, pf.Spare))
	}

	if pf.Direction > maxFilterDirection {
		return fmt.Errorf("packet filter direction %d out of range: %w", pf.Direction, codec.ErrMalformedIE)
	}

	if pf.Spare > 0x03 {
		return fmt.Errorf("packet filter spare bits 0x%x out of range: %w", pf.Spare, codec.ErrMalformedIE)
	}

	v := codec.PutBits(pf.Identifier, 4, 2, pf.Direction)
	if err := w.Uint8(codec.PutBits(v, 6, 2, pf.Spare)); err != nil {
		return err
	}

	return w.LengthPrefixed(1, pf.Contents)
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}
