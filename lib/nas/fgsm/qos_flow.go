package fgsm

import (
	"encoding/binary"
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// 9.11.4.12 QoS flow descriptions parameter identifiers
const (
	QFDParam5QI               uint8 = 0x01
	QFDParamGFBRUplink        uint8 = 0x02
	QFDParamGFBRDownlink      uint8 = 0x03
	QFDParamMFBRUplink        uint8 = 0x04
	QFDParamMFBRDownlink      uint8 = 0x05
	QFDParamAveragingWindow   uint8 = 0x06
	QFDParamEPSBearerIdentity uint8 = 0x07
)

// 9.11.4.12 Operation code
const (
	QFDOperationCreate uint8 = 0b001
	QFDOperationDelete uint8 = 0b010
	QFDOperationModify uint8 = 0b011
)

type QoSFlowParameter struct {
	Identifier uint8
	Contents   []byte
}

type QoSFlowDescription struct {
	QFI           uint8
	OperationCode uint8
	EBit          bool
	Parameters    []QoSFlowParameter
}

// FiveQI returns the 5QI parameter of the description, if present.
func (d QoSFlowDescription) FiveQI() (uint8, bool) {
	for _, p := range d.Parameters {
		if p.Identifier == QFDParam5QI && len(p.Contents) == 1 {
			return p.Contents[0], true
		}
	}

	return 0, false
}

// BitRateKbps returns a GFBR or MFBR parameter in kbps, if present and well formed.
func (d QoSFlowDescription) BitRateKbps(id uint8) (uint64, bool) {
	for _, p := range d.Parameters {
		if p.Identifier == id && len(p.Contents) == 3 {
			return toKbps(p.Contents[0], binary.BigEndian.Uint16(p.Contents[1:]))
		}
	}

	return 0, false
}

// ParseQoSFlowDescriptions decodes the value of a QoS flow descriptions IE.
func ParseQoSFlowDescriptions(content []byte) ([]QoSFlowDescription, error) {
	r := codec.NewRegion(content, 0)
	descs := []QoSFlowDescription{}

	for r.Len() > 0 {
		var d QoSFlowDescription

		qfi, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		d.QFI = codec.Bits(qfi, 0, 6)

		op, err := r.Uint8()
		if err != nil {
			return nil, fmt.Errorf("QoS flow description %d: %w", len(descs)+1, err)
		}
		d.OperationCode = codec.Bits(op, 5, 3)

		num, err := r.Uint8()
		if err != nil {
			return nil, fmt.Errorf("QoS flow description %d: %w", len(descs)+1, err)
		}
		d.EBit = codec.Bits(num, 6, 1) == 1
		count := int(codec.Bits(num, 0, 6))

		d.Parameters = make([]QoSFlowParameter, 0, count)
		for p := 0; p < count; p++ {
			id, err := r.Uint8()
			if err != nil {
				return nil, fmt.Errorf("QoS flow description %d parameter %d: %w", len(descs)+1, p+1, err)
			}

			v, err := r.LengthPrefixed(1)
			if err != nil {
				return nil, fmt.Errorf("QoS flow description %d parameter %d: %w", len(descs)+1, p+1, err)
			}

			d.Parameters = append(d.Parameters, QoSFlowParameter{Identifier: id, Contents: v})
		}

		descs = append(descs, d)
	}

	return descs, nil
}

// MarshalQoSFlowDescriptions encodes descriptions into the value of a QoS flow descriptions IE.
func MarshalQoSFlowDescriptions(descs []QoSFlowDescription) ([]byte, error) {
	encode := func(w *codec.Writer) error {
		for i, d := range descs {
			if d.QFI > maxQFI || len(d.Parameters) > 0x3f {
				return fmt.Errorf("QoS flow description %d: %w", i+1, codec.ErrMalformedIE)
			}

			num := codec.PutBits(uint8(len(d.Parameters)), 6, 1, boolBit(d.EBit))
			for _, v := range []uint8{d.QFI, codec.PutBits(0, 5, 3, d.OperationCode), num} {
				if err := w.Uint8(v); err != nil {
					return err
				}
			}

			for _, p := range d.Parameters {
				if err := w.Uint8(p.Identifier); err != nil {
					return err
				}
				if err := w.LengthPrefixed(1, p.Contents); err != nil {
					return err
				}
			}
		}

		return nil
	}

	n, err := codec.Size(encode)
	if err != nil {
		return nil, err
	}

	b := make([]byte, n)
	if err := encode(codec.NewWriter(b)); err != nil {
		return nil, err
	}

	return b, nil
}
