// Package ie decodes and encodes NAS information elements (TS 24.007 11.2.1.1).
package ie

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// Format is the encoding of an optional information element.
type Format uint8

const (
	// FormatTV1 is a type 1 IE: a half-octet IEI followed by a half-octet value.
	FormatTV1 Format = iota
	// FormatTV is a type 3 IE: IEI followed by a value of fixed size.
	FormatTV
	// FormatTLV is a type 4 IE: IEI, one length octet, value.
	FormatTLV
	// FormatTLVE is a type 6 IE: IEI, two length octets, value.
	FormatTLVE
)

func (f Format) String() string {
	switch f {
	case FormatTV1:
		return "TV1"
	case FormatTV:
		return "TV"
	case FormatTLV:
		return "TLV"
	case FormatTLVE:
		return "TLV-E"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Optional describes one optional IE of a message and binds it to the field holding its value.
//
// Decode receives a bounded reader over the value (for FormatTV1, a single octet holding the
// half-octet value) and must consume all of it. Encode writes the value only; the IEI and length
// are written by EncodeOptionals.
type Optional struct {
	Name    string
	IEI     uint8
	Format  Format
	Size    int
	Present func() bool
	Decode  func(r *codec.Reader) error
	Encode  func(w *codec.Writer) error
}

func (o Optional) matches(tag uint8) bool {
	if o.Format == FormatTV1 {
		return codec.Bits(tag, 4, 4) == codec.Bits(o.IEI, 4, 4)
	}

	return tag == o.IEI
}

func (o Optional) value(r *codec.Reader) (*codec.Reader, error) {
	switch o.Format {
	case FormatTV1:
		start := r.Offset()
		tag, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		return codec.NewRegion([]byte{codec.Bits(tag, 0, 4)}, start), nil
	case FormatTV:
		if _, err := r.Uint8(); err != nil {
			return nil, err
		}
		return r.Sub(o.Size)
	case FormatTLV:
		if _, err := r.Uint8(); err != nil {
			return nil, err
		}
		return r.SubPrefixed(1)
	case FormatTLVE:
		if _, err := r.Uint8(); err != nil {
			return nil, err
		}
		return r.SubPrefixed(2)
	default:
		return nil, fmt.Errorf("unknown IE format %v", o.Format)
	}
}

// DecodeOptionals scans the optional IEs of a message in their canonical order. The cursor only
// advances while the next tag matches the next expected IEI; the first mismatch (or the end of the
// buffer) ends the scan and every remaining IE is left absent.
func DecodeOptionals(r *codec.Reader, ies []Optional) error {
	for _, o := range ies {
		tag, ok := r.Peek()
		if !ok || !o.matches(tag) {
			return nil
		}

		start := r.Offset()

		v, err := o.value(r)
		if err != nil {
			return fmt.Errorf("%s (0x%02x) at offset %d: %w", o.Name, o.IEI, start, err)
		}

		if err := o.Decode(v); err != nil {
			return fmt.Errorf("%s (0x%02x): %w", o.Name, o.IEI, err)
		}

		if err := v.Done(); err != nil {
			return fmt.Errorf("%s (0x%02x): %w", o.Name, o.IEI, err)
		}
	}

	return nil
}

// EncodeOptionals writes the present IEs in canonical order. Because DecodeOptionals stops at the
// first absent IE, a present IE following an absent one cannot be represented and is rejected.
func EncodeOptionals(w *codec.Writer, ies []Optional) error {
	var absent *Optional

	for i := range ies {
		o := ies[i]
		if !o.Present() {
			if absent == nil {
				absent = &ies[i]
			}
			continue
		}

		if absent != nil {
			return fmt.Errorf("%s (0x%02x) follows absent %s (0x%02x): %w",
				o.Name, o.IEI, absent.Name, absent.IEI, codec.ErrMalformedIE)
		}

		if err := encodeOptional(w, o); err != nil {
			return fmt.Errorf("%s (0x%02x): %w", o.Name, o.IEI, err)
		}
	}

	return nil
}

func encodeOptional(w *codec.Writer, o Optional) error {
	switch o.Format {
	case FormatTV1:
		scratch := codec.NewWriter(make([]byte, 1))
		if err := o.Encode(scratch); err != nil {
			return err
		}
		if scratch.Len() != 1 {
			return codec.ErrMalformedIE
		}
		if v := scratch.Bytes()[0]; v > 0x0f {
			return &codec.Error{Offset: w.Len(), Err: fmt.Errorf("value 0x%x does not fit a half octet: %w", v, codec.ErrMalformedIE)}
		}
		return w.Uint8(codec.PutBits(o.IEI, 0, 4, scratch.Bytes()[0]))
	case FormatTV:
		n, err := codec.Size(o.Encode)
		if err != nil {
			return err
		}
		if n != o.Size {
			return fmt.Errorf("value has %d octets, want %d: %w", n, o.Size, codec.ErrMalformedIE)
		}
		if err := w.Uint8(o.IEI); err != nil {
			return err
		}
		return o.Encode(w)
	case FormatTLV, FormatTLVE:
		lenOctets := 1
		if o.Format == FormatTLVE {
			lenOctets = 2
		}
		if err := w.Uint8(o.IEI); err != nil {
			return err
		}
		return w.Prefixed(lenOctets, o.Encode)
	default:
		return fmt.Errorf("unknown IE format %v", o.Format)
	}
}
