package ie

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// DecodeMandatory decodes a fixed-position IE and names it in any failure.
func DecodeMandatory(r *codec.Reader, name string, decode func(r *codec.Reader) error) error {
	if err := decode(r); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

// EncodeMandatory encodes a fixed-position IE and names it in any failure.
func EncodeMandatory(w *codec.Writer, name string, encode func(w *codec.Writer) error) error {
	if err := encode(w); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

// LV reads a mandatory type 4 value (one length octet).
func LV(r *codec.Reader, name string, field *[]byte) error {
	return DecodeMandatory(r, name, func(r *codec.Reader) error {
		v, err := r.LengthPrefixed(1)
		if err != nil {
			return err
		}
		*field = v
		return nil
	})
}

// LVE reads a mandatory type 6 value (two length octets).
func LVE(r *codec.Reader, name string, field *[]byte) error {
	return DecodeMandatory(r, name, func(r *codec.Reader) error {
		v, err := r.LengthPrefixed(2)
		if err != nil {
			return err
		}
		*field = v
		return nil
	})
}

func PutLV(w *codec.Writer, name string, v []byte) error {
	return EncodeMandatory(w, name, func(w *codec.Writer) error {
		return w.LengthPrefixed(1, v)
	})
}

func PutLVE(w *codec.Writer, name string, v []byte) error {
	return EncodeMandatory(w, name, func(w *codec.Writer) error {
		return w.LengthPrefixed(2, v)
	})
}

// Octets binds an opaque TLV or TLV-E IE to a byte slice; nil means absent.
func Octets(name string, iei uint8, format Format, field *[]byte) Optional {
	return Optional{
		Name:    name,
		IEI:     iei,
		Format:  format,
		Present: func() bool { return *field != nil },
		Decode: func(r *codec.Reader) error {
			*field = r.Rest()
			return nil
		},
		Encode: func(w *codec.Writer) error {
			return w.Write(*field)
		},
	}
}

// Fixed binds a type 3 IE with a value of size octets to a byte slice; nil means absent.
func Fixed(name string, iei uint8, size int, field *[]byte) Optional {
	o := Octets(name, iei, FormatTV, field)
	o.Size = size

	return o
}

// Octet binds a type 3 IE with a one-octet value; nil means absent.
func Octet(name string, iei uint8, field **uint8) Optional {
	return Optional{
		Name:    name,
		IEI:     iei,
		Format:  FormatTV,
		Size:    1,
		Present: func() bool { return *field != nil },
		Decode: func(r *codec.Reader) error {
			v, err := r.Uint8()
			if err != nil {
				return err
			}
			*field = &v
			return nil
		},
		Encode: func(w *codec.Writer) error {
			return w.Uint8(**field)
		},
	}
}

// HalfOctet binds a type 1 IE; iei carries the IEI in its high nibble. nil means absent.
func HalfOctet(name string, iei uint8, field **uint8) Optional {
	o := Octet(name, iei, field)
	o.Format = FormatTV1
	o.Size = 0

	return o
}

// V reads a mandatory one-octet value.
func V(r *codec.Reader, name string, field *uint8) error {
	return DecodeMandatory(r, name, func(r *codec.Reader) error {
		v, err := r.Uint8()
		if err != nil {
			return err
		}
		*field = v
		return nil
	})
}

// HalfOctets reads one octet carrying two half-octet values.
func HalfOctets(r *codec.Reader, name string, hi, lo *uint8) error {
	return DecodeMandatory(r, name, func(r *codec.Reader) error {
		h, l, err := r.Nibbles()
		if err != nil {
			return err
		}
		*hi, *lo = h, l
		return nil
	})
}

// Value reads a mandatory value of n octets.
func Value(r *codec.Reader, name string, n int, field *[]byte) error {
	return DecodeMandatory(r, name, func(r *codec.Reader) error {
		v, err := r.Bytes(n)
		if err != nil {
			return err
		}
		*field = v
		return nil
	})
}

func PutV(w *codec.Writer, name string, v uint8) error {
	return EncodeMandatory(w, name, func(w *codec.Writer) error {
		return w.Uint8(v)
	})
}

func PutHalfOctets(w *codec.Writer, name string, hi, lo uint8) error {
	return EncodeMandatory(w, name, func(w *codec.Writer) error {
		return w.Nibbles(hi, lo)
	})
}

// PutValue writes a mandatory value that must be exactly n octets long.
func PutValue(w *codec.Writer, name string, n int, v []byte) error {
	return EncodeMandatory(w, name, func(w *codec.Writer) error {
		if len(v) != n {
			return fmt.Errorf("value has %d octets, want %d: %w", len(v), n, codec.ErrMalformedIE)
		}
		return w.Write(v)
	})
}
