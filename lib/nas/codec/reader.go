// Package codec holds the bounds-checked primitives every NAS message is built from.
package codec

import "encoding/binary"

// Reader is a cursor over a borrowed buffer. A failed read never moves the cursor.
//
// A Reader returned by NewReader reports short reads as ErrBufferTooShort. A Reader returned by
// Sub covers the value of an information element whose length was already declared, so a short
// read there is an accounting error (ErrMalformedIE) and a nested length running past its end is
// ErrIEOutOfRange.
type Reader struct {
	buf     []byte
	off     int
	base    int
	bounded bool
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// NewRegion returns a bounded Reader over b, reporting offsets relative to base.
func NewRegion(b []byte, base int) *Reader {
	return &Reader{buf: b, base: base, bounded: true}
}

// Len returns the number of unread octets.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Offset returns the absolute position of the cursor in the outermost buffer.
func (r *Reader) Offset() int {
	return r.base + r.off
}

// Consumed returns the number of octets read so far.
func (r *Reader) Consumed() int {
	return r.off
}

func (r *Reader) short() error {
	if r.bounded {
		return errorAt(r.Offset(), ErrMalformedIE)
	}

	return errorAt(r.Offset(), ErrBufferTooShort)
}

func (r *Reader) overrun() error {
	if r.bounded {
		return errorAt(r.Offset(), ErrIEOutOfRange)
	}

	return errorAt(r.Offset(), ErrBufferTooShort)
}

// Peek returns the next octet without consuming it.
func (r *Reader) Peek() (uint8, bool) {
	if r.Len() < 1 {
		return 0, false
	}

	return r.buf[r.off], true
}

func (r *Reader) Uint8() (uint8, error) {
	if r.Len() < 1 {
		return 0, r.short()
	}

	v := r.buf[r.off]
	r.off++

	return v, nil
}

func (r *Reader) Uint16() (uint16, error) {
	if r.Len() < 2 {
		return 0, r.short()
	}

	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2

	return v, nil
}

// Nibbles reads one octet and splits it into its high and low half.
func (r *Reader) Nibbles() (hi, lo uint8, err error) {
	v, err := r.Uint8()
	if err != nil {
		return 0, 0, err
	}

	return Bits(v, 4, 4), Bits(v, 0, 4), nil
}

// Bytes returns a copy of the next n octets.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, r.short()
	}

	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+n])
	r.off += n

	return out, nil
}

// Rest returns a copy of every unread octet.
func (r *Reader) Rest() []byte {
	out, _ := r.Bytes(r.Len())
	return out
}

func (r *Reader) length(lenOctets int) (int, error) {
	switch lenOctets {
	case 1:
		v, err := r.Uint8()
		return int(v), err
	case 2:
		v, err := r.Uint16()
		return int(v), err
	default:
		panic("codec: length field must be 1 or 2 octets")
	}
}

// LengthPrefixed reads a length field of lenOctets octets followed by that many value octets.
func (r *Reader) LengthPrefixed(lenOctets int) ([]byte, error) {
	sub, err := r.SubPrefixed(lenOctets)
	if err != nil {
		return nil, err
	}

	return sub.Rest(), nil
}

// Sub consumes the next n octets and returns a bounded Reader over them.
func (r *Reader) Sub(n int) (*Reader, error) {
	if n < 0 || r.Len() < n {
		return nil, r.overrun()
	}

	sub := &Reader{
		buf:     r.buf[r.off : r.off+n],
		base:    r.Offset(),
		bounded: true,
	}
	r.off += n

	return sub, nil
}

// SubPrefixed reads a length field and returns a bounded Reader over the value it announces.
func (r *Reader) SubPrefixed(lenOctets int) (*Reader, error) {
	start := r.off

	n, err := r.length(lenOctets)
	if err != nil {
		return nil, err
	}

	sub, err := r.Sub(n)
	if err != nil {
		r.off = start
		return nil, err
	}

	return sub, nil
}

// Done reports an accounting error if a bounded region was not consumed completely.
func (r *Reader) Done() error {
	if r.Len() != 0 {
		return errorAt(r.Offset(), ErrMalformedIE)
	}

	return nil
}

// Bits extracts width bits of v starting at bit offset (0 is the least significant bit).
func Bits(v uint8, offset, width uint) uint8 {
	return (v >> offset) & (1<<width - 1)
}

// PutBits returns v with width bits at offset replaced by field.
func PutBits(v uint8, offset, width uint, field uint8) uint8 {
	mask := uint8(1<<width-1) << offset
	return v&^mask | (field<<offset)&mask
}

// Pack joins two half octets, hi in bits 5..8 and lo in bits 1..4.
func Pack(hi, lo uint8) uint8 {
	return PutBits(PutBits(0, 4, 4, hi), 0, 4, lo)
}
