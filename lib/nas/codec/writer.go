package codec

import (
	"encoding/binary"
	"fmt"
)

// Writer appends fields to a caller-provided buffer, checking the remaining capacity before
// every write. A Writer created with NewSizer has no buffer and only counts octets, which is
// how encoders learn lengths before anything is written.
type Writer struct {
	buf    []byte
	off    int
	sizing bool
}

func NewWriter(b []byte) *Writer {
	return &Writer{buf: b}
}

func NewSizer() *Writer {
	return &Writer{sizing: true}
}

// Len returns the number of octets written (or counted) so far.
func (w *Writer) Len() int {
	return w.off
}

// Bytes returns the written part of the buffer.
func (w *Writer) Bytes() []byte {
	if w.sizing {
		return nil
	}

	return w.buf[:w.off]
}

func (w *Writer) reserve(n int) error {
	if w.sizing {
		return nil
	}

	if len(w.buf)-w.off < n {
		return errorAt(w.off, ErrBufferTooShort)
	}

	return nil
}

func (w *Writer) Uint8(v uint8) error {
	if err := w.reserve(1); err != nil {
		return err
	}

	if !w.sizing {
		w.buf[w.off] = v
	}
	w.off++

	return nil
}

func (w *Writer) Uint16(v uint16) error {
	if err := w.reserve(2); err != nil {
		return err
	}

	if !w.sizing {
		binary.BigEndian.PutUint16(w.buf[w.off:], v)
	}
	w.off += 2

	return nil
}

// Nibbles writes hi into bits 5..8 and lo into bits 1..4 of one octet. Values that do not fit
// in four bits are rejected.
func (w *Writer) Nibbles(hi, lo uint8) error {
	if hi > 0x0f || lo > 0x0f {
		return errorAt(w.off, fmt.Errorf("half octets 0x%x, 0x%x out of range: %w", hi, lo, ErrMalformedIE))
	}

	return w.Uint8(Pack(hi, lo))
}

func (w *Writer) Write(b []byte) error {
	if err := w.reserve(len(b)); err != nil {
		return err
	}

	if !w.sizing {
		copy(w.buf[w.off:], b)
	}
	w.off += len(b)

	return nil
}

func (w *Writer) length(lenOctets, n int) error {
	switch lenOctets {
	case 1:
		if n > 0xff {
			return errorAt(w.off, ErrMalformedIE)
		}
		return w.Uint8(uint8(n))
	case 2:
		if n > 0xffff {
			return errorAt(w.off, ErrMalformedIE)
		}
		return w.Uint16(uint16(n))
	default:
		panic("codec: length field must be 1 or 2 octets")
	}
}

// LengthPrefixed writes len(b) in lenOctets octets followed by b.
func (w *Writer) LengthPrefixed(lenOctets int, b []byte) error {
	return w.Prefixed(lenOctets, func(w *Writer) error {
		return w.Write(b)
	})
}

// Prefixed writes the value produced by fn behind a length field of lenOctets octets. The value
// is sized first, so the length is known before the first octet of the element is written.
func (w *Writer) Prefixed(lenOctets int, fn func(w *Writer) error) error {
	n, err := Size(fn)
	if err != nil {
		return err
	}

	if err := w.reserve(lenOctets + n); err != nil {
		return err
	}

	if err := w.length(lenOctets, n); err != nil {
		return err
	}

	return fn(w)
}

// Size runs fn against a sizing Writer and returns the number of octets it would produce.
func Size(fn func(w *Writer) error) (int, error) {
	s := NewSizer()
	if err := fn(s); err != nil {
		return 0, err
	}

	return s.Len(), nil
}
