package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderFixedWidth(t *testing.T) {
	r := NewReader([]byte{0x07, 0x42, 0x01, 0x02})

	v, err := r.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x07), v)

	w, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x4201), w)

	_, err = r.Uint16()
	require.ErrorIs(t, err, ErrBufferTooShort)
	require.Equal(t, 3, r.Consumed(), "failed read must not advance")

	off, ok := OffsetOf(err)
	require.True(t, ok)
	require.Equal(t, 3, off)
}

func TestReaderNibbles(t *testing.T) {
	r := NewReader([]byte{0x17})

	hi, lo, err := r.Nibbles()
	require.NoError(t, err)
	require.Equal(t, uint8(0x1), hi)
	require.Equal(t, uint8(0x7), lo)
}

func TestBits(t *testing.T) {
	pattern := []struct {
		in     uint8
		offset uint
		width  uint
		expect uint8
	}{
		{0xe5, 5, 3, 0x07},
		{0xe5, 4, 1, 0x00},
		{0x35, 0, 4, 0x05},
		{0x3f, 0, 6, 0x3f},
		{0xff, 0, 8, 0xff},
	}

	for _, p := range pattern {
		require.Equal(t, p.expect, Bits(p.in, p.offset, p.width), "pattern = %v", p)
	}

	require.Equal(t, uint8(0x35), PutBits(0x30, 0, 4, 0x05))
	require.Equal(t, uint8(0xf5), PutBits(0x05, 4, 4, 0xff))
	require.Equal(t, uint8(0x27), Pack(0x2, 0x7))
}

func TestLengthPrefixed(t *testing.T) {
	r := NewReader([]byte{0x00, 0x02, 0xaa, 0xbb, 0x03, 0x01})

	v, err := r.LengthPrefixed(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, v)

	_, err = r.LengthPrefixed(1)
	require.ErrorIs(t, err, ErrBufferTooShort)
	require.Equal(t, 4, r.Consumed(), "failed read must not advance")

	empty := NewReader([]byte{0x00})
	v, err = empty.LengthPrefixed(1)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Len(t, v, 0)
}

func TestSubReaderErrors(t *testing.T) {
	r := NewReader([]byte{0x03, 0x05, 0x01, 0x02})

	sub, err := r.SubPrefixed(1)
	require.NoError(t, err)
	require.Equal(t, 3, sub.Len())

	// A nested declared length running past the region.
	_, err = sub.LengthPrefixed(1)
	require.ErrorIs(t, err, ErrIEOutOfRange)

	// A fixed-width read running past the region.
	_, err = sub.Bytes(4)
	require.ErrorIs(t, err, ErrMalformedIE)

	_, err = sub.Bytes(3)
	require.NoError(t, err)
	require.NoError(t, sub.Done())
}

func TestWriterCapacity(t *testing.T) {
	buf := make([]byte, 3)
	w := NewWriter(buf)

	require.NoError(t, w.Uint16(0x0742))
	err := w.Uint16(0x0102)
	require.ErrorIs(t, err, ErrBufferTooShort)
	require.Equal(t, 2, w.Len())
	require.NoError(t, w.Uint8(0x01))
	require.Equal(t, []byte{0x07, 0x42, 0x01}, w.Bytes())
}

func TestWriterPrefixed(t *testing.T) {
	buf := make([]byte, 8)
	w := NewWriter(buf)

	err := w.Prefixed(2, func(w *Writer) error {
		if err := w.Uint8(0x01); err != nil {
			return err
		}
		return w.LengthPrefixed(1, []byte{0xaa, 0xbb})
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x04, 0x01, 0x02, 0xaa, 0xbb}, w.Bytes())

	small := NewWriter(make([]byte, 3))
	err = small.LengthPrefixed(1, []byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrBufferTooShort)
	require.Equal(t, 0, small.Len(), "nothing is written when the element does not fit")

	err = NewSizer().LengthPrefixed(1, make([]byte, 256))
	require.ErrorIs(t, err, ErrMalformedIE)
}

func TestKind(t *testing.T) {
	require.Equal(t, "none", Kind(nil))
	require.Equal(t, "too_many_rules", Kind(errorAt(3, ErrTooManyRules)))
	require.Equal(t, "unknown", Kind(errors.New("boom")))
}

func TestWriterNibblesRange(t *testing.T) {
	w := NewWriter(make([]byte, 2))
	require.NoError(t, w.Nibbles(0x0f, 0x01))

	err := w.Nibbles(0x10, 0x01)
	require.ErrorIs(t, err, ErrMalformedIE)
	off, ok := OffsetOf(err)
	require.True(t, ok)
	require.Equal(t, 1, off)

	require.ErrorIs(t, w.Nibbles(0x01, 0x12), ErrMalformedIE)
	require.Equal(t, []byte{0xf1}, w.Bytes())
}
