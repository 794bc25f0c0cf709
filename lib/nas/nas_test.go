package nas

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/emm"
	"github.com/ellanetworks/nascodec/lib/nas/fgsm"
	"github.com/stretchr/testify/require"
)

const (
	attachAcceptHex = "0742" + "01" + "5c" + "06" + "0002f8390001" + "0003" + "aabbcc"
	gsmStatusHex    = "2e0100d6" + "1b"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Observe(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) last(t *testing.T) Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func TestDetectFamily(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want Family
		err  error
	}{
		{"emm plain", []byte{0x07, 0x42}, FamilyEMM, nil},
		{"emm protected", []byte{0x17, 0x42}, FamilyEMM, nil},
		{"5gsm", []byte{0x2e, 0x01}, Family5GSM, nil},
		{"5gmm", []byte{0x7e, 0x00}, FamilyUnknown, codec.ErrProtocolNotSupported},
		{"esm", []byte{0x02, 0xc1}, FamilyUnknown, codec.ErrProtocolNotSupported},
		{"empty", nil, FamilyUnknown, codec.ErrBufferTooShort},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := DetectFamily(tc.in)
			require.Equal(t, tc.want, f)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCodecDecodeRoutes(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	m, n, err := c.Decode(mustHex(t, attachAcceptHex))
	require.NoError(t, err)
	require.Equal(t, len(attachAcceptHex)/2, n)
	require.Equal(t, FamilyEMM, m.Family())
	require.IsType(t, &emm.AttachAccept{}, m.EMM.Body)
	require.Equal(t, "AttachAccept", m.Name())
	require.Equal(t, Event{Op: OpDecode, Family: FamilyEMM, MessageType: emm.MsgTypeAttachAccept}, rec.last(t))

	m, n, err = c.Decode(mustHex(t, gsmStatusHex))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, Family5GSM, m.Family())
	require.Equal(t, &fgsm.Status{Cause: 0x1b}, m.GSM.Body)
	require.Equal(t, uint8(0xd6), m.MessageType())
	require.Len(t, rec.events, 2)
}

func TestCodecDecodeFailures(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		err    error
		family Family
		mt     uint8
		offset int
	}{
		{"protected emm", "17" + attachAcceptHex[2:], codec.ErrProtocolNotSupported, FamilyEMM, 0x42, 0},
		{"unsupported discriminator", "7e0041", codec.ErrProtocolNotSupported, FamilyUnknown, 0, 0},
		{"unknown emm type", "07ff", codec.ErrWrongMessageType, FamilyEMM, 0xff, 1},
		{"truncated 5gsm header", "2e01", codec.ErrBufferTooShort, Family5GSM, 0, 0},
		{"missing 5gsm cause", "2e0100d6", codec.ErrBufferTooShort, Family5GSM, 0xd6, 4},
		{"empty", "", codec.ErrBufferTooShort, FamilyUnknown, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}

			m, _, err := New(rec).Decode(mustHex(t, tc.in))
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, m)

			ev := rec.last(t)
			require.Equal(t, OpDecode, ev.Op)
			require.Equal(t, tc.family, ev.Family)
			require.Equal(t, tc.mt, ev.MessageType)
			require.Equal(t, tc.offset, ev.Offset)
			require.ErrorIs(t, ev.Err, tc.err)
		})
	}
}

func TestCodecEncode(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	in := mustHex(t, gsmStatusHex)
	m, n, err := c.Decode(in)
	require.NoError(t, err)

	size, err := c.Size(m)
	require.NoError(t, err)
	require.Equal(t, n, size)

	out, err := c.Encode(m)
	require.NoError(t, err)
	require.Equal(t, in[:n], out)
	require.Equal(t, Event{Op: OpEncode, Family: Family5GSM, MessageType: 0xd6}, rec.last(t))

	buf := make([]byte, 3)
	_, err = c.EncodeTo(m, buf)
	require.ErrorIs(t, err, codec.ErrBufferTooShort)
	require.Equal(t, []byte{0, 0, 0}, buf)
	require.ErrorIs(t, rec.last(t).Err, codec.ErrBufferTooShort)

	em := &Message{EMM: emm.NewMessage(&emm.EMMStatus{EMMCause: 0x6f})}
	buf = make([]byte, 8)
	n, err = c.EncodeTo(em, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x07, 0x60, 0x6f}, buf[:n])
}

func TestCodecEncodeEmptyMessage(t *testing.T) {
	rec := &recorder{}

	_, err := New(rec).Encode(&Message{})
	require.ErrorIs(t, err, codec.ErrWrongMessageType)
	require.Equal(t, FamilyUnknown, rec.last(t).Family)

	_, err = New(nil).Size(&Message{})
	require.ErrorIs(t, err, codec.ErrWrongMessageType)
}

func TestMultiSink(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	var calls int

	New(MultiSink{a, b, SinkFunc(func(Event) { calls++ })}).Decode(nil)

	require.Len(t, a.events, 1)
	require.Equal(t, a.events, b.events)
	require.Equal(t, 1, calls)
}

func TestMessageName(t *testing.T) {
	require.Equal(t, "AttachAccept", MessageName(FamilyEMM, emm.MsgTypeAttachAccept))
	require.Equal(t, "Unknown(0x00)", MessageName(FamilyUnknown, 0))
	require.Equal(t, "5GSM", Family5GSM.String())
	require.Equal(t, "decode", OpDecode.String())
}
