// Package nas routes plain NAS messages to the EMM or 5GSM codec by protocol discriminator.
package nas

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/emm"
	"github.com/ellanetworks/nascodec/lib/nas/fgsm"
)

type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyEMM
	Family5GSM
)

func (f Family) String() string {
	switch f {
	case FamilyEMM:
		return "EMM"
	case Family5GSM:
		return "5GSM"
	default:
		return "unknown"
	}
}

// Message holds exactly one decoded message of either family.
type Message struct {
	EMM *emm.Message
	GSM *fgsm.Message
}

func (m *Message) Family() Family {
	switch {
	case m == nil:
		return FamilyUnknown
	case m.EMM != nil:
		return FamilyEMM
	case m.GSM != nil:
		return Family5GSM
	default:
		return FamilyUnknown
	}
}

func (m *Message) MessageType() uint8 {
	switch m.Family() {
	case FamilyEMM:
		return m.EMM.MessageType
	case Family5GSM:
		return m.GSM.MessageType
	default:
		return 0
	}
}

// Name returns the message name for logs.
func (m *Message) Name() string {
	return MessageName(m.Family(), m.MessageType())
}

func MessageName(f Family, t uint8) string {
	switch f {
	case FamilyEMM:
		return emm.MessageName(t)
	case Family5GSM:
		return fgsm.MessageName(t)
	default:
		return fmt.Sprintf("Unknown(0x%02x)", t)
	}
}

// DetectFamily inspects the first octet of b. The 5GSM extended protocol discriminator is a
// full octet; the EPS mobility management discriminator is the low nibble.
func DetectFamily(b []byte) (Family, error) {
	if len(b) == 0 {
		return FamilyUnknown, &codec.Error{Offset: 0, Err: codec.ErrBufferTooShort}
	}

	switch {
	case b[0] == fgsm.ExtendedProtocolDiscriminator:
		return Family5GSM, nil
	case b[0]&0x0f == emm.ProtocolDiscriminator:
		return FamilyEMM, nil
	default:
		return FamilyUnknown, &codec.Error{
			Offset: 0,
			Err:    fmt.Errorf("protocol discriminator 0x%02x: %w", b[0], codec.ErrProtocolNotSupported),
		}
	}
}

// Codec decodes and encodes NAS messages and reports each result to its sink.
// It holds no per-message state and is safe for concurrent use when the sink is.
type Codec struct {
	sink Sink
}

func New(sink Sink) *Codec {
	if sink == nil {
		sink = NopSink{}
	}

	return &Codec{sink: sink}
}

// Decode decodes one message from the start of b and returns it with the number of octets consumed.
func (c *Codec) Decode(b []byte) (*Message, int, error) {
	m, n, err := decode(b)

	ev := Event{Op: OpDecode, Err: err}
	if err != nil {
		ev.Family, _ = DetectFamily(b)
		ev.MessageType = peekMessageType(ev.Family, b)
		ev.Offset, _ = codec.OffsetOf(err)
	} else {
		ev.Family = m.Family()
		ev.MessageType = m.MessageType()
	}
	c.sink.Observe(ev)

	return m, n, err
}

func decode(b []byte) (*Message, int, error) {
	f, err := DetectFamily(b)
	if err != nil {
		return nil, 0, err
	}

	if f == Family5GSM {
		m, n, err := fgsm.Decode(b)
		if err != nil {
			return nil, n, err
		}
		return &Message{GSM: m}, n, nil
	}

	m, n, err := emm.Decode(b)
	if err != nil {
		return nil, n, err
	}

	return &Message{EMM: m}, n, nil
}

func peekMessageType(f Family, b []byte) uint8 {
	switch {
	case f == FamilyEMM && len(b) >= emm.HeaderLen:
		return b[emm.HeaderLen-1]
	case f == Family5GSM && len(b) >= fgsm.HeaderLen:
		return b[fgsm.HeaderLen-1]
	default:
		return 0
	}
}

// Size returns the encoded length of m.
func (c *Codec) Size(m *Message) (int, error) {
	switch m.Family() {
	case FamilyEMM:
		return emm.Size(m.EMM)
	case Family5GSM:
		return fgsm.Size(m.GSM)
	default:
		return 0, errNoBody
	}
}

// Encode encodes m into a newly allocated buffer of exactly the encoded size.
func (c *Codec) Encode(m *Message) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	switch m.Family() {
	case FamilyEMM:
		b, err = emm.Encode(m.EMM)
	case Family5GSM:
		b, err = fgsm.Encode(m.GSM)
	default:
		err = errNoBody
	}

	c.observeEncode(m, err)

	return b, err
}

// EncodeTo encodes m into b and returns the number of octets written. Nothing is written when b
// is too small.
func (c *Codec) EncodeTo(m *Message, b []byte) (int, error) {
	var (
		n   int
		err error
	)

	switch m.Family() {
	case FamilyEMM:
		n, err = emm.EncodeTo(m.EMM, b)
	case Family5GSM:
		n, err = fgsm.EncodeTo(m.GSM, b)
	default:
		err = errNoBody
	}

	c.observeEncode(m, err)

	return n, err
}

func (c *Codec) observeEncode(m *Message, err error) {
	ev := Event{
		Op:          OpEncode,
		Family:      m.Family(),
		MessageType: m.MessageType(),
		Err:         err,
	}
	ev.Offset, _ = codec.OffsetOf(err)

	c.sink.Observe(ev)
}

var errNoBody = fmt.Errorf("message carries neither an EMM nor a 5GSM message: %w", codec.ErrWrongMessageType)
