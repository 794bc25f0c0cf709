package fgsm

import (
	"fmt"
	"sort"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

type Body interface {
	MessageType() uint8
	decode(r *codec.Reader) error
	encode(w *codec.Writer) error
}

type Message struct {
	Header
	Body Body
}

// NewMessage wraps body in a 5GSM header for the given PDU session and procedure transaction.
func NewMessage(pduSessionID, pti uint8, body Body) *Message {
	return &Message{
		Header: Header{
			ExtendedProtocolDiscriminator: ExtendedProtocolDiscriminator,
			PDUSessionID:                  pduSessionID,
			PTI:                           pti,
			MessageType:                   body.MessageType(),
		},
		Body: body,
	}
}

var registry = map[uint8]func() Body{
	(*PDUSessionEstablishmentAccept)(nil).MessageType(): func() Body { return new(PDUSessionEstablishmentAccept) },
	(*PDUSessionEstablishmentReject)(nil).MessageType(): func() Body { return new(PDUSessionEstablishmentReject) },
	(*PDUSessionReleaseCommand)(nil).MessageType():      func() Body { return new(PDUSessionReleaseCommand) },
	(*Status)(nil).MessageType():                        func() Body { return new(Status) },
}

// MessageTypes returns the message types this package decodes and encodes, in ascending order.
func MessageTypes() []uint8 {
	types := make([]uint8, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Decode decodes one 5GSM message from the start of b and returns it with the number of octets
// consumed. For an unregistered message type the error wraps codec.ErrWrongMessageType and the
// consumed count is the header length.
func Decode(b []byte) (*Message, int, error) {
	r := codec.NewReader(b)

	h, err := decodeHeader(r)
	if err != nil {
		return nil, 0, err
	}

	newBody, ok := registry[h.MessageType]
	if !ok {
		return nil, r.Consumed(), &codec.Error{Offset: 3, Err: fmt.Errorf("%s: %w", MessageName(h.MessageType), codec.ErrWrongMessageType)}
	}

	body := newBody()
	if err := body.decode(r); err != nil {
		return nil, 0, fmt.Errorf("could not decode %s: %w", MessageName(h.MessageType), err)
	}

	return &Message{Header: h, Body: body}, r.Consumed(), nil
}

func (m *Message) encode(w *codec.Writer) error {
	if m == nil || m.Body == nil {
		return fmt.Errorf("message has no body: %w", codec.ErrWrongMessageType)
	}

	if _, ok := registry[m.MessageType]; !ok {
		return fmt.Errorf("%s: %w", MessageName(m.MessageType), codec.ErrWrongMessageType)
	}

	if m.Body.MessageType() != m.MessageType {
		return fmt.Errorf("header message type 0x%02x does not match %s body: %w",
			m.MessageType, MessageName(m.Body.MessageType()), codec.ErrWrongMessageType)
	}

	if err := encodeHeader(w, m.Header); err != nil {
		return err
	}

	if err := m.Body.encode(w); err != nil {
		return fmt.Errorf("could not encode %s: %w", MessageName(m.MessageType), err)
	}

	return nil
}

// Size returns the encoded length of m.
func Size(m *Message) (int, error) {
	return codec.Size(m.encode)
}

// Encode encodes m into a newly allocated buffer of exactly the right size.
func Encode(m *Message) ([]byte, error) {
	n, err := Size(m)
	if err != nil {
		return nil, err
	}

	b := make([]byte, n)
	if _, err := EncodeTo(m, b); err != nil {
		return nil, err
	}

	return b, nil
}

// EncodeTo encodes m into b and returns the number of octets written. Nothing is written when b
// is too small to hold the whole message.
func EncodeTo(m *Message, b []byte) (int, error) {
	n, err := Size(m)
	if err != nil {
		return 0, err
	}

	if len(b) < n {
		return 0, &codec.Error{Offset: len(b), Err: fmt.Errorf("need %d octets, have %d: %w", n, len(b), codec.ErrBufferTooShort)}
	}

	w := codec.NewWriter(b)
	if err := m.encode(w); err != nil {
		return 0, err
	}

	return w.Len(), nil
}
