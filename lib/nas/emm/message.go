package emm

import (
	"fmt"
	"sort"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// Body is the message-specific part of an EMM message. Every message kind of the family has
// exactly one Body implementation.
type Body interface {
	MessageType() uint8
	decode(r *codec.Reader) error
	encode(w *codec.Writer) error
}

type Message struct {
	Header
	Body Body
}

// NewMessage wraps body in a plain EMM header carrying the body's message type.
func NewMessage(body Body) *Message {
	return &Message{
		Header: Header{
			SecurityHeaderType:    SecurityHeaderTypePlain,
			ProtocolDiscriminator: ProtocolDiscriminator,
			MessageType:           body.MessageType(),
		},
		Body: body,
	}
}

type handler struct {
	name string
	new  func() Body
}

var registry = map[uint8]handler{}

func register[T any, B interface {
	*T
	Body
}](name string) {
	var zero T
	t := B(&zero).MessageType()
	if _, ok := registry[t]; ok {
		panic(fmt.Sprintf("emm: message type 0x%02x registered twice", t))
	}
	registry[t] = handler{
		name: name,
		new:  func() Body { return B(new(T)) },
	}
}

func init() {
	register[AttachRequest]("AttachRequest")
	register[AttachAccept]("AttachAccept")
	register[AttachComplete]("AttachComplete")
	register[AttachReject]("AttachReject")
	register[DetachRequest]("DetachRequest")
	register[DetachAccept]("DetachAccept")
	register[TrackingAreaUpdateRequest]("TrackingAreaUpdateRequest")
	register[TrackingAreaUpdateAccept]("TrackingAreaUpdateAccept")
	register[TrackingAreaUpdateComplete]("TrackingAreaUpdateComplete")
	register[TrackingAreaUpdateReject]("TrackingAreaUpdateReject")
	register[ExtendedServiceRequest]("ExtendedServiceRequest")
	register[ServiceRequest]("ServiceRequest")
	register[ServiceReject]("ServiceReject")
	register[GUTIReallocationCommand]("GUTIReallocationCommand")
	register[GUTIReallocationComplete]("GUTIReallocationComplete")
	register[AuthenticationRequest]("AuthenticationRequest")
	register[AuthenticationResponse]("AuthenticationResponse")
	register[AuthenticationReject]("AuthenticationReject")
	register[AuthenticationFailure]("AuthenticationFailure")
	register[IdentityRequest]("IdentityRequest")
	register[IdentityResponse]("IdentityResponse")
	register[SecurityModeCommand]("SecurityModeCommand")
	register[SecurityModeComplete]("SecurityModeComplete")
	register[SecurityModeReject]("SecurityModeReject")
	register[EMMStatus]("EMMStatus")
	register[EMMInformation]("EMMInformation")
	register[DownlinkNASTransport]("DownlinkNASTransport")
	register[UplinkNASTransport]("UplinkNASTransport")
	register[CSServiceNotification]("CSServiceNotification")
}

// MessageName returns the name of a registered message type, or a hex placeholder.
func MessageName(t uint8) string {
	if h, ok := registry[t]; ok {
		return h.name
	}

	return fmt.Sprintf("Unknown(0x%02x)", t)
}

// MessageTypes returns every registered message type in ascending order.
func MessageTypes() []uint8 {
	types := make([]uint8, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Decode decodes one plain EMM message from the start of b and returns it with the number of
// octets consumed. Octets after the last recognised optional IE are not consumed.
//
// For an unregistered message type the error wraps codec.ErrWrongMessageType and the consumed
// count is the header length; the body is not looked at.
func Decode(b []byte) (*Message, int, error) {
	r := codec.NewReader(b)

	h, err := decodeHeader(r)
	if err != nil {
		return nil, 0, err
	}

	hd, ok := registry[h.MessageType]
	if !ok {
		return nil, r.Consumed(), &codec.Error{Offset: 1, Err: fmt.Errorf("message type 0x%02x: %w", h.MessageType, codec.ErrWrongMessageType)}
	}

	body := hd.new()
	if err := body.decode(r); err != nil {
		return nil, 0, fmt.Errorf("could not decode %s: %w", hd.name, err)
	}

	return &Message{Header: h, Body: body}, r.Consumed(), nil
}

func (m *Message) check() (handler, error) {
	if m == nil || m.Body == nil {
		return handler{}, fmt.Errorf("message has no body: %w", codec.ErrWrongMessageType)
	}

	hd, ok := registry[m.MessageType]
	if !ok {
		return handler{}, fmt.Errorf("message type 0x%02x: %w", m.MessageType, codec.ErrWrongMessageType)
	}

	if m.Body.MessageType() != m.MessageType {
		return handler{}, fmt.Errorf("header message type 0x%02x does not match %s body: %w",
			m.MessageType, MessageName(m.Body.MessageType()), codec.ErrWrongMessageType)
	}

	return hd, nil
}

func (m *Message) encode(w *codec.Writer) error {
	hd, err := m.check()
	if err != nil {
		return err
	}

	if err := encodeHeader(w, m.Header); err != nil {
		return err
	}

	if err := m.Body.encode(w); err != nil {
		return fmt.Errorf("could not encode %s: %w", hd.name, err)
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
