// Package fgsm implements the 5GS Session Management message codec.
// document version: 3GPP TS 24.501
package fgsm

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/free5gc/nas/nasMessage"
)

// ExtendedProtocolDiscriminator identifies 5GS session management messages (TS 24.007 11.2.3.1A).
const ExtendedProtocolDiscriminator uint8 = nasMessage.Epd5GSSessionManagementMessage

// HeaderLen is the size of a 5GSM message header.
const HeaderLen = 4

// 9.1.1 5GSM message header
type Header struct {
	ExtendedProtocolDiscriminator uint8
	PDUSessionID                  uint8
	PTI                           uint8
	MessageType                   uint8
}

func (h Header) validate() error {
	if h.ExtendedProtocolDiscriminator != ExtendedProtocolDiscriminator {
		return fmt.Errorf("unexpected extended protocol discriminator 0x%x: %w", h.ExtendedProtocolDiscriminator, codec.ErrProtocolNotSupported)
	}

	return nil
}

// DecodeHeader decodes the extended protocol discriminator, PDU session ID, PTI and message type.
func DecodeHeader(b []byte) (Header, int, error) {
	r := codec.NewReader(b)

	h, err := decodeHeader(r)
	if err != nil {
		return h, 0, err
	}

	return h, r.Consumed(), nil
}

func decodeHeader(r *codec.Reader) (Header, error) {
	var h Header

	if r.Len() < HeaderLen {
		return h, &codec.Error{Offset: r.Offset(), Err: codec.ErrBufferTooShort}
	}

	fields := []*uint8{&h.ExtendedProtocolDiscriminator, &h.PDUSessionID, &h.PTI, &h.MessageType}
	for _, f := range fields {
		v, err := r.Uint8()
		if err != nil {
			return h, err
		}
		*f = v
	}

	return h, h.validate()
}

// EncodeHeader writes h into b and returns the number of octets written.
func EncodeHeader(h Header, b []byte) (int, error) {
	w := codec.NewWriter(b)
	if err := encodeHeader(w, h); err != nil {
		return 0, err
	}

	return w.Len(), nil
}

func encodeHeader(w *codec.Writer, h Header) error {
	if err := h.validate(); err != nil {
		return err
	}

	for _, v := range []uint8{h.ExtendedProtocolDiscriminator, h.PDUSessionID, h.PTI, h.MessageType} {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}

	return nil
}
