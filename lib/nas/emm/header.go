// Package emm implements the EPS Mobility Management message codec.
// document version: 3GPP TS 24.301
package emm

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

// TS 24.007 11.2.3.1.1 Protocol discriminator
const ProtocolDiscriminator uint8 = 0x07

// 9.3.1 Security header type
const (
	SecurityHeaderTypePlain                         uint8 = 0x0
	SecurityHeaderTypeIntegrityProtected            uint8 = 0x1
	SecurityHeaderTypeIntegrityProtectedAndCiphered uint8 = 0x2
)

// HeaderLen is the size of a plain EMM message header.
const HeaderLen = 2

// 9.1 Plain EMM message header
type Header struct {
	SecurityHeaderType    uint8
	ProtocolDiscriminator uint8
	MessageType           uint8
}

// validate runs on both paths: before encoding an in-memory header and after decoding one.
// Only plain NAS messages reach this codec; protected ones are unwrapped by the security layer.
func (h Header) validate() error {
	if h.ProtocolDiscriminator != ProtocolDiscriminator {
		return fmt.Errorf("unexpected protocol discriminator 0x%x: %w", h.ProtocolDiscriminator, codec.ErrProtocolNotSupported)
	}

	if h.SecurityHeaderType != SecurityHeaderTypePlain {
		return fmt.Errorf("unexpected security header type 0x%x: %w", h.SecurityHeaderType, codec.ErrProtocolNotSupported)
	}

	return nil
}

// DecodeHeader decodes the security header type, protocol discriminator and message type.
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

	sht, pd, err := r.Nibbles()
	if err != nil {
		return h, err
	}

	mt, err := r.Uint8()
	if err != nil {
		return h, err
	}

	h = Header{
		SecurityHeaderType:    sht,
		ProtocolDiscriminator: pd,
		MessageType:           mt,
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

	if err := w.Nibbles(h.SecurityHeaderType, h.ProtocolDiscriminator); err != nil {
		return err
	}

	return w.Uint8(h.MessageType)
}
