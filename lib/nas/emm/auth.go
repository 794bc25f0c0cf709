package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// RANDLen is the size of the authentication parameter RAND value.
const RANDLen = 16

// 8.2.7 Authentication request
type AuthenticationRequest struct {
	NASKeySetIdentifier uint8
	Spare               uint8
	RAND                []byte
	AUTN                []byte
}

func (*AuthenticationRequest) MessageType() uint8 { return MsgTypeAuthenticationRequest }

func (m *AuthenticationRequest) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "NAS key set identifier", &m.Spare, &m.NASKeySetIdentifier); err != nil {
		return err
	}
	if err := ie.Value(r, "authentication parameter RAND", RANDLen, &m.RAND); err != nil {
		return err
	}

	return ie.LV(r, "authentication parameter AUTN", &m.AUTN)
}

func (m *AuthenticationRequest) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "NAS key set identifier", m.Spare, m.NASKeySetIdentifier); err != nil {
		return err
	}
	if err := ie.PutValue(w, "authentication parameter RAND", RANDLen, m.RAND); err != nil {
		return err
	}

	return ie.PutLV(w, "authentication parameter AUTN", m.AUTN)
}

// 8.2.8 Authentication response
type AuthenticationResponse struct {
	RES []byte
}

func (*AuthenticationResponse) MessageType() uint8 { return MsgTypeAuthenticationResponse }

func (m *AuthenticationResponse) decode(r *codec.Reader) error {
	return ie.LV(r, "authentication response parameter", &m.RES)
}

func (m *AuthenticationResponse) encode(w *codec.Writer) error {
	return ie.PutLV(w, "authentication response parameter", m.RES)
}

// 8.2.6 Authentication reject
type AuthenticationReject struct{}

func (*AuthenticationReject) MessageType() uint8 { return MsgTypeAuthenticationReject }

func (*AuthenticationReject) decode(*codec.Reader) error { return nil }

func (*AuthenticationReject) encode(*codec.Writer) error { return nil }

// 8.2.5 Authentication failure
type AuthenticationFailure struct {
	EMMCause                       uint8
	AuthenticationFailureParameter []byte
}

func (*AuthenticationFailure) MessageType() uint8 { return MsgTypeAuthenticationFailure }

func (m *AuthenticationFailure) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("authentication failure parameter", 0x30, ie.FormatTLV, &m.AuthenticationFailureParameter),
	}
}

func (m *AuthenticationFailure) decode(r *codec.Reader) error {
	if err := ie.V(r, "EMM cause", &m.EMMCause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *AuthenticationFailure) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "EMM cause", m.EMMCause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.18 Identity request
type IdentityRequest struct {
	IdentityType uint8
	Spare        uint8
}

func (*IdentityRequest) MessageType() uint8 { return MsgTypeIdentityRequest }

func (m *IdentityRequest) decode(r *codec.Reader) error {
	return ie.HalfOctets(r, "identity type", &m.Spare, &m.IdentityType)
}

func (m *IdentityRequest) encode(w *codec.Writer) error {
	return ie.PutHalfOctets(w, "identity type", m.Spare, m.IdentityType)
}

// 8.2.19 Identity response
type IdentityResponse struct {
	MobileIdentity []byte
}

func (*IdentityResponse) MessageType() uint8 { return MsgTypeIdentityResponse }

func (m *IdentityResponse) decode(r *codec.Reader) error {
	return ie.LV(r, "mobile identity", &m.MobileIdentity)
}

func (m *IdentityResponse) encode(w *codec.Writer) error {
	return ie.PutLV(w, "mobile identity", m.MobileIdentity)
}
