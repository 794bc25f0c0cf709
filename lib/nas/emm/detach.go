package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// 8.2.11.1 Detach request (UE originating detach)
type DetachRequest struct {
	NASKeySetIdentifier uint8
	DetachType          uint8
	EPSMobileIdentity   []byte
}

func (*DetachRequest) MessageType() uint8 { return MsgTypeDetachRequest }

func (m *DetachRequest) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "NAS key set identifier and detach type", &m.NASKeySetIdentifier, &m.DetachType); err != nil {
		return err
	}

	return ie.LV(r, "EPS mobile identity", &m.EPSMobileIdentity)
}

func (m *DetachRequest) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "NAS key set identifier and detach type", m.NASKeySetIdentifier, m.DetachType); err != nil {
		return err
	}

	return ie.PutLV(w, "EPS mobile identity", m.EPSMobileIdentity)
}

// 8.2.10 Detach accept
type DetachAccept struct{}

func (*DetachAccept) MessageType() uint8 { return MsgTypeDetachAccept }

func (*DetachAccept) decode(*codec.Reader) error { return nil }

func (*DetachAccept) encode(*codec.Writer) error { return nil }
