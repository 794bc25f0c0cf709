package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// 8.2.20 Security mode command
type SecurityModeCommand struct {
	SelectedNASSecurityAlgorithms          uint8
	NASKeySetIdentifier                    uint8
	Spare                                  uint8
	ReplayedUESecurityCapabilities         []byte
	IMEISVRequest                          *uint8
	ReplayedNonceUE                        []byte
	NonceMME                               []byte
	HashMME                                []byte
	ReplayedUEAdditionalSecurityCapability []byte
}

func (*SecurityModeCommand) MessageType() uint8 { return MsgTypeSecurityModeCommand }

func (m *SecurityModeCommand) optionals() []ie.Optional {
	return []ie.Optional{
		ie.HalfOctet("IMEISV request", 0xc0, &m.IMEISVRequest),
		ie.Fixed("replayed nonceUE", 0x55, 4, &m.ReplayedNonceUE),
		ie.Fixed("NonceMME", 0x56, 4, &m.NonceMME),
		ie.Octets("HashMME", 0x4f, ie.FormatTLV, &m.HashMME),
		ie.Octets("replayed UE additional security capability", 0x6f, ie.FormatTLV, &m.ReplayedUEAdditionalSecurityCapability),
	}
}

func (m *SecurityModeCommand) decode(r *codec.Reader) error {
	if err := ie.V(r, "selected NAS security algorithms", &m.SelectedNASSecurityAlgorithms); err != nil {
		return err
	}
	if err := ie.HalfOctets(r, "NAS key set identifier", &m.Spare, &m.NASKeySetIdentifier); err != nil {
		return err
	}
	if err := ie.LV(r, "replayed UE security capabilities", &m.ReplayedUESecurityCapabilities); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *SecurityModeCommand) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "selected NAS security algorithms", m.SelectedNASSecurityAlgorithms); err != nil {
		return err
	}
	if err := ie.PutHalfOctets(w, "NAS key set identifier", m.Spare, m.NASKeySetIdentifier); err != nil {
		return err
	}
	if err := ie.PutLV(w, "replayed UE security capabilities", m.ReplayedUESecurityCapabilities); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.21 Security mode complete
type SecurityModeComplete struct {
	IMEISV                      []byte
	ReplayedNASMessageContainer []byte
}

func (*SecurityModeComplete) MessageType() uint8 { return MsgTypeSecurityModeComplete }

func (m *SecurityModeComplete) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("IMEISV", 0x23, ie.FormatTLV, &m.IMEISV),
		ie.Octets("replayed NAS message container", 0x79, ie.FormatTLVE, &m.ReplayedNASMessageContainer),
	}
}

func (m *SecurityModeComplete) decode(r *codec.Reader) error {
	return ie.DecodeOptionals(r, m.optionals())
}

func (m *SecurityModeComplete) encode(w *codec.Writer) error {
	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.22 Security mode reject
type SecurityModeReject struct {
	EMMCause uint8
}

func (*SecurityModeReject) MessageType() uint8 { return MsgTypeSecurityModeReject }

func (m *SecurityModeReject) decode(r *codec.Reader) error {
	return ie.V(r, "EMM cause", &m.EMMCause)
}

func (m *SecurityModeReject) encode(w *codec.Writer) error {
	return ie.PutV(w, "EMM cause", m.EMMCause)
}
