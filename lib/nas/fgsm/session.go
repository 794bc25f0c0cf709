package fgsm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
	"github.com/free5gc/nas"
	"github.com/free5gc/nas/nasMessage"
)

// Information element identifiers that nasMessage does not define.
const (
	reattemptIndicatorIEI uint8 = 0x1d
	accessTypeIEI         uint8 = 0xd0
)

// 8.3.3 PDU session establishment reject
type PDUSessionEstablishmentReject struct {
	Cause                                uint8
	BackOffTimerValue                    []byte
	AllowedSSCMode                       *uint8
	EAPMessage                           []byte
	CongestionReattemptIndicator         []byte
	ExtendedProtocolConfigurationOptions []byte
	ReattemptIndicator                   []byte
}

func (*PDUSessionEstablishmentReject) MessageType() uint8 {
	return nas.MsgTypePDUSessionEstablishmentReject
}

func (m *PDUSessionEstablishmentReject) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("back-off timer value", nasMessage.PDUSessionEstablishmentRejectBackoffTimerValueType, ie.FormatTLV, &m.BackOffTimerValue),
		ie.HalfOctet("allowed SSC mode", nasMessage.PDUSessionEstablishmentRejectAllowedSSCModeType<<4, &m.AllowedSSCMode),
		ie.Octets("EAP message", nasMessage.PDUSessionEstablishmentRejectEAPMessageType, ie.FormatTLVE, &m.EAPMessage),
		ie.Octets("5GSM congestion re-attempt indicator", nasMessage.PDUSessionEstablishmentRejectCongestionReattemptIndicator5GSMType, ie.FormatTLV, &m.CongestionReattemptIndicator),
		ie.Octets("extended protocol configuration options", nasMessage.PDUSessionEstablishmentRejectExtendedProtocolConfigurationOptionsType, ie.FormatTLVE, &m.ExtendedProtocolConfigurationOptions),
		ie.Octets("re-attempt indicator", reattemptIndicatorIEI, ie.FormatTLV, &m.ReattemptIndicator),
	}
}

func (m *PDUSessionEstablishmentReject) decode(r *codec.Reader) error {
	if err := ie.V(r, "5GSM cause", &m.Cause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *PDUSessionEstablishmentReject) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "5GSM cause", m.Cause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.3.14 PDU session release command
type PDUSessionReleaseCommand struct {
	Cause                                uint8
	BackOffTimerValue                    []byte
	EAPMessage                           []byte
	CongestionReattemptIndicator         []byte
	ExtendedProtocolConfigurationOptions []byte
	AccessType                           *uint8
}

func (*PDUSessionReleaseCommand) MessageType() uint8 {
	return nas.MsgTypePDUSessionReleaseCommand
}

func (m *PDUSessionReleaseCommand) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("back-off timer value", nasMessage.PDUSessionReleaseCommandBackoffTimerValueType, ie.FormatTLV, &m.BackOffTimerValue),
		ie.Octets("EAP message", nasMessage.PDUSessionReleaseCommandEAPMessageType, ie.FormatTLVE, &m.EAPMessage),
		ie.Octets("5GSM congestion re-attempt indicator", nasMessage.PDUSessionReleaseCommandCongestionReattemptIndicator5GSMType, ie.FormatTLV, &m.CongestionReattemptIndicator),
		ie.Octets("extended protocol configuration options", nasMessage.PDUSessionReleaseCommandExtendedProtocolConfigurationOptionsType, ie.FormatTLVE, &m.ExtendedProtocolConfigurationOptions),
		ie.HalfOctet("access type", accessTypeIEI, &m.AccessType),
	}
}

func (m *PDUSessionReleaseCommand) decode(r *codec.Reader) error {
	if err := ie.V(r, "5GSM cause", &m.Cause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *PDUSessionReleaseCommand) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "5GSM cause", m.Cause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.3.16 5GSM status
type Status struct {
	Cause uint8
}

func (*Status) MessageType() uint8 {
	return nas.MsgTypeStatus5GSM
}

func (m *Status) decode(r *codec.Reader) error {
	return ie.V(r, "5GSM cause", &m.Cause)
}

func (m *Status) encode(w *codec.Writer) error {
	return ie.PutV(w, "5GSM cause", m.Cause)
}
