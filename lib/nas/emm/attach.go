package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// 8.2.4 Attach request
type AttachRequest struct {
	NASKeySetIdentifier      uint8
	EPSAttachType            uint8
	EPSMobileIdentity        []byte
	UENetworkCapability      []byte
	ESMMessageContainer      []byte
	OldPTMSISignature        []byte
	AdditionalGUTI           []byte
	LastVisitedRegisteredTAI []byte
	DRXParameter             []byte
	MSNetworkCapability      []byte
	OldLocationAreaIdentity  []byte
	TMSIStatus               *uint8
	MobileStationClassmark2  []byte
	MobileStationClassmark3  []byte
	SupportedCodecs          []byte
	AdditionalUpdateType     *uint8
	VoiceDomainPreference    []byte
	DeviceProperties         *uint8
	OldGUTIType              *uint8
	MSNetworkFeatureSupport  *uint8
	TMSIBasedNRIContainer    []byte
	T3324Value               []byte
	T3412ExtendedValue       []byte
	ExtendedDRXParameters    []byte
}

func (*AttachRequest) MessageType() uint8 { return MsgTypeAttachRequest }

func (m *AttachRequest) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Fixed("old P-TMSI signature", 0x19, 3, &m.OldPTMSISignature),
		ie.Octets("additional GUTI", 0x50, ie.FormatTLV, &m.AdditionalGUTI),
		ie.Fixed("last visited registered TAI", 0x52, 5, &m.LastVisitedRegisteredTAI),
		ie.Fixed("DRX parameter", 0x5c, 2, &m.DRXParameter),
		ie.Octets("MS network capability", 0x31, ie.FormatTLV, &m.MSNetworkCapability),
		ie.Fixed("old location area identification", 0x13, 5, &m.OldLocationAreaIdentity),
		ie.HalfOctet("TMSI status", 0x90, &m.TMSIStatus),
		ie.Octets("mobile station classmark 2", 0x11, ie.FormatTLV, &m.MobileStationClassmark2),
		ie.Octets("mobile station classmark 3", 0x20, ie.FormatTLV, &m.MobileStationClassmark3),
		ie.Octets("supported codecs", 0x40, ie.FormatTLV, &m.SupportedCodecs),
		ie.HalfOctet("additional update type", 0xf0, &m.AdditionalUpdateType),
		ie.Octets("voice domain preference", 0x5d, ie.FormatTLV, &m.VoiceDomainPreference),
		ie.HalfOctet("device properties", 0xd0, &m.DeviceProperties),
		ie.HalfOctet("old GUTI type", 0xe0, &m.OldGUTIType),
		ie.HalfOctet("MS network feature support", 0xc0, &m.MSNetworkFeatureSupport),
		ie.Octets("TMSI based NRI container", 0x10, ie.FormatTLV, &m.TMSIBasedNRIContainer),
		ie.Octets("T3324 value", 0x6a, ie.FormatTLV, &m.T3324Value),
		ie.Octets("T3412 extended value", 0x5e, ie.FormatTLV, &m.T3412ExtendedValue),
		ie.Octets("extended DRX parameters", 0x6e, ie.FormatTLV, &m.ExtendedDRXParameters),
	}
}

func (m *AttachRequest) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "NAS key set identifier and EPS attach type", &m.NASKeySetIdentifier, &m.EPSAttachType); err != nil {
		return err
	}
	if err := ie.LV(r, "EPS mobile identity", &m.EPSMobileIdentity); err != nil {
		return err
	}
	if err := ie.LV(r, "UE network capability", &m.UENetworkCapability); err != nil {
		return err
	}
	if err := ie.LVE(r, "ESM message container", &m.ESMMessageContainer); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *AttachRequest) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "NAS key set identifier and EPS attach type", m.NASKeySetIdentifier, m.EPSAttachType); err != nil {
		return err
	}
	if err := ie.PutLV(w, "EPS mobile identity", m.EPSMobileIdentity); err != nil {
		return err
	}
	if err := ie.PutLV(w, "UE network capability", m.UENetworkCapability); err != nil {
		return err
	}
	if err := ie.PutLVE(w, "ESM message container", m.ESMMessageContainer); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.1 Attach accept
type AttachAccept struct {
	EPSAttachResult          uint8
	Spare                    uint8
	T3412Value               uint8
	TAIList                  []byte
	ESMMessageContainer      []byte
	GUTI                     []byte
	LocationAreaIdentity     []byte
	MSIdentity               []byte
	EMMCause                 *uint8
	T3402Value               *uint8
	T3423Value               *uint8
	EquivalentPLMNs          []byte
	EmergencyNumberList      []byte
	EPSNetworkFeatureSupport []byte
	AdditionalUpdateResult   *uint8
	T3412ExtendedValue       []byte
}

func (*AttachAccept) MessageType() uint8 { return MsgTypeAttachAccept }

func (m *AttachAccept) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("GUTI", 0x50, ie.FormatTLV, &m.GUTI),
		ie.Fixed("location area identification", 0x13, 5, &m.LocationAreaIdentity),
		ie.Octets("MS identity", 0x23, ie.FormatTLV, &m.MSIdentity),
		ie.Octet("EMM cause", 0x53, &m.EMMCause),
		ie.Octet("T3402 value", 0x17, &m.T3402Value),
		ie.Octet("T3423 value", 0x59, &m.T3423Value),
		ie.Octets("equivalent PLMNs", 0x4a, ie.FormatTLV, &m.EquivalentPLMNs),
		ie.Octets("emergency number list", 0x34, ie.FormatTLV, &m.EmergencyNumberList),
		ie.Octets("EPS network feature support", 0x64, ie.FormatTLV, &m.EPSNetworkFeatureSupport),
		ie.HalfOctet("additional update result", 0xf0, &m.AdditionalUpdateResult),
		ie.Octets("T3412 extended value", 0x5e, ie.FormatTLV, &m.T3412ExtendedValue),
	}
}

func (m *AttachAccept) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "EPS attach result", &m.Spare, &m.EPSAttachResult); err != nil {
		return err
	}
	if err := ie.V(r, "T3412 value", &m.T3412Value); err != nil {
		return err
	}
	if err := ie.LV(r, "TAI list", &m.TAIList); err != nil {
		return err
	}
	if err := ie.LVE(r, "ESM message container", &m.ESMMessageContainer); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *AttachAccept) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "EPS attach result", m.Spare, m.EPSAttachResult); err != nil {
		return err
	}
	if err := ie.PutV(w, "T3412 value", m.T3412Value); err != nil {
		return err
	}
	if err := ie.PutLV(w, "TAI list", m.TAIList); err != nil {
		return err
	}
	if err := ie.PutLVE(w, "ESM message container", m.ESMMessageContainer); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.2 Attach complete
type AttachComplete struct {
	ESMMessageContainer []byte
}

func (*AttachComplete) MessageType() uint8 { return MsgTypeAttachComplete }

func (m *AttachComplete) decode(r *codec.Reader) error {
	return ie.LVE(r, "ESM message container", &m.ESMMessageContainer)
}

func (m *AttachComplete) encode(w *codec.Writer) error {
	return ie.PutLVE(w, "ESM message container", m.ESMMessageContainer)
}

// 8.2.3 Attach reject
type AttachReject struct {
	EMMCause            uint8
	ESMMessageContainer []byte
	T3346Value          []byte
	T3402Value          []byte
	ExtendedEMMCause    *uint8
}

func (*AttachReject) MessageType() uint8 { return MsgTypeAttachReject }

func (m *AttachReject) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("ESM message container", 0x78, ie.FormatTLVE, &m.ESMMessageContainer),
		ie.Octets("T3346 value", 0x5f, ie.FormatTLV, &m.T3346Value),
		ie.Octets("T3402 value", 0x16, ie.FormatTLV, &m.T3402Value),
		ie.HalfOctet("extended EMM cause", 0xa0, &m.ExtendedEMMCause),
	}
}

func (m *AttachReject) decode(r *codec.Reader) error {
	if err := ie.V(r, "EMM cause", &m.EMMCause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *AttachReject) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "EMM cause", m.EMMCause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}
