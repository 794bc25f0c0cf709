package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// 8.2.29 Tracking area update request
type TrackingAreaUpdateRequest struct {
	NASKeySetIdentifier            uint8
	EPSUpdateType                  uint8
	OldGUTI                        []byte
	NonCurrentNativeKeySetID       *uint8
	GPRSCipheringKeySequenceNumber *uint8
	OldPTMSISignature              []byte
	AdditionalGUTI                 []byte
	NonceUE                        []byte
	UENetworkCapability            []byte
	LastVisitedRegisteredTAI       []byte
	DRXParameter                   []byte
	UERadioCapabilityUpdateNeeded  *uint8
	EPSBearerContextStatus         []byte
	MSNetworkCapability            []byte
	OldLocationAreaIdentity        []byte
	TMSIStatus                     *uint8
	MobileStationClassmark2        []byte
	MobileStationClassmark3        []byte
	SupportedCodecs                []byte
	AdditionalUpdateType           *uint8
	VoiceDomainPreference          []byte
	OldGUTIType                    *uint8
	DeviceProperties               *uint8
	MSNetworkFeatureSupport        *uint8
	TMSIBasedNRIContainer          []byte
	T3324Value                     []byte
	T3412ExtendedValue             []byte
	ExtendedDRXParameters          []byte
}

func (*TrackingAreaUpdateRequest) MessageType() uint8 { return MsgTypeTrackingAreaUpdateRequest }

func (m *TrackingAreaUpdateRequest) optionals() []ie.Optional {
	return []ie.Optional{
		ie.HalfOctet("non-current native NAS key set identifier", 0xb0, &m.NonCurrentNativeKeySetID),
		ie.HalfOctet("GPRS ciphering key sequence number", 0x80, &m.GPRSCipheringKeySequenceNumber),
		ie.Fixed("old P-TMSI signature", 0x19, 3, &m.OldPTMSISignature),
		ie.Octets("additional GUTI", 0x50, ie.FormatTLV, &m.AdditionalGUTI),
		ie.Fixed("NonceUE", 0x55, 4, &m.NonceUE),
		ie.Octets("UE network capability", 0x58, ie.FormatTLV, &m.UENetworkCapability),
		ie.Fixed("last visited registered TAI", 0x52, 5, &m.LastVisitedRegisteredTAI),
		ie.Fixed("DRX parameter", 0x5c, 2, &m.DRXParameter),
		ie.HalfOctet("UE radio capability information update needed", 0xa0, &m.UERadioCapabilityUpdateNeeded),
		ie.Octets("EPS bearer context status", 0x57, ie.FormatTLV, &m.EPSBearerContextStatus),
		ie.Octets("MS network capability", 0x31, ie.FormatTLV, &m.MSNetworkCapability),
		ie.Fixed("old location area identification", 0x13, 5, &m.OldLocationAreaIdentity),
		ie.HalfOctet("TMSI status", 0x90, &m.TMSIStatus),
		ie.Octets("mobile station classmark 2", 0x11, ie.FormatTLV, &m.MobileStationClassmark2),
		ie.Octets("mobile station classmark 3", 0x20, ie.FormatTLV, &m.MobileStationClassmark3),
		ie.Octets("supported codecs", 0x40, ie.FormatTLV, &m.SupportedCodecs),
		ie.HalfOctet("additional update type", 0xf0, &m.AdditionalUpdateType),
		ie.Octets("voice domain preference", 0x5d, ie.FormatTLV, &m.VoiceDomainPreference),
		ie.HalfOctet("old GUTI type", 0xe0, &m.OldGUTIType),
		ie.HalfOctet("device properties", 0xd0, &m.DeviceProperties),
		ie.HalfOctet("MS network feature support", 0xc0, &m.MSNetworkFeatureSupport),
		ie.Octets("TMSI based NRI container", 0x10, ie.FormatTLV, &m.TMSIBasedNRIContainer),
		ie.Octets("T3324 value", 0x6a, ie.FormatTLV, &m.T3324Value),
		ie.Octets("T3412 extended value", 0x5e, ie.FormatTLV, &m.T3412ExtendedValue),
		ie.Octets("extended DRX parameters", 0x6e, ie.FormatTLV, &m.ExtendedDRXParameters),
	}
}

func (m *TrackingAreaUpdateRequest) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "NAS key set identifier and EPS update type", &m.NASKeySetIdentifier, &m.EPSUpdateType); err != nil {
		return err
	}
	if err := ie.LV(r, "old GUTI", &m.OldGUTI); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *TrackingAreaUpdateRequest) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "NAS key set identifier and EPS update type", m.NASKeySetIdentifier, m.EPSUpdateType); err != nil {
		return err
	}
	if err := ie.PutLV(w, "old GUTI", m.OldGUTI); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.26 Tracking area update accept
type TrackingAreaUpdateAccept struct {
	EPSUpdateResult          uint8
	Spare                    uint8
	T3412Value               *uint8
	GUTI                     []byte
	TAIList                  []byte
	EPSBearerContextStatus   []byte
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

func (*TrackingAreaUpdateAccept) MessageType() uint8 { return MsgTypeTrackingAreaUpdateAccept }

func (m *TrackingAreaUpdateAccept) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octet("T3412 value", 0x5a, &m.T3412Value),
		ie.Octets("GUTI", 0x50, ie.FormatTLV, &m.GUTI),
		ie.Octets("TAI list", 0x54, ie.FormatTLV, &m.TAIList),
		ie.Octets("EPS bearer context status", 0x57, ie.FormatTLV, &m.EPSBearerContextStatus),
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

func (m *TrackingAreaUpdateAccept) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "EPS update result", &m.Spare, &m.EPSUpdateResult); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *TrackingAreaUpdateAccept) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "EPS update result", m.Spare, m.EPSUpdateResult); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.27 Tracking area update complete
type TrackingAreaUpdateComplete struct{}

func (*TrackingAreaUpdateComplete) MessageType() uint8 { return MsgTypeTrackingAreaUpdateComplete }

func (*TrackingAreaUpdateComplete) decode(*codec.Reader) error { return nil }

func (*TrackingAreaUpdateComplete) encode(*codec.Writer) error { return nil }

// 8.2.28 Tracking area update reject
type TrackingAreaUpdateReject struct {
	EMMCause         uint8
	T3346Value       []byte
	ExtendedEMMCause *uint8
}

func (*TrackingAreaUpdateReject) MessageType() uint8 { return MsgTypeTrackingAreaUpdateReject }

func (m *TrackingAreaUpdateReject) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("T3346 value", 0x5f, ie.FormatTLV, &m.T3346Value),
		ie.HalfOctet("extended EMM cause", 0xa0, &m.ExtendedEMMCause),
	}
}

func (m *TrackingAreaUpdateReject) decode(r *codec.Reader) error {
	if err := ie.V(r, "EMM cause", &m.EMMCause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *TrackingAreaUpdateReject) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "EMM cause", m.EMMCause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}
