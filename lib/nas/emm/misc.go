package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// 8.2.16 GUTI reallocation command
type GUTIReallocationCommand struct {
	GUTI    []byte
	TAIList []byte
}

func (*GUTIReallocationCommand) MessageType() uint8 { return MsgTypeGUTIReallocationCommand }

func (m *GUTIReallocationCommand) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("TAI list", 0x54, ie.FormatTLV, &m.TAIList),
	}
}

func (m *GUTIReallocationCommand) decode(r *codec.Reader) error {
	if err := ie.LV(r, "GUTI", &m.GUTI); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *GUTIReallocationCommand) encode(w *codec.Writer) error {
	if err := ie.PutLV(w, "GUTI", m.GUTI); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.17 GUTI reallocation complete
type GUTIReallocationComplete struct{}

func (*GUTIReallocationComplete) MessageType() uint8 { return MsgTypeGUTIReallocationComplete }

func (*GUTIReallocationComplete) decode(*codec.Reader) error { return nil }

func (*GUTIReallocationComplete) encode(*codec.Writer) error { return nil }

// 8.2.14 EMM status
type EMMStatus struct {
	EMMCause uint8
}

func (*EMMStatus) MessageType() uint8 { return MsgTypeEMMStatus }

func (m *EMMStatus) decode(r *codec.Reader) error {
	return ie.V(r, "EMM cause", &m.EMMCause)
}

func (m *EMMStatus) encode(w *codec.Writer) error {
	return ie.PutV(w, "EMM cause", m.EMMCause)
}

// 8.2.13 EMM information
type EMMInformation struct {
	FullNameForNetwork            []byte
	ShortNameForNetwork           []byte
	LocalTimeZone                 *uint8
	UniversalTimeAndLocalTimeZone []byte
	NetworkDaylightSavingTime     []byte
}

func (*EMMInformation) MessageType() uint8 { return MsgTypeEMMInformation }

func (m *EMMInformation) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("full name for network", 0x43, ie.FormatTLV, &m.FullNameForNetwork),
		ie.Octets("short name for network", 0x45, ie.FormatTLV, &m.ShortNameForNetwork),
		ie.Octet("local time zone", 0x46, &m.LocalTimeZone),
		ie.Fixed("universal time and local time zone", 0x47, 7, &m.UniversalTimeAndLocalTimeZone),
		ie.Octets("network daylight saving time", 0x49, ie.FormatTLV, &m.NetworkDaylightSavingTime),
	}
}

func (m *EMMInformation) decode(r *codec.Reader) error {
	return ie.DecodeOptionals(r, m.optionals())
}

func (m *EMMInformation) encode(w *codec.Writer) error {
	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.12 Downlink NAS transport
type DownlinkNASTransport struct {
	NASMessageContainer []byte
}

func (*DownlinkNASTransport) MessageType() uint8 { return MsgTypeDownlinkNASTransport }

func (m *DownlinkNASTransport) decode(r *codec.Reader) error {
	return ie.LV(r, "NAS message container", &m.NASMessageContainer)
}

func (m *DownlinkNASTransport) encode(w *codec.Writer) error {
	return ie.PutLV(w, "NAS message container", m.NASMessageContainer)
}

// 8.2.30 Uplink NAS transport
type UplinkNASTransport struct {
	NASMessageContainer []byte
}

func (*UplinkNASTransport) MessageType() uint8 { return MsgTypeUplinkNASTransport }

func (m *UplinkNASTransport) decode(r *codec.Reader) error {
	return ie.LV(r, "NAS message container", &m.NASMessageContainer)
}

func (m *UplinkNASTransport) encode(w *codec.Writer) error {
	return ie.PutLV(w, "NAS message container", m.NASMessageContainer)
}

// 8.2.9 CS service notification
type CSServiceNotification struct {
	PagingIdentity    uint8
	CLI               []byte
	SSCode            *uint8
	LCSIndicator      *uint8
	LCSClientIdentity []byte
}

func (*CSServiceNotification) MessageType() uint8 { return MsgTypeCSServiceNotification }

func (m *CSServiceNotification) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("CLI", 0x60, ie.FormatTLV, &m.CLI),
		ie.Octet("SS code", 0x61, &m.SSCode),
		ie.Octet("LCS indicator", 0x62, &m.LCSIndicator),
		ie.Octets("LCS client identity", 0x63, ie.FormatTLV, &m.LCSClientIdentity),
	}
}

func (m *CSServiceNotification) decode(r *codec.Reader) error {
	if err := ie.V(r, "paging identity", &m.PagingIdentity); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *CSServiceNotification) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "paging identity", m.PagingIdentity); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}
