package emm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
)

// ShortMACLen is the size of the short MAC carried by a service request.
const ShortMACLen = 2

// 8.2.25 Service request
//
// The message carries its own security header (type 1100) on the wire; this codec handles it as a
// plain message whose body is the KSI and sequence number followed by the short MAC.
type ServiceRequest struct {
	KSIAndSequenceNumber uint8
	ShortMAC             []byte
}

func (*ServiceRequest) MessageType() uint8 { return MsgTypeServiceRequest }

func (m *ServiceRequest) decode(r *codec.Reader) error {
	if err := ie.V(r, "KSI and sequence number", &m.KSIAndSequenceNumber); err != nil {
		return err
	}

	return ie.Value(r, "short MAC", ShortMACLen, &m.ShortMAC)
}

func (m *ServiceRequest) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "KSI and sequence number", m.KSIAndSequenceNumber); err != nil {
		return err
	}

	return ie.PutValue(w, "short MAC", ShortMACLen, m.ShortMAC)
}

// 8.2.15 Extended service request
type ExtendedServiceRequest struct {
	NASKeySetIdentifier    uint8
	ServiceType            uint8
	MTMSI                  []byte
	CSFBResponse           *uint8
	EPSBearerContextStatus []byte
	DeviceProperties       *uint8
}

func (*ExtendedServiceRequest) MessageType() uint8 { return MsgTypeExtendedServiceRequest }

func (m *ExtendedServiceRequest) optionals() []ie.Optional {
	return []ie.Optional{
		ie.HalfOctet("CSFB response", 0xb0, &m.CSFBResponse),
		ie.Octets("EPS bearer context status", 0x57, ie.FormatTLV, &m.EPSBearerContextStatus),
		ie.HalfOctet("device properties", 0xd0, &m.DeviceProperties),
	}
}

func (m *ExtendedServiceRequest) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "NAS key set identifier and service type", &m.NASKeySetIdentifier, &m.ServiceType); err != nil {
		return err
	}
	if err := ie.LV(r, "M-TMSI", &m.MTMSI); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *ExtendedServiceRequest) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "NAS key set identifier and service type", m.NASKeySetIdentifier, m.ServiceType); err != nil {
		return err
	}
	if err := ie.PutLV(w, "M-TMSI", m.MTMSI); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// 8.2.24 Service reject
type ServiceReject struct {
	EMMCause   uint8
	T3442Value *uint8
	T3346Value []byte
}

func (*ServiceReject) MessageType() uint8 { return MsgTypeServiceReject }

func (m *ServiceReject) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octet("T3442 value", 0x5b, &m.T3442Value),
		ie.Octets("T3346 value", 0x5f, ie.FormatTLV, &m.T3346Value),
	}
}

func (m *ServiceReject) decode(r *codec.Reader) error {
	if err := ie.V(r, "EMM cause", &m.EMMCause); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *ServiceReject) encode(w *codec.Writer) error {
	if err := ie.PutV(w, "EMM cause", m.EMMCause); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}
