package fgsm

import (
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/ellanetworks/nascodec/lib/nas/ie"
	"github.com/free5gc/nas"
	"github.com/free5gc/nas/nasMessage"
)

// 8.3.2 PDU session establishment accept
type PDUSessionEstablishmentAccept struct {
	PDUSessionType                       uint8
	SSCMode                              uint8
	QoSRules                             []QoSRule
	SessionAMBR                          SessionAMBR
	DNN                                  DNN
	PDUAddress                           *PDUAddress
	ExtendedProtocolConfigurationOptions []byte
	QoSFlowDescriptions                  []byte
	EAPMessage                           []byte
	AlwaysOnPDUSessionIndication         *uint8
	MappedEPSBearerContexts              []byte
}

func (*PDUSessionEstablishmentAccept) MessageType() uint8 {
	return nas.MsgTypePDUSessionEstablishmentAccept
}

func (m *PDUSessionEstablishmentAccept) optionals() []ie.Optional {
	return []ie.Optional{
		ie.Octets("DNN", nasMessage.PDUSessionEstablishmentAcceptDNNType, ie.FormatTLV, (*[]byte)(&m.DNN)),
		{
			Name:    "PDU address",
			IEI:     nasMessage.PDUSessionEstablishmentAcceptPDUAddressType,
			Format:  ie.FormatTLV,
			Present: func() bool { return m.PDUAddress != nil },
			Decode: func(r *codec.Reader) error {
				a := new(PDUAddress)
				if err := a.decode(r); err != nil {
					return err
				}
				m.PDUAddress = a
				return nil
			},
			Encode: func(w *codec.Writer) error {
				return m.PDUAddress.encode(w)
			},
		},
		ie.Octets("extended protocol configuration options", nasMessage.PDUSessionEstablishmentAcceptExtendedProtocolConfigurationOptionsType, ie.FormatTLVE, &m.ExtendedProtocolConfigurationOptions),
		ie.Octets("QoS flow descriptions", nasMessage.PDUSessionEstablishmentAcceptAuthorizedQosFlowDescriptionsType, ie.FormatTLVE, &m.QoSFlowDescriptions),
		ie.Octets("EAP message", nasMessage.PDUSessionEstablishmentAcceptEAPMessageType, ie.FormatTLVE, &m.EAPMessage),
		ie.HalfOctet("always-on PDU session indication", nasMessage.PDUSessionEstablishmentAcceptAlwaysonPDUSessionIndicationType<<4, &m.AlwaysOnPDUSessionIndication),
		ie.Octets("mapped EPS bearer contexts", nasMessage.PDUSessionEstablishmentAcceptMappedEPSBearerContextsType, ie.FormatTLVE, &m.MappedEPSBearerContexts),
	}
}

func (m *PDUSessionEstablishmentAccept) decode(r *codec.Reader) error {
	if err := ie.HalfOctets(r, "selected SSC mode and PDU session type", &m.SSCMode, &m.PDUSessionType); err != nil {
		return err
	}

	err := ie.DecodeMandatory(r, "authorized QoS rules", func(r *codec.Reader) error {
		rr, err := r.SubPrefixed(2)
		if err != nil {
			return err
		}

		m.QoSRules, err = decodeQoSRules(rr)
		return err
	})
	if err != nil {
		return err
	}

	if err := ie.DecodeMandatory(r, "session AMBR", m.SessionAMBR.decode); err != nil {
		return err
	}

	return ie.DecodeOptionals(r, m.optionals())
}

func (m *PDUSessionEstablishmentAccept) encode(w *codec.Writer) error {
	if err := ie.PutHalfOctets(w, "selected SSC mode and PDU session type", m.SSCMode, m.PDUSessionType); err != nil {
		return err
	}

	err := ie.EncodeMandatory(w, "authorized QoS rules", func(w *codec.Writer) error {
		return w.Prefixed(2, func(w *codec.Writer) error {
			return encodeQoSRules(w, m.QoSRules)
		})
	})
	if err != nil {
		return err
	}

	if err := ie.EncodeMandatory(w, "session AMBR", m.SessionAMBR.encode); err != nil {
		return err
	}

	return ie.EncodeOptionals(w, m.optionals())
}

// FlowDescriptions parses the QoS flow descriptions IE, if present.
func (m *PDUSessionEstablishmentAccept) FlowDescriptions() ([]QoSFlowDescription, error) {
	if m.QoSFlowDescriptions == nil {
		return nil, nil
	}

	return ParseQoSFlowDescriptions(m.QoSFlowDescriptions)
}
