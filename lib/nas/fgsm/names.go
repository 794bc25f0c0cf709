package fgsm

import (
	"fmt"

	"github.com/free5gc/nas"
	"github.com/free5gc/nas/nasMessage"
)

// 8.3 message types of the 5GSM family, registered or not.
var messageNames = map[uint8]string{
	nas.MsgTypePDUSessionEstablishmentRequest:      "PDU Session Establishment Request",
	nas.MsgTypePDUSessionEstablishmentAccept:       "PDU Session Establishment Accept",
	nas.MsgTypePDUSessionEstablishmentReject:       "PDU Session Establishment Reject",
	nas.MsgTypePDUSessionAuthenticationCommand:     "PDU Session Authentication Command",
	nas.MsgTypePDUSessionAuthenticationComplete:    "PDU Session Authentication Complete",
	nas.MsgTypePDUSessionAuthenticationResult:      "PDU Session Authentication Result",
	nas.MsgTypePDUSessionModificationRequest:       "PDU Session Modification Request",
	nas.MsgTypePDUSessionModificationReject:        "PDU Session Modification Reject",
	nas.MsgTypePDUSessionModificationCommand:       "PDU Session Modification Command",
	nas.MsgTypePDUSessionModificationComplete:      "PDU Session Modification Complete",
	nas.MsgTypePDUSessionModificationCommandReject: "PDU Session Modification Command Reject",
	nas.MsgTypePDUSessionReleaseRequest:            "PDU Session Release Request",
	nas.MsgTypePDUSessionReleaseReject:             "PDU Session Release Reject",
	nas.MsgTypePDUSessionReleaseCommand:            "PDU Session Release Command",
	nas.MsgTypePDUSessionReleaseComplete:           "PDU Session Release Complete",
	nas.MsgTypeStatus5GSM:                          "5GSM Status",
}

// MessageName returns the name of any 5GSM message type.
func MessageName(t uint8) string {
	if name, ok := messageNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Unknown Message Type (0x%02x)", t)
}

// 9.11.4.2 5GSM cause
var causeNames = map[uint8]string{
	nasMessage.Cause5GSMInsufficientResources:                                      "Insufficient Resources",
	nasMessage.Cause5GSMMissingOrUnknownDNN:                                        "Missing Or Unknown DNN",
	nasMessage.Cause5GSMUnknownPDUSessionType:                                      "Unknown PDU Session Type",
	nasMessage.Cause5GSMUserAuthenticationOrAuthorizationFailed:                    "User Authentication Or Authorization Failed",
	nasMessage.Cause5GSMRequestRejectedUnspecified:                                 "Request Rejected Unspecified",
	nasMessage.Cause5GSMServiceOptionTemporarilyOutOfOrder:                         "Service Option Temporarily Out Of Order",
	nasMessage.Cause5GSMPTIAlreadyInUse:                                            "PTI Already In Use",
	nasMessage.Cause5GSMRegularDeactivation:                                        "Regular Deactivation",
	nasMessage.Cause5GSMNetworkFailure:                                             "Network Failure",
	nasMessage.Cause5GSMReactivationRequested:                                      "Reactivation Requested",
	nasMessage.Cause5GSMInvalidPDUSessionIdentity:                                  "Invalid PDU Session Identity",
	nasMessage.Cause5GSMSemanticErrorsInPacketFilter:                               "Semantic Errors In Packet Filter",
	nasMessage.Cause5GSMSyntacticalErrorInPacketFilter:                             "Syntactical Error In Packet Filter",
	nasMessage.Cause5GSMOutOfLADNServiceArea:                                       "Out Of LADN Service Area",
	nasMessage.Cause5GSMPTIMismatch:                                                "PTI Mismatch",
	nasMessage.Cause5GSMPDUSessionTypeIPv4OnlyAllowed:                              "PDU Session Type IPv4 Only Allowed",
	nasMessage.Cause5GSMPDUSessionTypeIPv6OnlyAllowed:                              "PDU Session Type IPv6 Only Allowed",
	nasMessage.Cause5GSMPDUSessionDoesNotExist:                                     "PDU Session Does Not Exist",
	nasMessage.Cause5GSMInsufficientResourcesForSpecificSliceAndDNN:                "Insufficient Resources For Specific Slice And DNN",
	nasMessage.Cause5GSMNotSupportedSSCMode:                                        "Not Supported SSC Mode",
	nasMessage.Cause5GSMInsufficientResourcesForSpecificSlice:                      "Insufficient Resources For Specific Slice",
	nasMessage.Cause5GSMMissingOrUnknownDNNInASlice:                                "Missing Or Unknown DNN In A Slice",
	nasMessage.Cause5GSMInvalidPTIValue:                                            "Invalid PTI Value",
	nasMessage.Cause5GSMMaximumDataRatePerUEForUserPlaneIntegrityProtectionIsTooLow: "Maximum Data Rate Per UE For User Plane Integrity Protection Is Too Low",
	nasMessage.Cause5GSMSemanticErrorInTheQoSOperation:                             "Semantic Error In The QoS Operation",
	nasMessage.Cause5GSMSyntacticalErrorInTheQoSOperation:                          "Syntactical Error In The QoS Operation",
	nasMessage.Cause5GSMInvalidMappedEPSBearerIdentity:                             "Invalid Mapped EPS Bearer Identity",
	nasMessage.Cause5GSMSemanticallyIncorrectMessage:                               "Semantically Incorrect Message",
	nasMessage.Cause5GSMInvalidMandatoryInformation:                                "Invalid Mandatory Information",
	nasMessage.Cause5GSMMessageTypeNonExistentOrNotImplemented:                     "Message Type Non Existent Or Not Implemented",
	nasMessage.Cause5GSMMessageTypeNotCompatibleWithTheProtocolState:               "Message Type Not Compatible With The Protocol State",
	nasMessage.Cause5GSMInformationElementNonExistentOrNotImplemented:              "Information Element Non Existent Or Not Implemented",
	nasMessage.Cause5GSMConditionalIEError:                                         "Conditional IE Error",
	nasMessage.Cause5GSMMessageNotCompatibleWithTheProtocolState:                   "Message Not Compatible With The Protocol State",
	nasMessage.Cause5GSMProtocolErrorUnspecified:                                   "Protocol Error Unspecified",
}

// CauseName returns a readable 5GSM cause, as carried by rejects, release commands and status messages.
func CauseName(cause uint8) string {
	if name, ok := causeNames[cause]; ok {
		return name
	}

	return fmt.Sprintf("Unknown Cause (%d)", cause)
}
