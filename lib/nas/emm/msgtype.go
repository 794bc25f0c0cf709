package emm

// 9.8 Message types for EPS mobility management
const (
	MsgTypeAttachRequest              uint8 = 0x41
	MsgTypeAttachAccept               uint8 = 0x42
	MsgTypeAttachComplete             uint8 = 0x43
	MsgTypeAttachReject               uint8 = 0x44
	MsgTypeDetachRequest              uint8 = 0x45
	MsgTypeDetachAccept               uint8 = 0x46
	MsgTypeTrackingAreaUpdateRequest  uint8 = 0x48
	MsgTypeTrackingAreaUpdateAccept   uint8 = 0x49
	MsgTypeTrackingAreaUpdateComplete uint8 = 0x4a
	MsgTypeTrackingAreaUpdateReject   uint8 = 0x4b
	MsgTypeExtendedServiceRequest     uint8 = 0x4c
	MsgTypeServiceRequest             uint8 = 0x4d
	MsgTypeServiceReject              uint8 = 0x4e
	MsgTypeGUTIReallocationCommand    uint8 = 0x50
	MsgTypeGUTIReallocationComplete   uint8 = 0x51
	MsgTypeAuthenticationRequest      uint8 = 0x52
	MsgTypeAuthenticationResponse     uint8 = 0x53
	MsgTypeAuthenticationReject       uint8 = 0x54
	MsgTypeIdentityRequest            uint8 = 0x55
	MsgTypeIdentityResponse           uint8 = 0x56
	MsgTypeAuthenticationFailure      uint8 = 0x5c
	MsgTypeSecurityModeCommand        uint8 = 0x5d
	MsgTypeSecurityModeComplete       uint8 = 0x5e
	MsgTypeSecurityModeReject         uint8 = 0x5f
	MsgTypeEMMStatus                  uint8 = 0x60
	MsgTypeEMMInformation             uint8 = 0x61
	MsgTypeDownlinkNASTransport       uint8 = 0x62
	MsgTypeUplinkNASTransport         uint8 = 0x63
	MsgTypeCSServiceNotification      uint8 = 0x64
)
