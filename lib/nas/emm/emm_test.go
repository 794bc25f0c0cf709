package emm

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/mohae/deepcopy"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func u8(v uint8) *uint8 {
	return &v
}

// header 0742, attach result 1, T3412 0x5c, TAI list (6), ESM container (3)
const attachAcceptHex = "0742" + "01" + "5c" + "06" + "0002f8390001" + "0003" + "aabbcc"

func TestDecodeAttachAccept(t *testing.T) {
	in := mustHex(t, attachAcceptHex)

	m, n, err := Decode(in)
	require.NoError(t, err)
	require.Equal(t, len(in), n)
	require.Equal(t, SecurityHeaderTypePlain, m.SecurityHeaderType)
	require.Equal(t, ProtocolDiscriminator, m.ProtocolDiscriminator)
	require.Equal(t, MsgTypeAttachAccept, m.MessageType)

	body, ok := m.Body.(*AttachAccept)
	require.True(t, ok, "body = %T", m.Body)
	require.Equal(t, uint8(1), body.EPSAttachResult)
	require.Equal(t, uint8(0x5c), body.T3412Value)
	require.Equal(t, mustHex(t, "0002f8390001"), body.TAIList)
	require.Equal(t, mustHex(t, "aabbcc"), body.ESMMessageContainer)
	require.Nil(t, body.GUTI)

	out, err := Encode(m)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeHeaderRejects(t *testing.T) {
	testcases := []struct {
		name string
		in   string
		err  error
	}{
		{"protected security header", "17" + attachAcceptHex[2:], codec.ErrProtocolNotSupported},
		{"ciphered security header", "27" + attachAcceptHex[2:], codec.ErrProtocolNotSupported},
		{"session management discriminator", "02" + attachAcceptHex[2:], codec.ErrProtocolNotSupported},
		{"empty", "", codec.ErrBufferTooShort},
		{"one octet", "07", codec.ErrBufferTooShort},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			m, n, err := Decode(mustHex(t, tc.in))
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, m)
			require.Zero(t, n)
		})
	}
}

func TestDecodeUnknownMessageType(t *testing.T) {
	for _, mt := range []string{"47", "00", "ff", "65"} {
		m, n, err := Decode(mustHex(t, "07"+mt+"0102030405"))
		require.ErrorIs(t, err, codec.ErrWrongMessageType, "type 0x%s", mt)
		require.Nil(t, m)
		require.Equal(t, HeaderLen, n, "only the header is consumed")
	}
}

func TestDecodeErrorOffset(t *testing.T) {
	// TAI list declares 6 octets but only 2 follow
	_, _, err := Decode(mustHex(t, "0742015c060002"))
	require.ErrorIs(t, err, codec.ErrBufferTooShort)

	off, ok := codec.OffsetOf(err)
	require.True(t, ok)
	require.Equal(t, 5, off)
	require.Contains(t, err.Error(), "TAI list")
}

func TestDecodeTrailingOctetsNotConsumed(t *testing.T) {
	in := mustHex(t, attachAcceptHex+"ee01")

	_, n, err := Decode(in)
	require.NoError(t, err)
	require.Equal(t, len(in)-2, n)
}

func fullAttachAccept() *AttachAccept {
	return &AttachAccept{
		EPSAttachResult:          2,
		T3412Value:               0x21,
		TAIList:                  []byte{0x00, 0x02, 0xf8, 0x39, 0x00, 0x01},
		ESMMessageContainer:      []byte{0x52, 0x01, 0xc1},
		GUTI:                     []byte{0xf6, 0x02, 0xf8, 0x39, 0x80, 0x01, 0x01, 0xc0, 0x00, 0x00, 0x01},
		LocationAreaIdentity:     []byte{0x02, 0xf8, 0x39, 0x00, 0x01},
		MSIdentity:               []byte{0xf4, 0xde, 0xad, 0xbe, 0xef},
		EMMCause:                 u8(0x12),
		T3402Value:               u8(0x2c),
		T3423Value:               u8(0x23),
		EquivalentPLMNs:          []byte{0x02, 0xf8, 0x39},
		EmergencyNumberList:      []byte{0x02, 0x01, 0x19},
		EPSNetworkFeatureSupport: []byte{0x01},
		AdditionalUpdateResult:   u8(2),
		T3412ExtendedValue:       []byte{0x21},
	}
}

func roundTripBodies() []Body {
	return []Body{
		&AttachRequest{
			NASKeySetIdentifier:      7,
			EPSAttachType:            1,
			EPSMobileIdentity:        []byte{0x29, 0x10, 0x32, 0x54, 0x76, 0x98, 0x10, 0x32},
			UENetworkCapability:      []byte{0xe0, 0xe0},
			ESMMessageContainer:      []byte{0x02, 0x01, 0xd0, 0x11},
			OldPTMSISignature:        []byte{0x01, 0x02, 0x03},
			AdditionalGUTI:           []byte{0xf6, 0x02, 0xf8, 0x39},
			LastVisitedRegisteredTAI: []byte{0x02, 0xf8, 0x39, 0x00, 0x01},
			DRXParameter:             []byte{0x00, 0x0a},
			MSNetworkCapability:      []byte{0xe5, 0xe0},
			OldLocationAreaIdentity:  []byte{0x02, 0xf8, 0x39, 0x00, 0x02},
			TMSIStatus:               u8(0),
		},
		fullAttachAccept(),
		&AttachComplete{ESMMessageContainer: []byte{0x52, 0x01, 0xc2}},
		&AttachReject{EMMCause: 0x0f, ESMMessageContainer: []byte{0x04, 0x05}, T3346Value: []byte{0x21}},
		&AttachReject{EMMCause: 0x03},
		&DetachRequest{NASKeySetIdentifier: 1, DetachType: 0x9, EPSMobileIdentity: []byte{0xf6, 0x02}},
		&DetachAccept{},
		&TrackingAreaUpdateRequest{
			NASKeySetIdentifier:            3,
			EPSUpdateType:                  0,
			OldGUTI:                        []byte{0xf6, 0x02, 0xf8, 0x39},
			NonCurrentNativeKeySetID:       u8(1),
			GPRSCipheringKeySequenceNumber: u8(2),
			OldPTMSISignature:              []byte{0x0a, 0x0b, 0x0c},
		},
		&TrackingAreaUpdateAccept{EPSUpdateResult: 1, T3412Value: u8(0x21), GUTI: []byte{0xf6}, TAIList: []byte{0x00, 0x02}},
		&TrackingAreaUpdateAccept{EPSUpdateResult: 0},
		&TrackingAreaUpdateComplete{},
		&TrackingAreaUpdateReject{EMMCause: 0x09, T3346Value: []byte{0x01}, ExtendedEMMCause: u8(1)},
		&ExtendedServiceRequest{NASKeySetIdentifier: 2, ServiceType: 1, MTMSI: []byte{0xf4, 0x01, 0x02, 0x03, 0x04}, CSFBResponse: u8(1)},
		&ServiceRequest{KSIAndSequenceNumber: 0x2a, ShortMAC: []byte{0xbe, 0xef}},
		&ServiceReject{EMMCause: 0x0a, T3442Value: u8(0x01)},
		&GUTIReallocationCommand{GUTI: []byte{0xf6, 0x02}, TAIList: []byte{0x00, 0x02, 0xf8, 0x39, 0x00, 0x01}},
		&GUTIReallocationComplete{},
		&AuthenticationRequest{
			NASKeySetIdentifier: 0,
			RAND:                mustDecode("0102030405060708090a0b0c0d0e0f10"),
			AUTN:                mustDecode("a1a2a3a4a5a6a7a8a9aaabacadaeafb0"),
		},
		&AuthenticationResponse{RES: []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}},
		&AuthenticationReject{},
		&AuthenticationFailure{EMMCause: 0x15, AuthenticationFailureParameter: mustDecode("0102030405060708090a0b0c0d0e")},
		&IdentityRequest{IdentityType: 1},
		&IdentityResponse{MobileIdentity: []byte{0x29, 0x10, 0x32, 0x54}},
		&SecurityModeCommand{
			SelectedNASSecurityAlgorithms:  0x11,
			NASKeySetIdentifier:            0,
			ReplayedUESecurityCapabilities: []byte{0xe0, 0xe0},
			IMEISVRequest:                  u8(1),
			ReplayedNonceUE:                []byte{1, 2, 3, 4},
			NonceMME:                       []byte{5, 6, 7, 8},
		},
		&SecurityModeComplete{IMEISV: []byte{0x33, 0x10, 0x32, 0x54, 0x76, 0x98, 0x10, 0x32, 0xf4}},
		&SecurityModeComplete{},
		&SecurityModeReject{EMMCause: 0x18},
		&EMMStatus{EMMCause: 0x60},
		&EMMInformation{
			FullNameForNetwork:            []byte{0x80, 0x45, 0x6c, 0x6c, 0x61},
			ShortNameForNetwork:           []byte{0x80, 0x45},
			LocalTimeZone:                 u8(0x40),
			UniversalTimeAndLocalTimeZone: []byte{0x62, 0x01, 0x71, 0x21, 0x43, 0x65, 0x40},
			NetworkDaylightSavingTime:     []byte{0x00},
		},
		&DownlinkNASTransport{NASMessageContainer: []byte{0x39, 0x01, 0x02}},
		&UplinkNASTransport{NASMessageContainer: []byte{0x39, 0x03}},
		&CSServiceNotification{PagingIdentity: 1, CLI: []byte{0x91, 0x21}, SSCode: u8(0x11)},
	}
}

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	for _, body := range roundTripBodies() {
		t.Run(fmt.Sprintf("%s/%T", MessageName(body.MessageType()), body), func(t *testing.T) {
			m := NewMessage(body)

			b, err := Encode(m)
			require.NoError(t, err)

			decoded, n, err := Decode(b)
			require.NoError(t, err)
			require.Equal(t, len(b), n)
			require.Equal(t, m, decoded)

			again, err := Encode(decoded)
			require.NoError(t, err)
			require.Equal(t, b, again)
		})
	}
}

func TestEveryTypeRegistered(t *testing.T) {
	seen := map[uint8]bool{}
	for _, body := range roundTripBodies() {
		seen[body.MessageType()] = true
	}

	types := MessageTypes()
	require.Len(t, types, 29)
	for _, mt := range types {
		require.True(t, seen[mt], "no round trip case for %s", MessageName(mt))
	}
	require.Equal(t, "ServiceRequest", MessageName(MsgTypeServiceRequest))
	require.Equal(t, "Unknown(0x47)", MessageName(0x47))
}

func TestTruncatedWithoutOptionals(t *testing.T) {
	for _, body := range []Body{
		&AttachAccept{EPSAttachResult: 1, T3412Value: 0x5c, TAIList: []byte{0x00, 0x02, 0xf8}, ESMMessageContainer: []byte{0xaa, 0xbb}},
		&AuthenticationRequest{RAND: make([]byte, RANDLen), AUTN: []byte{1, 2, 3}},
		&ServiceRequest{KSIAndSequenceNumber: 1, ShortMAC: []byte{1, 2}},
		&TrackingAreaUpdateRequest{NASKeySetIdentifier: 1, OldGUTI: []byte{1, 2, 3}},
	} {
		b, err := Encode(NewMessage(body))
		require.NoError(t, err)

		for k := 0; k < len(b); k++ {
			_, _, err := Decode(b[:k])
			require.ErrorIs(t, err, codec.ErrBufferTooShort, "%T prefix %d of %d", body, k, len(b))
		}
	}
}

func TestTruncatedWithOptionals(t *testing.T) {
	full := fullAttachAccept()
	b, err := Encode(NewMessage(full))
	require.NoError(t, err)

	mandatory, err := Encode(NewMessage(&AttachAccept{
		EPSAttachResult:     full.EPSAttachResult,
		T3412Value:          full.T3412Value,
		TAIList:             full.TAIList,
		ESMMessageContainer: full.ESMMessageContainer,
	}))
	require.NoError(t, err)

	boundaries := 0
	for k := 0; k < len(b); k++ {
		m, n, err := Decode(b[:k])
		if err == nil {
			require.GreaterOrEqual(t, k, len(mandatory))
			require.Equal(t, k, n, "a valid prefix is consumed completely")
			require.IsType(t, &AttachAccept{}, m.Body)
			boundaries++
			continue
		}
		require.ErrorIs(t, err, codec.ErrBufferTooShort, "prefix %d of %d", k, len(b))
	}

	// the mandatory part plus a boundary after each optional IE but the last
	require.Equal(t, 11, boundaries)
}

func TestEncodeRejectsOptionalGap(t *testing.T) {
	body := fullAttachAccept()
	body.MSIdentity = nil

	_, err := Encode(NewMessage(body))
	require.ErrorIs(t, err, codec.ErrMalformedIE)
	require.Contains(t, err.Error(), "EMM cause")
}

func TestEncodeFixedLengthMismatch(t *testing.T) {
	_, err := Encode(NewMessage(&ServiceRequest{ShortMAC: []byte{1}}))
	require.ErrorIs(t, err, codec.ErrMalformedIE)

	_, err = Encode(NewMessage(&AuthenticationRequest{RAND: []byte{1}, AUTN: []byte{}}))
	require.ErrorIs(t, err, codec.ErrMalformedIE)
}

func TestEncodeHeaderChecks(t *testing.T) {
	m := NewMessage(&DetachAccept{})
	m.ProtocolDiscriminator = 0x02
	_, err := Encode(m)
	require.ErrorIs(t, err, codec.ErrProtocolNotSupported)

	m = NewMessage(&DetachAccept{})
	m.SecurityHeaderType = SecurityHeaderTypeIntegrityProtected
	_, err = Encode(m)
	require.ErrorIs(t, err, codec.ErrProtocolNotSupported)

	m = NewMessage(&DetachAccept{})
	m.MessageType = MsgTypeAttachAccept
	_, err = Encode(m)
	require.ErrorIs(t, err, codec.ErrWrongMessageType)

	_, err = Encode(&Message{Header: Header{ProtocolDiscriminator: ProtocolDiscriminator}})
	require.ErrorIs(t, err, codec.ErrWrongMessageType)
}

func TestEncodeToShortBuffer(t *testing.T) {
	m := NewMessage(fullAttachAccept())

	n, err := Size(m)
	require.NoError(t, err)

	buf := make([]byte, n-1)
	written, err := EncodeTo(m, buf)
	require.ErrorIs(t, err, codec.ErrBufferTooShort)
	require.Zero(t, written)
	require.Equal(t, make([]byte, n-1), buf, "nothing is written")

	buf = make([]byte, n+4)
	written, err = EncodeTo(m, buf)
	require.NoError(t, err)
	require.Equal(t, n, written)
}

func TestEncodeDoesNotMutate(t *testing.T) {
	for _, body := range roundTripBodies() {
		m := NewMessage(body)
		before := deepcopy.Copy(m).(*Message)

		_, err := Encode(m)
		require.NoError(t, err)
		require.Equal(t, before, m)
	}
}

func TestEncodeHeader(t *testing.T) {
	buf := make([]byte, HeaderLen)
	n, err := EncodeHeader(Header{ProtocolDiscriminator: ProtocolDiscriminator, MessageType: MsgTypeEMMStatus}, buf)
	require.NoError(t, err)
	require.Equal(t, HeaderLen, n)
	require.Equal(t, []byte{0x07, 0x60}, buf)

	_, err = EncodeHeader(Header{ProtocolDiscriminator: ProtocolDiscriminator}, buf[:1])
	require.ErrorIs(t, err, codec.ErrBufferTooShort)

	h, n, err := DecodeHeader(buf)
	require.NoError(t, err)
	require.Equal(t, HeaderLen, n)
	require.Equal(t, MsgTypeEMMStatus, h.MessageType)
}

func TestRoundTripKeepsSpareHalfOctets(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		spare uint8
	}{
		{"attach accept", "0742" + "f1" + attachAcceptHex[6:], 0x0f},
		{"tracking area update accept", "0749" + "50", 0x05},
		{"authentication request", "0752" + "37" + "00112233445566778899aabbccddeeff" + "02" + "abcd", 0x03},
		{"identity request", "0755" + "a1", 0x0a},
		{"security mode command", "075d" + "02" + "f3" + "02" + "e0e0", 0x0f},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustHex(t, tc.in)

			m, n, err := Decode(in)
			require.NoError(t, err)
			require.Equal(t, len(in), n)

			switch body := m.Body.(type) {
			case *AttachAccept:
				require.Equal(t, tc.spare, body.Spare)
				require.Equal(t, uint8(1), body.EPSAttachResult)
			case *TrackingAreaUpdateAccept:
				require.Equal(t, tc.spare, body.Spare)
			case *AuthenticationRequest:
				require.Equal(t, tc.spare, body.Spare)
				require.Equal(t, uint8(7), body.NASKeySetIdentifier)
			case *IdentityRequest:
				require.Equal(t, tc.spare, body.Spare)
				require.Equal(t, uint8(1), body.IdentityType)
			case *SecurityModeCommand:
				require.Equal(t, tc.spare, body.Spare)
				require.Equal(t, uint8(3), body.NASKeySetIdentifier)
			default:
				t.Fatalf("unexpected body %T", m.Body)
			}

			out, err := Encode(m)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}
}

func TestEncodeRejectsWideHalfOctets(t *testing.T) {
	acc := fullAttachAccept()
	acc.EPSAttachResult = 0x12
	_, err := Encode(NewMessage(acc))
	require.ErrorIs(t, err, codec.ErrMalformedIE)
	require.Contains(t, err.Error(), "EPS attach result")

	acc = fullAttachAccept()
	acc.Spare = 0x10
	_, err = Encode(NewMessage(acc))
	require.ErrorIs(t, err, codec.ErrMalformedIE)

	acc = fullAttachAccept()
	acc.AdditionalUpdateResult = u8(0x12)
	_, err = Encode(NewMessage(acc))
	require.ErrorIs(t, err, codec.ErrMalformedIE)
	require.Contains(t, err.Error(), "additional update result")

	_, err = Encode(NewMessage(&DetachRequest{NASKeySetIdentifier: 0x10, DetachType: 1, EPSMobileIdentity: []byte{0xf6}}))
	require.ErrorIs(t, err, codec.ErrMalformedIE)
}
