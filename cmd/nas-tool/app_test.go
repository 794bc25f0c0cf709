package main

import (
	"bytes"
	"testing"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/stretchr/testify/require"
)

const attachAcceptHex = "0742015c060002f83900010003aabbcc"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"nas-tool"}, args...))
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", attachAcceptHex)
	require.NoError(t, err)
	require.Contains(t, out, "EMM AttachAccept, 16 of 16 octets")
	require.Contains(t, out, "AttachAccept")
	require.Contains(t, out, "T3412Value")
}

func TestDecodeCommandSplitHex(t *testing.T) {
	out, err := run(t, "decode", "2e 01 00 d6", "1b")
	require.NoError(t, err)
	require.Contains(t, out, "5GSM 5GSM Status, 5 of 5 octets")
}

func TestDecodeCommandErrors(t *testing.T) {
	_, err := run(t, "decode")
	require.Error(t, err)

	_, err = run(t, "decode", "zz")
	require.Error(t, err)

	_, err = run(t, "decode", "1742")
	require.ErrorIs(t, err, codec.ErrProtocolNotSupported)
}

func TestRoundTripCommand(t *testing.T) {
	out, err := run(t, "roundtrip", attachAcceptHex+"ee01")
	require.NoError(t, err)
	require.Contains(t, out, "AttachAccept: 16 octets match")
	require.Contains(t, out, "2 trailing octets not consumed: ee01")
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	require.Contains(t, out, "EMM  0x42 AttachAccept")
	require.Contains(t, out, "EMM  0x4d ServiceRequest")
	require.Contains(t, out, "5GSM 0xc2 PDU Session Establishment Accept")
}

func TestMetricsFlag(t *testing.T) {
	out, err := run(t, "--metrics", "--set", "metrics.namespace=cli", "decode", attachAcceptHex)
	require.NoError(t, err)
	require.Contains(t, out, `cli_nas_messages_total{family="EMM",message_type="AttachAccept",op="decode"} 1`)
}

func TestBadOverride(t *testing.T) {
	_, err := run(t, "--set", "logs.format=xml", "types")
	require.Error(t, err)
}

func TestLogBackends(t *testing.T) {
	out, err := run(t, "--set", "logs.backend=logrus", "--set", "logs.level=debug", "decode", "0742")
	require.Error(t, err)
	require.Contains(t, out, "logging codec events through logrus at debug level")
	require.Contains(t, out, "could not decode NAS message")
	require.Contains(t, out, "AttachAccept")

	out, err = run(t, "--set", "logs.backend=zap", "decode", "0742")
	require.Error(t, err)
	require.Contains(t, out, "could not decode NAS message")
	require.NotContains(t, out, "logging codec events through logrus")
}
