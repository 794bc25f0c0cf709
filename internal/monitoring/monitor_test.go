package monitoring

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ellanetworks/nascodec/lib/nas"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMonitorCountsCodecCalls(t *testing.T) {
	m := NewMonitor("test")
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	c := nas.New(m)

	status, err := hex.DecodeString("2e0100d61b")
	require.NoError(t, err)

	_, _, err = c.Decode(status)
	require.NoError(t, err)
	_, _, err = c.Decode(status[:4])
	require.Error(t, err)
	_, _, err = c.Decode([]byte{0x7e, 0x00, 0x41})
	require.Error(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(m.Messages().WithLabelValues("decode", "5GSM", "5GSM Status")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors().WithLabelValues("decode", "5GSM", "buffer_too_short")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors().WithLabelValues("decode", "unknown", "protocol_not_supported")))

	expected := `
# HELP test_nas_errors_total NAS codec failures by kind
# TYPE test_nas_errors_total counter
test_nas_errors_total{family="5GSM",kind="buffer_too_short",op="decode"} 1
test_nas_errors_total{family="unknown",kind="protocol_not_supported",op="decode"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_nas_errors_total"))
}

func TestMonitorRegisterTwice(t *testing.T) {
	m := NewMonitor("test")
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	require.Error(t, m.Register(reg))
}
