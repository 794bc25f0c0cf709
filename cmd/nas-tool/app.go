package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ellanetworks/nascodec/internal/config"
	"github.com/ellanetworks/nascodec/internal/logger"
	"github.com/ellanetworks/nascodec/internal/monitoring"
	"github.com/ellanetworks/nascodec/lib/nas"
	"github.com/ellanetworks/nascodec/lib/nas/emm"
	"github.com/ellanetworks/nascodec/lib/nas/fgsm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type tool struct {
	out      io.Writer
	codec    *nas.Codec
	registry *prometheus.Registry
}

func newApp(out io.Writer) *cli.App {
	t := &tool{out: out}

	return &cli.App{
		Name:      "nas-tool",
		Usage:     "decode and inspect plain NAS messages",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringSliceFlag{Name: "set", Usage: "override a config value, e.g. logs.level=debug"},
			&cli.BoolFlag{Name: "metrics", Usage: "print codec counters on exit"},
		},
		Before: t.setup,
		After:  t.printMetrics,
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode a hex encoded message and dump it",
				ArgsUsage: "<hex>",
				Action:    t.decode,
			},
			{
				Name:      "roundtrip",
				Usage:     "decode a message, encode it again and compare",
				ArgsUsage: "<hex>",
				Action:    t.roundTrip,
			},
			{
				Name:   "types",
				Usage:  "list the supported message types",
				Action: t.types,
			},
		},
	}
}

func (t *tool) setup(c *cli.Context) error {
	overrides := c.StringSlice("set")
	if c.Bool("metrics") {
		overrides = append(overrides, "metrics.enabled=true")
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Logs.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger.InitWriter(level, cfg.Logs.Format, c.App.ErrWriter)
	logger.SetOutput(c.App.ErrWriter)

	var sinks nas.MultiSink
	switch cfg.Logs.Backend {
	case "logrus":
		lvl, err := logrus.ParseLevel(cfg.Logs.Level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logger.SetLogLevel(lvl)
		logger.AppLog.Debugf("logging codec events through logrus at %s level", lvl)
		sinks = append(sinks, logger.NewLogrusSink(logger.NASLog))
	default:
		sinks = append(sinks, logger.NewZapSink(logger.NasLogger))
	}

	if cfg.Metrics.Enabled {
		m := monitoring.NewMonitor(cfg.Metrics.Namespace)
		t.registry = prometheus.NewRegistry()
		if err := m.Register(t.registry); err != nil {
			return fmt.Errorf("could not register metrics: %w", err)
		}
		sinks = append(sinks, m)
	}

	t.codec = nas.New(sinks)

	logger.CliLogger.Debug("configured", zap.String("format", cfg.Logs.Format), zap.String("backend", cfg.Logs.Backend), zap.Bool("metrics", cfg.Metrics.Enabled))

	return nil
}

func parseHex(c *cli.Context) ([]byte, error) {
	if c.NArg() == 0 {
		return nil, fmt.Errorf("missing hex argument")
	}

	s := strings.Join(c.Args().Slice(), "")
	s = strings.NewReplacer(" ", "", ":", "", "0x", "").Replace(s)

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not parse hex: %w", err)
	}

	return b, nil
}

func (t *tool) decode(c *cli.Context) error {
	b, err := parseHex(c)
	if err != nil {
		return err
	}

	m, n, err := t.codec.Decode(b)
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "%s %s, %d of %d octets\n", m.Family(), m.Name(), n, len(b))

	if m.EMM != nil {
		dumper.Fdump(t.out, m.EMM)
	} else {
		dumper.Fdump(t.out, m.GSM)
	}

	return nil
}

func (t *tool) roundTrip(c *cli.Context) error {
	b, err := parseHex(c)
	if err != nil {
		return err
	}

	m, n, err := t.codec.Decode(b)
	if err != nil {
		return err
	}

	out, err := t.codec.Encode(m)
	if err != nil {
		return err
	}

	if !bytes.Equal(out, b[:n]) {
		return fmt.Errorf("re-encoded %s differs: got %x, want %x", m.Name(), out, b[:n])
	}

	fmt.Fprintf(t.out, "%s: %d octets match\n", m.Name(), n)
	if n < len(b) {
		fmt.Fprintf(t.out, "%d trailing octets not consumed: %x\n", len(b)-n, b[n:])
	}

	return nil
}

func (t *tool) types(*cli.Context) error {
	for _, mt := range emm.MessageTypes() {
		fmt.Fprintf(t.out, "EMM  0x%02x %s\n", mt, emm.MessageName(mt))
	}

	for _, mt := range fgsm.MessageTypes() {
		fmt.Fprintf(t.out, "5GSM 0x%02x %s\n", mt, fgsm.MessageName(mt))
	}

	return nil
}

func (t *tool) printMetrics(*cli.Context) error {
	logger.Sync()

	if t.registry == nil {
		return nil
	}

	mfs, err := t.registry.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		fmt.Fprintln(t.out, l)
	}

	return nil
}
