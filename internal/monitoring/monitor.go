package monitoring

import (
	"github.com/ellanetworks/nascodec/lib/nas"
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/prometheus/client_golang/prometheus"
)

// Monitor counts codec calls per operation, family, message and failure kind. It is a nas.Sink.
type Monitor struct {
	messages *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

func NewMonitor(namespace string) *Monitor {
	return &Monitor{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "nas",
				Name:      "messages_total",
				Help:      "NAS messages decoded or encoded, including failures",
			},
			[]string{"op", "family", "message_type"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "nas",
				Name:      "errors_total",
				Help:      "NAS codec failures by kind",
			},
			[]string{"op", "family", "kind"},
		),
	}
}

// Register adds the monitor's collectors to reg.
func (m *Monitor) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.messages, m.errors} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (m *Monitor) Observe(ev nas.Event) {
	op := ev.Op.String()
	family := ev.Family.String()

	m.messages.WithLabelValues(op, family, nas.MessageName(ev.Family, ev.MessageType)).Inc()

	if ev.Err != nil {
		m.errors.WithLabelValues(op, family, codec.Kind(ev.Err)).Inc()
	}
}

func (m *Monitor) Messages() *prometheus.CounterVec {
	return m.messages
}

func (m *Monitor) Errors() *prometheus.CounterVec {
	return m.errors
}
