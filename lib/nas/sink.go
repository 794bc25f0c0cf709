package nas

type Op uint8

const (
	OpDecode Op = iota + 1
	OpEncode
)

func (o Op) String() string {
	switch o {
	case OpDecode:
		return "decode"
	case OpEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Event describes the outcome of one Decode or Encode call. Err is nil on success; Offset is
// only meaningful when Err carries one.
type Event struct {
	Op          Op
	Family      Family
	MessageType uint8
	Err         error
	Offset      int
}

// Sink receives codec events. Implementations must be safe for concurrent use.
type Sink interface {
	Observe(Event)
}

type NopSink struct{}

func (NopSink) Observe(Event) {}

// MultiSink forwards every event to each of its sinks in order.
type MultiSink []Sink

func (s MultiSink) Observe(ev Event) {
	for _, sink := range s {
		sink.Observe(ev)
	}
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Observe(ev Event) {
	f(ev)
}
