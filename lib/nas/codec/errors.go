package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooShort is returned when a required field does not fit in the input or output buffer.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrProtocolNotSupported is returned when the protocol discriminator does not belong to the family.
	ErrProtocolNotSupported = errors.New("protocol not supported")
	// ErrWrongMessageType is returned for message types without a registered codec.
	ErrWrongMessageType = errors.New("wrong message type")
	// ErrMalformedIE is returned when the length accounting inside an information element is inconsistent.
	ErrMalformedIE = errors.New("malformed information element")
	// ErrIEOutOfRange is returned when a declared length runs past the enclosing element.
	ErrIEOutOfRange = errors.New("information element out of range")
	// ErrTooManyRules is returned when a QoS rules IE carries more rules than the protocol allows.
	ErrTooManyRules = errors.New("too many qos rules")
)

// Error carries the absolute offset at which a decode or encode failed.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(offset int, err error) error {
	return &Error{Offset: offset, Err: err}
}

// OffsetOf returns the offset recorded in err, if any.
func OffsetOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Offset, true
	}

	return 0, false
}

// Kind returns a short label for the failure class of err, suitable for logs and metric labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrBufferTooShort):
		return "buffer_too_short"
	case errors.Is(err, ErrProtocolNotSupported):
		return "protocol_not_supported"
	case errors.Is(err, ErrWrongMessageType):
		return "wrong_message_type"
	case errors.Is(err, ErrMalformedIE):
		return "malformed_ie"
	case errors.Is(err, ErrIEOutOfRange):
		return "ie_out_of_range"
	case errors.Is(err, ErrTooManyRules):
		return "too_many_rules"
	default:
		return "unknown"
	}
}
