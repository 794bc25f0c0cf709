package fgsm

import (
	"fmt"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

const sessionAMBRLen = 6

// 9.11.4.14 Unit for Session-AMBR, also used by QoS flow bit rate parameters
const (
	BitRateUnit1Kbps uint8 = 0x01
	BitRateUnit1Mbps uint8 = 0x06
	BitRateUnit1Gbps uint8 = 0x0b
	BitRateUnit1Tbps uint8 = 0x10
	BitRateUnit1Pbps uint8 = 0x15
	maxBitRateUnit   uint8 = 0x19
)

// 9.11.4.14 Session-AMBR
type SessionAMBR struct {
	DownlinkUnit uint8
	Downlink     uint16
	UplinkUnit   uint8
	Uplink       uint16
}

func (a SessionAMBR) DownlinkKbps() (uint64, bool) {
	return toKbps(a.DownlinkUnit, a.Downlink)
}

func (a SessionAMBR) UplinkKbps() (uint64, bool) {
	return toKbps(a.UplinkUnit, a.Uplink)
}

func (a SessionAMBR) String() string {
	return fmt.Sprintf("downlink %s, uplink %s", rateString(a.DownlinkUnit, a.Downlink), rateString(a.UplinkUnit, a.Uplink))
}

func rateString(unit uint8, v uint16) string {
	kbps, ok := toKbps(unit, v)
	if !ok {
		return fmt.Sprintf("%d (unit 0x%02x)", v, unit)
	}

	return fmt.Sprintf("%d kbps", kbps)
}

// toKbps converts a value in one of the 4^n / 1000^m units of 9.11.4.14 to kbps.
func toKbps(unit uint8, v uint16) (uint64, bool) {
	if unit == 0 || unit > maxBitRateUnit {
		return 0, false
	}

	step := uint64(unit - 1)
	mult := uint64(1)
	for i := uint64(0); i < step/5; i++ {
		mult *= 1000
	}
	mult <<= 2 * (step % 5)

	return uint64(v) * mult, true
}

func (a *SessionAMBR) decode(r *codec.Reader) error {
	rr, err := r.SubPrefixed(1)
	if err != nil {
		return err
	}

	if a.DownlinkUnit, err = rr.Uint8(); err != nil {
		return err
	}
	if a.Downlink, err = rr.Uint16(); err != nil {
		return err
	}
	if a.UplinkUnit, err = rr.Uint8(); err != nil {
		return err
	}
	if a.Uplink, err = rr.Uint16(); err != nil {
		return err
	}

	return rr.Done()
}

func (a SessionAMBR) encode(w *codec.Writer) error {
	if err := w.Uint8(sessionAMBRLen); err != nil {
		return err
	}
	if err := w.Uint8(a.DownlinkUnit); err != nil {
		return err
	}
	if err := w.Uint16(a.Downlink); err != nil {
		return err
	}
	if err := w.Uint8(a.UplinkUnit); err != nil {
		return err
	}

	return w.Uint16(a.Uplink)
}
