package fgsm

import (
	"fmt"
	"strings"

	"github.com/ellanetworks/nascodec/lib/nas/codec"
)

const maxDNNLen = 100

// DNN is the value of a DNN IE: an APN in length-prefixed label encoding (TS 23.003 9.1).
type DNN []byte

// NewDNN encodes a dotted name such as "internet" or "ims.mnc001.mcc001.gprs".
func NewDNN(name string) (DNN, error) {
	if name == "" {
		return nil, fmt.Errorf("empty DNN: %w", codec.ErrMalformedIE)
	}

	w := codec.NewWriter(make([]byte, maxDNNLen))
	for _, label := range strings.Split(name, ".") {
		if label == "" || len(label) > 63 {
			return nil, fmt.Errorf("invalid DNN label %q: %w", label, codec.ErrMalformedIE)
		}
		if err := w.LengthPrefixed(1, []byte(label)); err != nil {
			return nil, fmt.Errorf("DNN longer than %d octets: %w", maxDNNLen, codec.ErrMalformedIE)
		}
	}

	return DNN(w.Bytes()), nil
}

// String decodes the label encoding. A value that is not well formed is returned as hex.
func (d DNN) String() string {
	r := codec.NewRegion(d, 0)
	labels := []string{}

	for r.Len() > 0 {
		label, err := r.LengthPrefixed(1)
		if err != nil || len(label) == 0 {
			return fmt.Sprintf("%x", []byte(d))
		}
		labels = append(labels, string(label))
	}

	return strings.Join(labels, ".")
}
