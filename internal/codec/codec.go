// internal/codec/codec.go
// Package codec implements the raw register decode and encode rules of the
// Stiebel Eltron ISG. All functions are pure: no IO, no state.
package codec

import (
	"fmt"
	"math"
)

// ScaledSentinel is the signed raw value the ISG reports for a sensor that
// is not fitted. It must never be interpreted as a measurement.
const ScaledSentinel int16 = -32768

// StatusSentinel marks WPM status words that do not apply to the current
// system configuration. Distinct from ScaledSentinel: this one is unsigned.
const StatusSentinel uint16 = 32768

// RangeError reports a setpoint whose scaled register value does not fit
// the signed 16-bit register domain. The write is not attempted.
type RangeError struct {
	Value float64
	Scale int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("codec: value %v at scale %d does not fit into a 16-bit register", e.Value, e.Scale)
}

// DecodeScaled converts a signed register word into an engineering value.
// divisor selects the resolution (10 = one decimal, 100 = two decimals);
// 0 means the default of 10. ok is false for the not-fitted sentinel.
func DecodeScaled(raw int16, divisor int) (value float64, ok bool) {
	if raw == ScaledSentinel {
		return 0, false
	}
	if divisor == 0 {
		divisor = 10
	}
	return float64(raw) / float64(divisor), true
}

// DecodeFlag tests one bit of a packed state word.
func DecodeFlag(word uint16, bit uint8) bool {
	return word&(1<<bit) != 0
}

// DecodeCompound32 joins a lifetime counter split across two registers.
// The device stores full units of unitScale in the high word and the
// remainder in the low word; unitScale 0 means the default of 1000.
func DecodeCompound32(high, low uint16, unitScale int) int {
	if unitScale == 0 {
		unitScale = 1000
	}
	return int(high)*unitScale + int(low)
}

// DecodeStatus converts an unsigned status word. ok is false when the word
// carries the not-applicable sentinel.
func DecodeStatus(word uint16) (value uint16, ok bool) {
	if word == StatusSentinel {
		return 0, false
	}
	return word, true
}

// DecodeFault renders the active-error word as text. The sentinel means the
// controller has no pending fault.
func DecodeFault(word uint16) string {
	if word == StatusSentinel {
		return "no error"
	}
	return fmt.Sprintf("error %d", word)
}

// EncodeScaled converts a setpoint into its register word, rounding half
// away from zero. scale 0 means the default of 10. The caller gets a
// *RangeError when the scaled value leaves the signed 16-bit domain.
func EncodeScaled(value float64, scale int) (uint16, error) {
	if scale == 0 {
		scale = 10
	}

	scaled := value * float64(scale)
	var rounded float64
	if scaled >= 0 {
		rounded = math.Floor(scaled + 0.5)
	} else {
		rounded = math.Ceil(scaled - 0.5)
	}

	if rounded < math.MinInt16 || rounded > math.MaxInt16 {
		return 0, &RangeError{Value: value, Scale: scale}
	}

	return uint16(int16(rounded)), nil
}
