// Copyright 2025, XivC

package machine

import (
	"strconv"
)

// Number is a fixed-width signed value. Width is enforced by truncation:
// the magnitude keeps only its low bitDepth bits and the sign of the
// assigned value is reapplied. Signed magnitude, not two's complement.
type Number struct {
	bitDepth int
	value    int
}

// NewNumber creates a Number of the given width holding value, truncated.
func NewNumber(bitDepth, value int) Number {
	if bitDepth < 1 {
		panic("machine: bit depth must be positive")
	}

	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	magnitude &= 1<<bitDepth - 1
	if value < 0 {
		magnitude = -magnitude
	}

	return Number{bitDepth: bitDepth, value: magnitude}
}

// Value returns the signed value.
func (n Number) Value() int {
	return n.value
}

// BitDepth returns the width in bits.
func (n Number) BitDepth() int {
	return n.bitDepth
}

// Add returns n + m, as wide as the narrower operand.
func (n Number) Add(m Number) Number {
	return NewNumber(min(n.bitDepth, m.bitDepth), n.value+m.value)
}

// Sub returns n - m, as wide as the narrower operand.
func (n Number) Sub(m Number) Number {
	return NewNumber(min(n.bitDepth, m.bitDepth), n.value-m.value)
}

// Neg returns n with the sign flipped.
func (n Number) Neg() Number {
	return NewNumber(n.bitDepth, -n.value)
}

func (n Number) String() string {
	return strconv.Itoa(n.value)
}
