package device

import (
	"errors"

	"github.com/XivC/csa-lab3/translate"
)

var f = translate.From

var (
	// ErrNotReadable reports a read from a write-only device.
	ErrNotReadable = errors.New(f("device is not readable"))
)

// ErrCodePoint is a value that does not encode as a rune.
type ErrCodePoint int

func (err ErrCodePoint) Error() string {
	return f("value %d is not a valid code point", int(err))
}
