// Package device implements the stream-backed peripherals attached to the
// machine's memory-mapped device window.
package device

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/XivC/csa-lab3/machine"
)

// BIT_DEPTH is the payload width of every device.
const BIT_DEPTH = 16

// Input replays a rune stream one value per read. An exhausted stream
// reads zero forever. Writes are dropped.
type Input struct {
	buffer  []machine.Number
	pointer int
}

// NewInput loads the whole source into the device buffer, one Number per
// rune.
func NewInput(source io.Reader) (in *Input, err error) {
	in = &Input{}

	reader := bufio.NewReader(source)
	for {
		var r rune
		r, _, err = reader.ReadRune()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			in = nil
			return
		}

		in.buffer = append(in.buffer, machine.NewNumber(BIT_DEPTH, int(r)))
	}
}

// Read returns the next pending value, or zero once the stream is
// exhausted.
func (in *Input) Read() (n machine.Number, err error) {
	if in.pointer >= len(in.buffer) {
		n = machine.NewNumber(BIT_DEPTH, 0)
		return
	}

	n = in.buffer[in.pointer]
	in.pointer += 1

	return
}

// Write drops the value.
func (in *Input) Write(machine.Number) error {
	return nil
}

// Pending returns the count of values not yet read.
func (in *Input) Pending() int {
	return len(in.buffer) - in.pointer
}

// Output encodes every written value as one rune on its sink. The device
// is write-only.
type Output struct {
	sink io.Writer
}

// NewOutput attaches the device to its sink.
func NewOutput(sink io.Writer) *Output {
	return &Output{sink: sink}
}

// Read fails: the output device produces nothing.
func (out *Output) Read() (n machine.Number, err error) {
	n = machine.NewNumber(BIT_DEPTH, 0)
	err = ErrNotReadable

	return
}

// Write appends the value to the sink as a single rune.
func (out *Output) Write(n machine.Number) (err error) {
	r := rune(n.Value())
	if !utf8.ValidRune(r) {
		err = ErrCodePoint(n.Value())
		return
	}

	_, err = io.WriteString(out.sink, string(r))

	return
}
