package machine

import (
	"log"
	"strings"
)

// ALU_BIT_DEPTH is the width of the arithmetic unit, independent of the
// widths of the registers on its buses.
const ALU_BIT_DEPTH = 16

// Signal is a set of control lines into the arithmetic unit.
type Signal int

const (
	SIGNAL_INC       = Signal(1 << iota) // start the result at one
	SIGNAL_INV_LEFT                      // negate bus A
	SIGNAL_INV_RIGHT                     // negate bus B
)

// Has reports whether every line in mask is raised.
func (s Signal) Has(mask Signal) bool {
	return s&mask == mask
}

func (s Signal) String() string {
	if s == 0 {
		return "pass"
	}

	var lines []string
	if s.Has(SIGNAL_INC) {
		lines = append(lines, "inc")
	}
	if s.Has(SIGNAL_INV_LEFT) {
		lines = append(lines, "inv_left")
	}
	if s.Has(SIGNAL_INV_RIGHT) {
		lines = append(lines, "inv_right")
	}

	return strings.Join(lines, "+")
}

// ArithmeticUnit is the adder shared by the whole register file. Bus A
// carries the accumulator and the instruction pointer, bus B the data and
// address registers. A bus value is the bitwise OR of every register
// read-gated onto it. The result is broadcast back to all four registers
// and latches wherever a write gate is open.
type ArithmeticUnit struct {
	Verbose bool // Set to enable verbose logging.

	acc          *Register
	addrReg      *Register
	dataReg      *Register
	instrPointer *Register
}

// NewArithmeticUnit wires the unit to the four registers it serves.
func NewArithmeticUnit(acc, addrReg, dataReg, instrPointer *Register) *ArithmeticUnit {
	return &ArithmeticUnit{
		acc:          acc,
		addrReg:      addrReg,
		dataReg:      dataReg,
		instrPointer: instrPointer,
	}
}

// Perform runs one combine-and-broadcast cycle under the given signals.
func (alu *ArithmeticUnit) Perform(signals Signal) {
	left := NewNumber(ALU_BIT_DEPTH, alu.acc.Read().Value()|alu.instrPointer.Read().Value())
	right := NewNumber(ALU_BIT_DEPTH, alu.dataReg.Read().Value()|alu.addrReg.Read().Value())

	res := NewNumber(ALU_BIT_DEPTH, 0)
	if signals.Has(SIGNAL_INC) {
		res = NewNumber(ALU_BIT_DEPTH, 1)
	}
	if signals.Has(SIGNAL_INV_LEFT) {
		left = left.Neg()
	}
	if signals.Has(SIGNAL_INV_RIGHT) {
		right = right.Neg()
	}

	res = res.Add(left).Add(right)

	if alu.Verbose {
		log.Printf("alu: %v [%v] %v -> %v", left, signals, right, res)
	}

	for _, reg := range []*Register{alu.acc, alu.instrPointer, alu.addrReg, alu.dataReg} {
		reg.Write(res)
	}
}
