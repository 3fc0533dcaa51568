// Copyright 2025, XivC

package machine

import (
	"errors"
	"fmt"
	"log"
)

// BIT_DEPTH is the width of every architectural register.
const BIT_DEPTH = 16

// Machine owns the whole datapath: register file, memories, arithmetic
// unit, devices, and control unit.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Acc          *Register
	AddrReg      *Register
	DataReg      *Register
	InstrPointer *Register

	InstrMem *InstructionMemory
	DataMem  *DataMemory
	Alu      *ArithmeticUnit
	Control  *ControlUnit

	Devices []Device
}

// New builds a machine from an initial image. Devices fill the data-memory
// window in slot order: input at address 0, output at address 1.
func New(image *Image, devs ...Device) (m *Machine, err error) {
	m = &Machine{
		Acc:          NewRegister(BIT_DEPTH),
		AddrReg:      NewRegister(BIT_DEPTH),
		DataReg:      NewRegister(BIT_DEPTH),
		InstrPointer: NewRegister(BIT_DEPTH),
		Devices:      devs,
	}

	m.InstrMem, err = NewInstructionMemory(m.InstrPointer, image.Program)
	if err != nil {
		m = nil
		return
	}

	data := make([]Number, len(image.Data))
	for n, value := range image.Data {
		data[n] = NewNumber(BIT_DEPTH, value)
	}

	m.DataMem, err = NewDataMemory(m.AddrReg, m.DataReg, devs, data)
	if err != nil {
		m = nil
		return
	}

	m.Alu = NewArithmeticUnit(m.Acc, m.AddrReg, m.DataReg, m.InstrPointer)
	m.Control = NewControlUnit(m.Acc, m.AddrReg, m.DataReg, m.InstrPointer, m.InstrMem, m.DataMem, m.Alu)

	return
}

// Step performs one control-unit step. A halted machine reports done and
// changes nothing.
func (m *Machine) Step() (done bool, err error) {
	m.Control.Verbose = m.Verbose

	err = m.Control.Step()
	if errors.Is(err, ErrHalted) {
		err = nil
		done = true

		if m.Verbose {
			log.Printf("machine: halted")
		}
	}

	return
}

// Run steps the machine until it halts.
func (m *Machine) Run() (err error) {
	for {
		var done bool
		done, err = m.Step()
		if err != nil || done {
			return
		}
	}
}

// String formats the register file and halt state.
func (m *Machine) String() (text string) {
	regs := []struct {
		name string
		reg  *Register
	}{
		{"acc", m.Acc},
		{"addr", m.AddrReg},
		{"data", m.DataReg},
		{"ip", m.InstrPointer},
	}
	for _, r := range regs {
		text += fmt.Sprintf("% 5s: %v\n", r.name, r.reg.Value())
	}
	text += fmt.Sprintf("% 5s: %v\n", "halt", m.Control.Halted())

	return
}
