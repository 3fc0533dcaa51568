package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// load latches value into reg through its write gate.
func load(reg *Register, value int) {
	reg.OpenWrite()
	reg.Write(NewNumber(reg.BitDepth(), value))
	reg.CloseWrite()
}

// stubDevice replays canned reads and captures writes.
type stubDevice struct {
	reads []Number
	wrote []Number
	fail  error
}

func (dev *stubDevice) Read() (n Number, err error) {
	if dev.fail != nil {
		err = dev.fail
		return
	}

	if len(dev.reads) == 0 {
		n = NewNumber(16, 0)
		return
	}

	n = dev.reads[0]
	dev.reads = dev.reads[1:]

	return
}

func (dev *stubDevice) Write(n Number) error {
	if dev.fail != nil {
		return dev.fail
	}

	dev.wrote = append(dev.wrote, n)

	return nil
}

func doMachine(t *testing.T, image *Image, devs ...Device) (m *Machine) {
	assert := assert.New(t)

	m, err := New(image, devs...)
	assert.NoError(err)
	if err != nil {
		t.Fatalf("%v", err)
	}

	return
}

func TestMachineNew(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, &Image{Data: []int{7, -2}})

	assert.Equal(BIT_DEPTH, m.Acc.BitDepth())
	assert.Equal(BIT_DEPTH, m.AddrReg.BitDepth())
	assert.Equal(BIT_DEPTH, m.DataReg.BitDepth())
	assert.Equal(BIT_DEPTH, m.InstrPointer.BitDepth())

	assert.Equal(7, m.DataMem.Cell(0).Value())
	assert.Equal(-2, m.DataMem.Cell(1).Value())
	assert.Equal(0, m.DataMem.Cell(100).Value())
	assert.False(m.Control.Halted())
}

func TestMachineNewTooLarge(t *testing.T) {
	assert := assert.New(t)

	_, err := New(&Image{Program: make([]*Instruction, 1<<BIT_DEPTH)})
	var tooLarge *ErrImageTooLarge
	if assert.ErrorAs(err, &tooLarge) {
		assert.Equal("program", tooLarge.Section)
	}

	_, err = New(&Image{Data: make([]int, 1<<BIT_DEPTH)})
	if assert.ErrorAs(err, &tooLarge) {
		assert.Equal("data", tooLarge.Section)
	}
}

func TestMachineStoreAndHalt(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, &Image{Program: []*Instruction{
		MakeInstructionFetch(OP_ADD, FETCH_CONST, 5),
		MakeInstructionFetch(OP_SV, FETCH_CONST, 10),
		MakeInstruction(OP_HLT),
	}})

	err := m.Run()
	assert.NoError(err)
	assert.Equal(5, m.DataMem.Cell(10).Value())
	assert.True(m.Control.Halted())
}

func TestMachineJumpOverIncrement(t *testing.T) {
	assert := assert.New(t)

	// LD const 0 reads the input device; empty input loads zero, so the
	// JZ skips the INC.
	m := doMachine(t, &Image{Program: []*Instruction{
		MakeInstructionFetch(OP_LD, FETCH_CONST, 0),
		MakeInstructionFetch(OP_JZ, FETCH_CONST_REL, 2),
		MakeInstruction(OP_INC),
		MakeInstruction(OP_HLT),
	}}, &stubDevice{}, &stubDevice{})

	err := m.Run()
	assert.NoError(err)
	assert.Equal(0, m.Acc.Value().Value())
	assert.Equal(4, m.InstrPointer.Value().Value())
	assert.True(m.Control.Halted())
}

func TestMachineDeviceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	in := &stubDevice{reads: []Number{NewNumber(16, 'A')}}
	out := &stubDevice{}

	// Copy one value from the input device to the output device.
	m := doMachine(t, &Image{Program: []*Instruction{
		MakeInstructionFetch(OP_LD, FETCH_CONST, 0),
		MakeInstructionFetch(OP_SV, FETCH_CONST, 1),
		MakeInstruction(OP_HLT),
	}}, in, out)

	err := m.Run()
	assert.NoError(err)
	if assert.Equal(1, len(out.wrote)) {
		assert.Equal(int('A'), out.wrote[0].Value())
	}

	// The store also landed in the backing cell.
	assert.Equal(int('A'), m.DataMem.Cell(1).Value())
	assert.Equal(int('A'), m.DataMem.Cell(0).Value())
}

func TestMachineDeviceFault(t *testing.T) {
	assert := assert.New(t)

	// No device behind window address 2.
	m := doMachine(t, &Image{Program: []*Instruction{
		MakeInstructionFetch(OP_LD, FETCH_CONST, 2),
	}}, &stubDevice{}, &stubDevice{})

	err := m.Run()
	var missing ErrDeviceMissing
	if assert.ErrorAs(err, &missing) {
		assert.Equal(2, int(missing))
	}

	// A failing device write propagates out of the store and leaves the
	// backing cell untouched.
	jam := errors.New("jam")
	m = doMachine(t, &Image{
		Data: []int{0, 33},
		Program: []*Instruction{
			MakeInstructionFetch(OP_SV, FETCH_CONST, 1),
		},
	}, &stubDevice{}, &stubDevice{fail: jam})

	err = m.Run()
	assert.ErrorIs(err, jam)
	assert.Equal(33, m.DataMem.Cell(1).Value())
}

func TestMachineStepAfterHalt(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, &Image{Program: []*Instruction{MakeInstruction(OP_HLT)}})

	done, err := m.Step()
	assert.NoError(err)
	assert.False(done)
	assert.True(m.Control.Halted())

	before := m.String()

	done, err = m.Step()
	assert.NoError(err)
	assert.True(done)

	done, err = m.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(before, m.String())
}

func TestMachineString(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, &Image{})

	text := m.String()
	for _, name := range []string{"acc", "addr", "data", "ip", "halt"} {
		assert.Contains(text, name)
	}
}
