package machine

// DEVICE_WINDOW is the count of low data addresses mapped to devices.
const DEVICE_WINDOW = 4

// Window slot assignments.
const (
	DEVICE_ADDR_INPUT  = 0
	DEVICE_ADDR_OUTPUT = 1
)

// InstructionMemory is the instruction address space: one optional record
// per cell, addressed by the instruction pointer's gated value.
type InstructionMemory struct {
	instrPointer *Register
	cells        []*Instruction
}

// NewInstructionMemory builds the space and lays program out from address
// zero.
func NewInstructionMemory(instrPointer *Register, program []*Instruction) (mem *InstructionMemory, err error) {
	size := 1 << instrPointer.BitDepth()
	if len(program) >= size {
		err = &ErrImageTooLarge{Section: "program", Count: len(program), Limit: size - 1}
		return
	}

	mem = &InstructionMemory{
		instrPointer: instrPointer,
		cells:        make([]*Instruction, size),
	}
	copy(mem.cells, program)

	return
}

// Read returns the record at the instruction pointer's gated value, or nil
// for an empty cell.
func (mem *InstructionMemory) Read() (in *Instruction, err error) {
	addr := mem.instrPointer.Read().Value()
	if addr < 0 {
		err = ErrAddressNegative(addr)
		return
	}

	in = mem.cells[addr]

	return
}

// DataMemory is the data address space: one Number per cell, reached
// through the address and data registers. Addresses below DEVICE_WINDOW
// alias the attached devices.
type DataMemory struct {
	addrReg *Register
	dataReg *Register
	devs    []Device
	cells   []Number
}

// NewDataMemory builds the space, lays data out from address zero, and
// attaches devs to the window slots in order.
func NewDataMemory(addrReg, dataReg *Register, devs []Device, data []Number) (mem *DataMemory, err error) {
	size := 1 << addrReg.BitDepth()
	if len(data) >= size {
		err = &ErrImageTooLarge{Section: "data", Count: len(data), Limit: size - 1}
		return
	}

	mem = &DataMemory{
		addrReg: addrReg,
		dataReg: dataReg,
		devs:    devs,
		cells:   make([]Number, size),
	}
	for n := range mem.cells {
		mem.cells[n] = NewNumber(dataReg.BitDepth(), 0)
	}
	copy(mem.cells, data)

	return
}

// Cell returns the Number stored at addr, bypassing the register path.
func (mem *DataMemory) Cell(addr int) Number {
	return mem.cells[addr]
}

func (mem *DataMemory) device(addr int) (dev Device, err error) {
	if addr >= len(mem.devs) || mem.devs[addr] == nil {
		err = ErrDeviceMissing(addr)
		return
	}

	dev = mem.devs[addr]

	return
}

// Read copies the addressed cell into the data register. A window address
// consults its device first: the device's value replaces the cell before
// the copy, whether or not the data register latches it.
func (mem *DataMemory) Read() (err error) {
	addr := mem.addrReg.Read().Value()
	if addr < 0 {
		err = ErrAddressNegative(addr)
		return
	}

	if addr < DEVICE_WINDOW {
		var dev Device
		dev, err = mem.device(addr)
		if err != nil {
			return
		}

		var n Number
		n, err = dev.Read()
		if err != nil {
			return
		}

		mem.cells[addr] = n
	}

	mem.dataReg.Write(mem.cells[addr])

	return
}

// Write stores the data register's gated value at the addressed cell. A
// window address forwards the value to its device first, then stores it
// as well.
func (mem *DataMemory) Write() (err error) {
	addr := mem.addrReg.Read().Value()
	if addr < 0 {
		err = ErrAddressNegative(addr)
		return
	}

	payload := NewNumber(mem.dataReg.BitDepth(), mem.dataReg.Read().Value())

	if addr < DEVICE_WINDOW {
		var dev Device
		dev, err = mem.device(addr)
		if err != nil {
			return
		}

		err = dev.Write(payload)
		if err != nil {
			return
		}
	}

	mem.cells[addr] = payload

	return
}
