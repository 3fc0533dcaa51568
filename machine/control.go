// Copyright 2025, XivC

package machine

import (
	"log"
)

// ControlUnit sequences fetch, execute, and advance for every step. Each
// opcode routine opens the gates of its sources and destinations, invokes
// the arithmetic unit, and closes them again; on an error the gates are
// left exactly as the failing point had them.
type ControlUnit struct {
	Verbose bool // Set to enable verbose logging.

	acc          *Register
	addrReg      *Register
	dataReg      *Register
	instrPointer *Register
	instrMem     *InstructionMemory
	dataMem      *DataMemory
	alu          *ArithmeticUnit

	instruction *Instruction
	lockAdvance bool
	halted      bool
}

// NewControlUnit wires a control unit over the datapath.
func NewControlUnit(
	acc, addrReg, dataReg, instrPointer *Register,
	instrMem *InstructionMemory,
	dataMem *DataMemory,
	alu *ArithmeticUnit,
) *ControlUnit {
	return &ControlUnit{
		acc:          acc,
		addrReg:      addrReg,
		dataReg:      dataReg,
		instrPointer: instrPointer,
		instrMem:     instrMem,
		dataMem:      dataMem,
		alu:          alu,
	}
}

// Halted reports whether a HLT has executed.
func (cu *ControlUnit) Halted() bool {
	return cu.halted
}

// Instruction returns the most recently fetched record.
func (cu *ControlUnit) Instruction() *Instruction {
	return cu.instruction
}

// Step runs one fetch, execute, advance cycle. A halted control unit
// reports ErrHalted and touches nothing.
func (cu *ControlUnit) Step() (err error) {
	if cu.halted {
		err = ErrHalted
		return
	}

	cu.alu.Verbose = cu.Verbose
	cu.lockAdvance = false

	err = cu.fetchInstruction()
	if err != nil {
		return
	}

	err = cu.execute()
	if err != nil {
		return
	}

	cu.advance()

	return
}

func (cu *ControlUnit) fetchInstruction() (err error) {
	cu.instrPointer.OpenRead()
	cu.instruction, err = cu.instrMem.Read()
	if err != nil {
		return
	}
	cu.instrPointer.CloseRead()

	addr := cu.instrPointer.Value().Value()
	if cu.instruction == nil {
		err = ErrInstructionMissing(addr)
		return
	}

	if cu.Verbose {
		log.Printf("%04x: %v", addr, cu.instruction)
	}

	return
}

func (cu *ControlUnit) execute() (err error) {
	switch cu.instruction.Operation {
	case OP_INC:
		cu.opInc()
	case OP_INV:
		cu.opInv()
	case OP_ADD:
		err = cu.opAdd(0)
	case OP_SUB:
		err = cu.opAdd(SIGNAL_INV_RIGHT)
	case OP_LD:
		err = cu.opLoad()
	case OP_SV:
		err = cu.opStore()
	case OP_JMP:
		err = cu.opJump()
	case OP_JZ:
		if cu.acc.Value().Value() == 0 {
			err = cu.opJump()
		}
	case OP_JP:
		if cu.acc.Value().Value() > 0 {
			err = cu.opJump()
		}
	case OP_JN:
		if cu.acc.Value().Value() < 0 {
			err = cu.opJump()
		}
	case OP_HLT:
		cu.halted = true
	default:
		err = &ErrInstruction{Instruction: cu.instruction, Err: ErrOperationInvalid}
	}

	return
}

// fetchOperand resolves the instruction's operand into the data register.
func (cu *ControlUnit) fetchOperand() (err error) {
	value := NewNumber(cu.acc.BitDepth(), cu.instruction.Data)

	cu.dataReg.OpenWrite()

	switch cu.instruction.Fetch {
	case FETCH_CONST:
		cu.dataReg.Write(value)
	case FETCH_CONST_REL:
		cu.dataReg.Write(cu.instrPointer.Value().Add(value))
	case FETCH_ACC:
		cu.acc.OpenRead()
		cu.alu.Perform(0)
		cu.acc.CloseRead()
	case FETCH_ABS_MEM:
		err = cu.fetchFromMemory(value, false)
	case FETCH_REL_MEM:
		err = cu.fetchFromMemory(value, true)
	default:
		err = &ErrInstruction{Instruction: cu.instruction, Err: ErrFetchInvalid}
	}
	if err != nil {
		return
	}

	cu.dataReg.CloseWrite()

	return
}

// fetchFromMemory resolves a memory operand: the target address latches
// into the address register, then the addressed cell flows into the data
// register. The address register's write gate stays open for the rest of
// the step, so later broadcasts of the same instruction latch into it too.
func (cu *ControlUnit) fetchFromMemory(value Number, rel bool) (err error) {
	cu.addrReg.OpenWrite()

	addr := value
	if rel {
		addr = cu.addrReg.Value().Add(value)
	}
	cu.addrReg.Write(addr)

	cu.addrReg.OpenRead()
	err = cu.dataMem.Read()
	if err != nil {
		return
	}
	cu.addrReg.CloseRead()

	return
}

// dataToAddr transfers the data register into the address register.
func (cu *ControlUnit) dataToAddr() {
	cu.dataReg.OpenRead()
	cu.addrReg.OpenWrite()

	cu.alu.Perform(0)

	cu.dataReg.CloseRead()
	cu.addrReg.CloseWrite()
}

func (cu *ControlUnit) opInc() {
	cu.acc.OpenRead()
	cu.acc.OpenWrite()

	cu.alu.Perform(SIGNAL_INC)

	cu.acc.CloseRead()
	cu.acc.CloseWrite()
}

func (cu *ControlUnit) opInv() {
	cu.acc.OpenRead()
	cu.acc.OpenWrite()

	cu.alu.Perform(SIGNAL_INV_LEFT)

	cu.acc.CloseRead()
	cu.acc.CloseWrite()
}

func (cu *ControlUnit) opAdd(signals Signal) (err error) {
	err = cu.fetchOperand()
	if err != nil {
		return
	}

	cu.dataReg.OpenRead()
	cu.acc.OpenRead()
	cu.acc.OpenWrite()

	cu.alu.Perform(signals)

	cu.dataReg.CloseRead()
	cu.acc.CloseWrite()
	cu.acc.CloseRead()

	return
}

func (cu *ControlUnit) opLoad() (err error) {
	err = cu.fetchOperand()
	if err != nil {
		return
	}

	cu.dataToAddr()

	// mem -> data_reg
	cu.addrReg.OpenRead()
	cu.dataReg.OpenWrite()
	err = cu.dataMem.Read()
	if err != nil {
		return
	}
	cu.addrReg.CloseRead()
	cu.dataReg.CloseWrite()

	// data_reg -> acc
	cu.dataReg.OpenRead()
	cu.acc.OpenWrite()
	cu.alu.Perform(0)
	cu.dataReg.CloseRead()
	cu.acc.CloseWrite()

	return
}

func (cu *ControlUnit) opStore() (err error) {
	err = cu.fetchOperand()
	if err != nil {
		return
	}

	cu.dataToAddr()

	// acc -> data_reg
	cu.acc.OpenRead()
	cu.dataReg.OpenWrite()
	cu.alu.Perform(0)
	cu.acc.CloseRead()
	cu.dataReg.CloseWrite()

	// data_reg -> mem
	cu.dataReg.OpenRead()
	cu.addrReg.OpenRead()
	err = cu.dataMem.Write()
	if err != nil {
		return
	}
	cu.dataReg.CloseRead()
	cu.addrReg.CloseRead()

	return
}

func (cu *ControlUnit) opJump() (err error) {
	err = cu.fetchOperand()
	if err != nil {
		return
	}

	cu.lockAdvance = true

	cu.dataReg.OpenRead()
	cu.instrPointer.OpenWrite()
	cu.alu.Perform(0)
	cu.dataReg.CloseRead()
	cu.instrPointer.CloseWrite()

	return
}

func (cu *ControlUnit) advance() {
	if cu.lockAdvance {
		return
	}

	cu.instrPointer.OpenRead()
	cu.instrPointer.OpenWrite()

	cu.alu.Perform(SIGNAL_INC)

	cu.instrPointer.CloseRead()
	cu.instrPointer.CloseWrite()
}
