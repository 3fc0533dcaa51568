package machine

import (
	"errors"

	"github.com/XivC/csa-lab3/translate"
)

var f = translate.From

var (
	// ErrHalted is the halt signal: the designed end of a run, not a
	// fault.
	ErrHalted = errors.New(f("machine halted"))

	// Execute errors
	ErrOperationInvalid = errors.New(f("invalid operation"))
	ErrFetchInvalid     = errors.New(f("invalid fetch type"))
)

// ErrInstruction reports a fault in a specific instruction.
type ErrInstruction struct {
	Instruction *Instruction
	Err         error
}

func (err *ErrInstruction) Error() string {
	return f("instruction '%v': %v", err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrOperationUnknown string

func (err ErrOperationUnknown) Error() string {
	return f("unknown operation '%v'", string(err))
}

type ErrFetchUnknown string

func (err ErrFetchUnknown) Error() string {
	return f("unknown fetch type '%v'", string(err))
}

type ErrInstructionMissing int

func (err ErrInstructionMissing) Error() string {
	return f("no instruction at address %d", int(err))
}

type ErrAddressNegative int

func (err ErrAddressNegative) Error() string {
	return f("negative address %d", int(err))
}

type ErrDeviceMissing int

func (err ErrDeviceMissing) Error() string {
	return f("no device at address %d", int(err))
}

type ErrImageTooLarge struct {
	Section string // "data" or "program"
	Count   int
	Limit   int
}

func (err *ErrImageTooLarge) Error() string {
	return f("%s image of %d cells does not fit in %d", err.Section, err.Count, err.Limit)
}
