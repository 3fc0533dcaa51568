package machine

import (
	"fmt"
)

// Operation selects the control-unit routine an instruction executes.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_INC = Operation(0)  // INC
	OP_INV = Operation(1)  // INV
	OP_ADD = Operation(2)  // ADD
	OP_SUB = Operation(3)  // SUB
	OP_LD  = Operation(4)  // LD
	OP_SV  = Operation(5)  // SV
	OP_JMP = Operation(6)  // JMP
	OP_JZ  = Operation(7)  // JZ
	OP_JP  = Operation(8)  // JP
	OP_JN  = Operation(9)  // JN
	OP_HLT = Operation(10) // HLT
)

// operationMap resolves mnemonics during decode.
var operationMap = map[string]Operation{
	"INC": OP_INC,
	"INV": OP_INV,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"LD":  OP_LD,
	"SV":  OP_SV,
	"JMP": OP_JMP,
	"JZ":  OP_JZ,
	"JP":  OP_JP,
	"JN":  OP_JN,
	"HLT": OP_HLT,
}

// ParseOperation resolves a mnemonic to its Operation.
func ParseOperation(name string) (op Operation, err error) {
	op, ok := operationMap[name]
	if !ok {
		err = ErrOperationUnknown(name)
	}

	return
}

// MarshalText encodes the operation as its mnemonic.
func (op Operation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText decodes a mnemonic.
func (op *Operation) UnmarshalText(text []byte) (err error) {
	*op, err = ParseOperation(string(text))
	return
}

// FetchType selects how an instruction's operand resolves to a value.
type FetchType int

//go:generate go tool stringer -linecomment -type=FetchType
const (
	FETCH_NONE      = FetchType(0) // none
	FETCH_CONST     = FetchType(1) // const
	FETCH_CONST_REL = FetchType(2) // const_rel
	FETCH_ACC       = FetchType(3) // acc
	FETCH_ABS_MEM   = FetchType(4) // abs_mem
	FETCH_REL_MEM   = FetchType(5) // rel_mem
)

// fetchMap resolves fetch-type names during decode. FETCH_NONE has no
// name: an operand-less instruction simply omits the fetch type.
var fetchMap = map[string]FetchType{
	"const":     FETCH_CONST,
	"const_rel": FETCH_CONST_REL,
	"acc":       FETCH_ACC,
	"abs_mem":   FETCH_ABS_MEM,
	"rel_mem":   FETCH_REL_MEM,
}

// ParseFetchType resolves a fetch-type name.
func ParseFetchType(name string) (fetch FetchType, err error) {
	fetch, ok := fetchMap[name]
	if !ok {
		err = ErrFetchUnknown(name)
	}

	return
}

// MarshalText encodes the fetch type as its name.
func (fetch FetchType) MarshalText() ([]byte, error) {
	return []byte(fetch.String()), nil
}

// UnmarshalText decodes a fetch-type name.
func (fetch *FetchType) UnmarshalText(text []byte) (err error) {
	*fetch, err = ParseFetchType(string(text))
	return
}

// Instruction is one instruction-memory record.
type Instruction struct {
	Operation Operation `json:"operation"`
	Fetch     FetchType `json:"fetch_type,omitempty"`
	Data      int       `json:"data,omitempty"`
}

// MakeInstruction builds an operand-less instruction record.
func MakeInstruction(op Operation) *Instruction {
	return &Instruction{Operation: op}
}

// MakeInstructionFetch builds an instruction record with an operand.
func MakeInstructionFetch(op Operation, fetch FetchType, data int) *Instruction {
	return &Instruction{Operation: op, Fetch: fetch, Data: data}
}

func (in Instruction) String() string {
	if in.Fetch == FETCH_NONE {
		return in.Operation.String()
	}

	return fmt.Sprintf("%v %v %v", in.Operation, in.Fetch, in.Data)
}
