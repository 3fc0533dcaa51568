// Copyright 2025, XivC

// Package asm assembles the two-section textual program format into a
// machine image.
package asm

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/XivC/csa-lab3/machine"
)

// Predefined constants visible to $() expressions.
var sysPredefine = map[string]int{
	"DEV_IN":    machine.DEVICE_ADDR_INPUT,
	"DEV_OUT":   machine.DEVICE_ADDR_OUTPUT,
	"BIT_DEPTH": machine.BIT_DEPTH,
	"MEM_SIZE":  1 << machine.BIT_DEPTH,
}

type section int

const (
	sectionNone = section(0)
	sectionData = section(1)
	sectionText = section(2)
)

// Assembler is a single pass assembler for the two-section source format.
// A '.data' or '.text' line opens a section; every entry in a section is
// '<cell>. <payload>'. Lines outside any section are ignored.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int // Predefines
}

// Predefine defines an extra named constant for $() expressions.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse assembles an input stream into a machine image.
func (asm *Assembler) Parse(input io.Reader) (image *machine.Image, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	data := map[int]int{}
	program := map[int]*machine.Instruction{}
	mode := sectionNone

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		switch line {
		case ".data":
			mode = sectionData
			continue
		case ".text":
			mode = sectionText
			continue
		}

		if len(strings.TrimSpace(line)) == 0 || mode == sectionNone {
			continue
		}

		var text string
		text, err = asm.expand(line, lineno)
		if err != nil {
			return
		}

		switch mode {
		case sectionData:
			var cell, value int
			cell, value, err = asm.parseData(text)
			if err != nil {
				return
			}
			data[cell] = value
		case sectionText:
			var cell int
			var in *machine.Instruction
			cell, in, err = asm.parseInstruction(text)
			if err != nil {
				return
			}
			program[cell] = in
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	image = &machine.Image{
		Data:    fill(data),
		Program: fill(program),
	}

	return
}

// expand does compile-time $() evaluations on a line.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	out = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return strconv.Itoa(value)
	})

	return
}

// parenEval does one compile-time $() evaluation.
func (asm *Assembler) parenEval(expr string, lineno int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, val := range sysPredefine {
		pred[key] = starlark.MakeInt(val)
	}
	for key, val := range asm.predefine {
		pred[key] = starlark.MakeInt(val)
	}
	pred["LINENO"] = starlark.MakeInt(lineno)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)

	return
}

// splitCell separates the '<cell>.' prefix from the payload.
func (asm *Assembler) splitCell(line string) (cell int, payload string, err error) {
	head, tail, found := strings.Cut(strings.TrimSpace(line), ".")
	if !found {
		err = ErrCellInvalid(line)
		return
	}

	cell, err = strconv.Atoi(strings.TrimSpace(head))
	if err != nil || cell < 0 {
		err = ErrCellInvalid(head)
		return
	}

	payload = tail

	return
}

// valueOf resolves a payload word: a decimal integer, or a single
// character standing for its code point.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	word = strings.TrimSpace(word)

	value, err = strconv.Atoi(word)
	if err == nil {
		return
	}

	if utf8.RuneCountInString(word) != 1 {
		err = ErrValueInvalid(word)
		return
	}

	r, _ := utf8.DecodeRuneInString(word)
	value = int(r)
	err = nil

	return
}

// parseData parses a '.data' section entry.
func (asm *Assembler) parseData(line string) (cell, value int, err error) {
	cell, payload, err := asm.splitCell(line)
	if err != nil {
		return
	}

	value, err = asm.valueOf(payload)

	return
}

// parseInstruction parses a '.text' section entry. An omitted operand
// defaults to zero.
func (asm *Assembler) parseInstruction(line string) (cell int, in *machine.Instruction, err error) {
	cell, payload, err := asm.splitCell(line)
	if err != nil {
		return
	}

	words := strings.Fields(payload)
	if len(words) == 0 {
		err = ErrOperationMissing
		return
	}
	if len(words) > 3 {
		err = ErrExtraArgs
		return
	}

	var op machine.Operation
	op, err = machine.ParseOperation(words[0])
	if err != nil {
		return
	}

	if len(words) == 1 {
		in = machine.MakeInstruction(op)
		return
	}

	var fetch machine.FetchType
	fetch, err = machine.ParseFetchType(words[1])
	if err != nil {
		return
	}

	data := 0
	if len(words) == 3 {
		data, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
	}

	in = machine.MakeInstructionFetch(op, fetch, data)

	return
}

// fill lays assigned cells into a dense slice from address zero. Gaps stay
// at the zero value.
func fill[T any](cells map[int]T) (dense []T) {
	top := -1
	for cell := range cells {
		if cell > top {
			top = cell
		}
	}

	dense = make([]T, top+1)
	for cell, value := range cells {
		dense[cell] = value
	}

	return
}
