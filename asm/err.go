package asm

import (
	"errors"

	"github.com/XivC/csa-lab3/translate"
)

var f = translate.From

var (
	// Entry errors
	ErrOperationMissing = errors.New(f("operation missing"))
	ErrExtraArgs        = errors.New(f("excessive arguments"))
)

type ErrCellInvalid string

func (err ErrCellInvalid) Error() string {
	return f("'%v' is not a cell address", string(err))
}

type ErrValueInvalid string

func (err ErrValueInvalid) Error() string {
	return f("'%v' is not a value", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
