package machine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberTruncation(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		BitDepth int
		Value    int
		Stored   int
	}){
		{BitDepth: 16, Value: 0, Stored: 0},
		{BitDepth: 16, Value: 5, Stored: 5},
		{BitDepth: 16, Value: -5, Stored: -5},
		{BitDepth: 16, Value: 65535, Stored: 65535},
		{BitDepth: 16, Value: 65536, Stored: 0},
		{BitDepth: 16, Value: 65541, Stored: 5},
		{BitDepth: 16, Value: -65541, Stored: -5},
		{BitDepth: 16, Value: -70000, Stored: -4464},
		{BitDepth: 8, Value: 256, Stored: 0},
		{BitDepth: 8, Value: -257, Stored: -1},
		{BitDepth: 4, Value: 21, Stored: 5},
		{BitDepth: 1, Value: 2, Stored: 0},
		{BitDepth: 1, Value: 3, Stored: 1},
		{BitDepth: 1, Value: -3, Stored: -1},
	}

	for _, testcase := range table {
		n := NewNumber(testcase.BitDepth, testcase.Value)
		assert.Equal(testcase.Stored, n.Value(), fmt.Sprintf("%+v", testcase))
		assert.Equal(testcase.BitDepth, n.BitDepth(), fmt.Sprintf("%+v", testcase))
	}

	assert.Panics(func() { NewNumber(0, 1) })
	assert.Panics(func() { NewNumber(-1, 0) })
}

func TestNumberArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		DepthA, ValueA int
		DepthB, ValueB int
		Depth          int
		Sum, Diff      int
	}){
		{DepthA: 16, ValueA: 2, DepthB: 16, ValueB: 3, Depth: 16, Sum: 5, Diff: -1},
		{DepthA: 16, ValueA: 7, DepthB: 16, ValueB: 3, Depth: 16, Sum: 10, Diff: 4},
		{DepthA: 16, ValueA: 65535, DepthB: 16, ValueB: 1, Depth: 16, Sum: 0, Diff: 65534},
		{DepthA: 8, ValueA: 200, DepthB: 16, ValueB: 100, Depth: 8, Sum: 44, Diff: 100},
		{DepthA: 4, ValueA: 10, DepthB: 6, ValueB: 30, Depth: 4, Sum: 8, Diff: -4},
		{DepthA: 16, ValueA: -2, DepthB: 16, ValueB: 2, Depth: 16, Sum: 0, Diff: -4},
	}

	for _, testcase := range table {
		a := NewNumber(testcase.DepthA, testcase.ValueA)
		b := NewNumber(testcase.DepthB, testcase.ValueB)

		sum := a.Add(b)
		assert.Equal(testcase.Sum, sum.Value(), fmt.Sprintf("%+v", testcase))
		assert.Equal(testcase.Depth, sum.BitDepth(), fmt.Sprintf("%+v", testcase))

		diff := a.Sub(b)
		assert.Equal(testcase.Diff, diff.Value(), fmt.Sprintf("%+v", testcase))
		assert.Equal(testcase.Depth, diff.BitDepth(), fmt.Sprintf("%+v", testcase))
	}
}

func TestNumberNeg(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-5, NewNumber(16, 5).Neg().Value())
	assert.Equal(5, NewNumber(16, -5).Neg().Value())
	assert.Equal(0, NewNumber(16, 0).Neg().Value())
	assert.Equal("-5", NewNumber(16, -5).String())
}
