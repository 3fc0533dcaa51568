// Copyright 2026, XivC

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/XivC/csa-lab3/asm"
	"github.com/XivC/csa-lab3/device"
	"github.com/XivC/csa-lab3/machine"
)

type asmCmd struct {
	Source string `arg:"" type:"existingfile" help:"Assembly source file."`
	Image  string `arg:"" help:"Machine image (JSON) to write."`

	Verbose bool `short:"v" help:"Verbosely log assembler actions."`
}

func (cmd *asmCmd) Run() (err error) {
	source, err := os.Open(cmd.Source)
	if err != nil {
		return
	}
	defer source.Close()

	assembler := &asm.Assembler{Verbose: cmd.Verbose}
	image, err := assembler.Parse(source)
	if err != nil {
		return
	}

	out, err := os.Create(cmd.Image)
	if err != nil {
		return
	}
	defer out.Close()

	return image.Save(out)
}

type runCmd struct {
	Program string `arg:"" type:"existingfile" help:"Program to run: a machine image (.json) or assembly source."`

	Input   string `short:"i" default:"in.txt" help:"Input device file."`
	Output  string `short:"o" default:"out.txt" help:"Output device file."`
	Verbose bool   `short:"v" help:"Verbosely log every step."`
	Step    bool   `short:"s" help:"Print machine state and wait for enter between steps."`
}

func (cmd *runCmd) Run() (err error) {
	image, err := cmd.load()
	if err != nil {
		return
	}

	// A missing input file is an empty stream.
	var source io.Reader = strings.NewReader("")
	in, err := os.Open(cmd.Input)
	if err == nil {
		defer in.Close()
		source = in
	} else if !errors.Is(err, fs.ErrNotExist) {
		return
	}

	input, err := device.NewInput(source)
	if err != nil {
		return
	}

	out, err := os.Create(cmd.Output)
	if err != nil {
		return
	}
	defer out.Close()

	m, err := machine.New(image, input, device.NewOutput(out))
	if err != nil {
		return
	}
	m.Verbose = cmd.Verbose

	if cmd.Step {
		return cmd.interactive(m)
	}

	err = m.Run()
	if err != nil {
		return
	}

	fmt.Println("Machine halted")

	return
}

// load reads the program, assembling it first unless it is already an
// image.
func (cmd *runCmd) load() (image *machine.Image, err error) {
	program, err := os.Open(cmd.Program)
	if err != nil {
		return
	}
	defer program.Close()

	if filepath.Ext(cmd.Program) == ".json" {
		return machine.LoadImage(program)
	}

	assembler := &asm.Assembler{Verbose: cmd.Verbose}

	return assembler.Parse(program)
}

// interactive single-steps the machine, printing the register file and
// waiting for enter between steps.
func (cmd *runCmd) interactive(m *machine.Machine) (err error) {
	stdin := bufio.NewScanner(os.Stdin)

	for {
		var done bool
		done, err = m.Step()
		if err != nil {
			return
		}

		fmt.Print(m)

		if done {
			fmt.Println("Machine halted")
			return
		}

		if !stdin.Scan() {
			return stdin.Err()
		}
	}
}

func main() {
	var cli struct {
		Asm asmCmd `cmd:"" help:"Assemble a source file into a machine image."`
		Run runCmd `cmd:"" help:"Run a program until it halts."`
	}

	ctx := kong.Parse(&cli,
		kong.Name("csa-lab3"),
		kong.Description("Accumulator machine assembler and emulator."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
