// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm runs the external programs used to build and program the ROM:
// the z80asm assembler and the minipro EEPROM programmer.
package asm

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/embeddedgo/z80tools/z80rom/internal/util"
)

const (
	DefaultAssembler  = "z80asm"
	DefaultProgrammer = "minipro"
)

// Runner runs an external program.
type Runner interface {
	Run(name string, args ...string) error
}

// ExitError is returned by Exec if the program exited with a non-zero
// status.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Name, e.Code)
}

// Exec runs programs found in PATH, connecting them to the standard output
// and error of the current process.
type Exec struct{}

func (Exec) Run(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}
	c := &exec.Cmd{
		Path:   path,
		Args:   append([]string{name}, args...),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	err = c.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{name, ee.ProcessState.ExitCode()}
	}
	return err
}

// BinName returns the name of the binary file produced from the src file:
// the extension of src replaced with .bin.
func BinName(src string) string {
	return util.OutName(src, filepath.Ext(src), "", ".bin")
}

type Assembler struct {
	Runner Runner
	Prog   string // DefaultAssembler if empty
}

// Assemble assembles the src file into the bin file.
func (a Assembler) Assemble(src, bin string) error {
	prog := a.Prog
	if prog == "" {
		prog = DefaultAssembler
	}
	return a.Runner.Run(prog, src, "-o", bin)
}

type Programmer struct {
	Runner Runner
	Prog   string // DefaultProgrammer if empty
	Model  string // part name, e.g. X28C64
}

// Write writes the rom file to the EEPROM.
func (p Programmer) Write(rom string) error {
	if p.Model == "" {
		return errors.New("programmer: no part name")
	}
	prog := p.Prog
	if prog == "" {
		prog = DefaultProgrammer
	}
	return p.Runner.Run(prog, "-p", p.Model, "-w", rom)
}
