// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"errors"
	"fmt"
	"os"

	"github.com/embeddedgo/z80tools/z80rom/internal/asm"
	"github.com/embeddedgo/z80tools/z80rom/internal/carray"
	"github.com/embeddedgo/z80tools/z80rom/internal/pipeline"
	"github.com/embeddedgo/z80tools/z80rom/internal/rom"
	"github.com/embeddedgo/z80tools/z80rom/internal/util"
	"github.com/spf13/pflag"
)

const Descr = "assemble a Z80 program, generate the Arduino header and the ROM image"

func Main(cmd string, args []string) {
	fs := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s -i SOURCE [OPTIONS]\nOptions:\n", cmd)
		fs.PrintDefaults()
	}
	src := fs.StringP("ifile", "i", "", "assembly source `file` (required)")
	bin := fs.StringP(
		"bin", "o", "",
		"binary `file` produced by the assembler (default SOURCE with the .bin extension)",
	)
	header := fs.String("header", carray.DefaultHeader, "Arduino header `file`")
	tmpl := fs.String("template", "", "text/template `file` used to generate the header")
	size := fs.UintP("size", "s", rom.DefaultSize, "ROM size in `bytes`")
	fill := fs.Uint8("fill", rom.DefaultFill, "`byte` used to fill the unused ROM space")
	hex := fs.Bool("hex", false, "write the ROM image also in the Intel HEX format")
	hexAddr := fs.Uint32("hex-addr", 0, "load `address` of the Intel HEX image")
	keepGoing := fs.BoolP(
		"keep-going", "k", false,
		"continue with the existing binary file if the assembler fails",
	)
	burn := fs.Bool("burn", false, "write the ROM image to the EEPROM")
	model := fs.String("model", rom.DefaultModel, "EEPROM part `name` passed to the programmer")
	asmProg := fs.String("asm", asm.DefaultAssembler, "assembler `program`")
	progProg := fs.String("programmer", asm.DefaultProgrammer, "EEPROM programmer `program`")
	fs.Parse(args)
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}
	if *src == "" {
		util.Warn("No input file provided.")
		fs.Usage()
		os.Exit(1)
	}
	cfg := pipeline.Config{
		Source:    *src,
		Bin:       *bin,
		Header:    *header,
		ROM:       rom.Config{Size: int(*size), Fill: *fill},
		Hex:       *hex,
		HexAddr:   *hexAddr,
		KeepGoing: *keepGoing,
		Burn:      *burn,
		Assembler: asm.Assembler{Runner: asm.Exec{}, Prog: *asmProg},
		Programmer: asm.Programmer{
			Runner: asm.Exec{}, Prog: *progProg, Model: *model,
		},
	}
	if *tmpl != "" {
		b, err := os.ReadFile(*tmpl)
		util.FatalErr("template", err)
		cfg.CArray.Template = string(b)
	}
	_, err := pipeline.Run(cfg, util.Warn)
	if errors.Is(err, pipeline.ErrAssemble) {
		util.Fatal("%v\n(use -k to continue with the existing binary file)", err)
	}
	util.FatalErr("", err)
	util.Warn("Build successful")
}
