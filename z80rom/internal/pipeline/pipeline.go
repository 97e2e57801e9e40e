// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements the complete build of a Z80 program: assemble
// the source, generate the Arduino header and the EEPROM image.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/embeddedgo/z80tools/z80rom/internal/asm"
	"github.com/embeddedgo/z80tools/z80rom/internal/carray"
	"github.com/embeddedgo/z80tools/z80rom/internal/rom"
	"github.com/embeddedgo/z80tools/z80rom/internal/util"
)

// ErrAssemble is returned by Run if the assembler failed and
// Config.KeepGoing is false.
var ErrAssemble = errors.New("errors compiling the z80 code")

type Config struct {
	Source string // assembly source file, required
	Bin    string // asm.BinName(Source) if empty
	Header string // carray.DefaultHeader if empty

	CArray carray.Config
	ROM    rom.Config

	Hex     bool   // also write the ROM image in the Intel HEX format
	HexAddr uint32 // load address of the Intel HEX image

	// KeepGoing makes Run to continue with the binary file left on disk
	// after a failed assembly.
	KeepGoing bool

	Burn bool // write the ROM image using the Programmer

	Assembler  asm.Assembler
	Programmer asm.Programmer
}

// Result describes the files written by Run.
type Result struct {
	Bin      string
	Header   string
	ROM      string
	Hex      string // empty if Config.Hex is false
	Size     int    // size of the binary program
	ImgSize  int
	AsmError error // assembler error ignored due to Config.KeepGoing
}

// Run performs the build described by cfg. The log function is used to
// report the progress. Files written before an error are left on disk.
func Run(cfg Config, log func(f string, args ...any)) (res Result, err error) {
	if cfg.Source == "" {
		return res, errors.New("no input file provided")
	}
	res.Bin = cfg.Bin
	if res.Bin == "" {
		res.Bin = asm.BinName(cfg.Source)
	}
	res.Header = cfg.Header
	if res.Header == "" {
		res.Header = carray.DefaultHeader
	}
	res.ROM = rom.Name(res.Bin)

	log("Input file: %s", cfg.Source)
	if err = cfg.Assembler.Assemble(cfg.Source, res.Bin); err != nil {
		if !cfg.KeepGoing {
			return res, fmt.Errorf("%w: %w", ErrAssemble, err)
		}
		log("There have been errors compiling your z80 code: %v", err)
		res.AsmError = err
	}
	log("Binary file: %s", res.Bin)

	if res.Size, err = carray.WriteFile(res.Header, res.Bin, cfg.CArray); err != nil {
		return res, err
	}
	log("Arduino C array: %s (%s)", res.Header, util.Bytes(res.Size))

	img, err := rom.WriteFile(res.ROM, res.Bin, cfg.ROM)
	if err != nil {
		return res, err
	}
	res.ImgSize = len(img)
	if rom.Oversized(img, cfg.ROM) {
		log(
			"warning: %s: program (%s) doesn't fit in the ROM (%s)",
			res.ROM, util.Bytes(len(img)), util.Bytes(cfg.ROM.Size),
		)
	}
	log("ROM file: %s", res.ROM)

	if cfg.Hex {
		res.Hex = rom.HexName(res.Bin)
		if err = rom.WriteHexFile(res.Hex, img, cfg.HexAddr); err != nil {
			return res, err
		}
		log("Intel HEX file: %s", res.Hex)
	}
	if cfg.Burn {
		if err = cfg.Programmer.Write(res.ROM); err != nil {
			return res, err
		}
		log("%s written to %s", res.ROM, cfg.Programmer.Model)
	}
	return res, nil
}
