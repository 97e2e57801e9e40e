// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"fmt"
	"os"
	"strings"

	"github.com/embeddedgo/z80tools/z80rom/internal/rom"
	"github.com/embeddedgo/z80tools/z80rom/internal/util"
	"github.com/spf13/pflag"
)

const (
	DescrROM = "pad a binary file to the EEPROM size"
	DescrHex = "pad a binary file to the EEPROM size and save it in the Intel HEX format"
)

func Main(cmd string, args []string) {
	fs := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] BIN [%s]\nOptions:\n",
			cmd, strings.ToUpper(cmd),
		)
		fs.PrintDefaults()
	}
	size := fs.UintP("size", "s", rom.DefaultSize, "ROM size in `bytes`")
	fill := fs.Uint8("fill", rom.DefaultFill, "`byte` used to fill the unused ROM space")
	var addr uint32
	if cmd == "hex" {
		fs.Uint32Var(&addr, "addr", 0, "load `address` of the image")
	}
	fs.Parse(args)
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}
	cfg := rom.Config{Size: int(*size), Fill: *fill}
	bin := fs.Arg(0)
	var (
		out string
		img []byte
		err error
	)
	switch cmd {
	case "rom":
		out = util.OutName(bin, rom.BinSuffix, fs.Arg(1), rom.Suffix)
		img, err = rom.WriteFile(out, bin, cfg)
		util.FatalErr("rom", err)
	case "hex":
		out = util.OutName(bin, rom.BinSuffix, fs.Arg(1), rom.HexSuffix)
		var data []byte
		data, err = os.ReadFile(bin)
		util.FatalErr("", err)
		img = rom.Pad(data, cfg)
		util.FatalErr("hex", rom.WriteHexFile(out, img, addr))
	}
	if rom.Oversized(img, cfg) {
		util.Warn(
			"warning: %s: program (%s) doesn't fit in the ROM (%s)",
			out, util.Bytes(len(img)), util.Bytes(cfg.Size),
		)
	}
	util.Warn("ROM file: %s", out)
}
