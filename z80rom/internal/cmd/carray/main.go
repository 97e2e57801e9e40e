// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package carray

import (
	"fmt"
	"os"

	"github.com/embeddedgo/z80tools/z80rom/internal/carray"
	"github.com/embeddedgo/z80tools/z80rom/internal/util"
	"github.com/spf13/pflag"
)

const Descr = "convert a binary file to the Arduino C array header"

func Main(cmd string, args []string) {
	fs := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] BIN [HEADER]\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	tmpl := fs.String("template", "", "text/template `file` used to generate the header")
	fs.Parse(args)
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}
	bin, out := fs.Arg(0), fs.Arg(1)
	if out == "" {
		out = carray.DefaultHeader
	}
	var cfg carray.Config
	if *tmpl != "" {
		b, err := os.ReadFile(*tmpl)
		util.FatalErr("template", err)
		cfg.Template = string(b)
	}
	n, err := carray.WriteFile(out, bin, cfg)
	util.FatalErr("carray", err)
	util.Warn("Arduino C array: %s (%s)", out, util.Bytes(n))
}
