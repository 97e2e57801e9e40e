// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package carray encodes a binary program as a C byte array that can be
// included in the Arduino sketch driving the Z80.
package carray

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

// DefaultHeader is the name of the header file included by the z80.ino
// sketch.
const DefaultHeader = "z80_code.h"

// DefaultTemplate is the text/template used to wrap the array body. The
// template can refer to .Source (the name of the binary file), .Body (the
// encoded bytes) and .Len (the number of bytes).
const DefaultTemplate = `// this file has been created by compiling
// {{.Source}}

#include <Arduino.h>
#ifndef codebase
#define codebase

codebase byte code[] {
{{.Body}}
};

#endif`

type Config struct {
	Template string // DefaultTemplate if empty
}

type data struct {
	Source string
	Body   string
	Len    int
}

const hexDigits = "0123456789abcdef"

// Body returns the array body: one 0xNN literal per line, separated by
// commas. There is no separator after the last literal.
func Body(bin []byte) string {
	if len(bin) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(bin)*6 - 2)
	for i, b := range bin {
		if i != 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString("0x")
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xf])
	}
	return sb.String()
}

func parse(cfg Config) (*template.Template, error) {
	text := cfg.Template
	if text == "" {
		text = DefaultTemplate
	}
	return template.New("carray").Option("missingkey=error").Parse(text)
}

// Encode writes bin encoded as a C array to w. The source is the name of the
// file bin was read from.
func Encode(w io.Writer, source string, bin []byte, cfg Config) error {
	t, err := parse(cfg)
	if err != nil {
		return err
	}
	return t.Execute(w, data{source, Body(bin), len(bin)})
}

// WriteFile reads the binary file bin and writes its C array representation
// to the out file. It returns the number of encoded bytes.
func WriteFile(out, bin string, cfg Config) (n int, err error) {
	b, err := os.ReadFile(bin)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, bin, b, cfg); err != nil {
		return 0, fmt.Errorf("%s: %w", out, err)
	}
	if err = os.WriteFile(out, buf.Bytes(), 0o666); err != nil {
		return 0, err
	}
	return len(b), nil
}
