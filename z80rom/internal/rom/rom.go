// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rom creates EEPROM images from binary programs.
package rom

import (
	"io"
	"os"

	"github.com/embeddedgo/z80tools/z80rom/internal/util"
	"github.com/marcinbor85/gohex"
)

const (
	DefaultSize  = 8192     // X28C64, 64 Kbit
	DefaultFill  = 0xff     // erased EEPROM cell
	DefaultModel = "X28C64" // part name used by the MiniPro programmer

	BinSuffix = ".bin"
	Suffix    = "_rom.bin"
	HexSuffix = "_rom.hex"
)

type Config struct {
	Size int  // ROM size in bytes
	Fill byte // used to fill the unused ROM space
}

func DefaultConfig() Config {
	return Config{Size: DefaultSize, Fill: DefaultFill}
}

// Pad returns the data followed by cfg.Fill bytes up to cfg.Size. Pad never
// truncates: if len(data) >= cfg.Size the data is returned unchanged.
func Pad(data []byte, cfg Config) []byte {
	if len(data) >= cfg.Size {
		return data
	}
	img := make([]byte, cfg.Size)
	n := copy(img, data)
	for i := n; i < len(img); i++ {
		img[i] = cfg.Fill
	}
	return img
}

// Oversized reports whether the data doesn't fit in the ROM.
func Oversized(data []byte, cfg Config) bool {
	return len(data) > cfg.Size
}

// Name returns the name of the ROM file for the bin file.
func Name(bin string) string {
	return util.OutName(bin, BinSuffix, "", Suffix)
}

// HexName returns the name of the Intel HEX ROM file for the bin file.
func HexName(bin string) string {
	return util.OutName(bin, BinSuffix, "", HexSuffix)
}

// WriteFile reads the bin file, pads it and writes the result to the out
// file. It returns the written image.
func WriteFile(out, bin string, cfg Config) (image []byte, err error) {
	data, err := os.ReadFile(bin)
	if err != nil {
		return nil, err
	}
	image = Pad(data, cfg)
	if err = os.WriteFile(out, image, 0o666); err != nil {
		return nil, err
	}
	return image, nil
}

// WriteHex writes the image in the Intel HEX format, starting at addr.
func WriteHex(w io.Writer, image []byte, addr uint32) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(addr, image); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, 16)
}

// WriteHexFile works like WriteHex but writes to the named file.
func WriteHexFile(out string, image []byte, addr uint32) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	err = WriteHex(f, image, addr)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
