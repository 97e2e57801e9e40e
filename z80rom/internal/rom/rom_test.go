// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcinbor85/gohex"
)

func TestPad(t *testing.T) {
	for _, tt := range []struct {
		desc string
		in   []byte
		cfg  Config
		want []byte
	}{
		{
			desc: "example",
			in:   []byte{0x00, 0x1f, 0xff},
			cfg:  Config{Size: 5, Fill: 0xff},
			want: []byte{0x00, 0x1f, 0xff, 0xff, 0xff},
		},
		{
			desc: "empty",
			in:   nil,
			cfg:  Config{Size: 3, Fill: 0xff},
			want: []byte{0xff, 0xff, 0xff},
		},
		{
			desc: "other fill",
			in:   []byte{1},
			cfg:  Config{Size: 3, Fill: 0x00},
			want: []byte{1, 0, 0},
		},
		{
			desc: "exact size",
			in:   []byte{1, 2, 3},
			cfg:  Config{Size: 3, Fill: 0xff},
			want: []byte{1, 2, 3},
		},
		{
			desc: "oversized",
			in:   []byte{1, 2, 3, 4},
			cfg:  Config{Size: 3, Fill: 0xff},
			want: []byte{1, 2, 3, 4},
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got := Pad(tt.in, tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pad: diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPadDefault(t *testing.T) {
	in := []byte("\x3e\x01\xd3\x00\x76")
	img := Pad(in, DefaultConfig())
	if len(img) != 8192 {
		t.Fatalf("len(img) = %d, want 8192", len(img))
	}
	if !bytes.Equal(img[:len(in)], in) {
		t.Errorf("prefix %x, want %x", img[:len(in)], in)
	}
	for i, b := range img[len(in):] {
		if b != 0xff {
			t.Fatalf("img[%d] = %#x, want 0xff", len(in)+i, b)
		}
	}
}

func TestPadDoesNotModifyInput(t *testing.T) {
	in := make([]byte, 2, 8)
	Pad(in, Config{Size: 8, Fill: 0xff})
	if got := in[:8]; !bytes.Equal(got, make([]byte, 8)) {
		t.Errorf("input backing array modified: %x", got)
	}
}

func TestOversized(t *testing.T) {
	cfg := Config{Size: 4}
	for n, want := range map[int]bool{0: false, 4: false, 5: true} {
		if got := Oversized(make([]byte, n), cfg); got != want {
			t.Errorf("Oversized(%d bytes) = %v, want %v", n, got, want)
		}
	}
}

func TestName(t *testing.T) {
	for in, want := range map[string]string{
		"prog.bin":     "prog_rom.bin",
		"src/prog.bin": "src/prog_rom.bin",
		"prog.img":     "prog.img_rom.bin",
	} {
		if got := Name(in); got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
	if got, want := HexName("prog.bin"), "prog_rom.hex"; got != want {
		t.Errorf("HexName = %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(bin, []byte{0xc3, 0x00, 0x00}, 0o666); err != nil {
		t.Fatal(err)
	}
	out := Name(bin)
	img, err := WriteFile(out, bin, Config{Size: 6, Fill: 0xff})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc3, 0x00, 0x00, 0xff, 0xff, 0xff}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: diff (-want +got):\n%s", out, diff)
	}
	if !bytes.Equal(img, got) {
		t.Errorf("returned image %x differs from the file %x", img, got)
	}
}

func TestWriteFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(filepath.Join(dir, "x_rom.bin"), filepath.Join(dir, "x.bin"), DefaultConfig())
	if !os.IsNotExist(err) {
		t.Errorf("WriteFile: got %v, want not exist error", err)
	}
}

func TestWriteHex(t *testing.T) {
	img := Pad([]byte{0x3e, 0x42, 0x76}, Config{Size: 40, Fill: 0xff})
	var buf bytes.Buffer
	if err := WriteHex(&buf, img, 0); err != nil {
		t.Fatal(err)
	}
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(&buf); err != nil {
		t.Fatal(err)
	}
	got := mem.ToBinary(0, uint32(len(img)), 0x00)
	if diff := cmp.Diff(img, got); diff != "" {
		t.Errorf("hex round trip: diff (-want +got):\n%s", diff)
	}
}

func TestWriteHexFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prog_rom.hex")
	img := Pad(nil, Config{Size: 16, Fill: 0xff})
	if err := WriteHexFile(out, img, 0x8000); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		t.Fatal(err)
	}
	got := mem.ToBinary(0x8000, 16, 0x00)
	if diff := cmp.Diff(img, got); diff != "" {
		t.Errorf("hex round trip: diff (-want +got):\n%s", diff)
	}
}
