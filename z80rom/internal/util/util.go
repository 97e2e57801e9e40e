// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"strings"
)

func Warn(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}

func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalError prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// OutName returns outName if it isn't empty. Otherwise it infers the name of
// the output file from inName by replacing the inSuffix with the outSuffix.
// If inName doesn't end with inSuffix the outSuffix is simply appended.
func OutName(inName, inSuffix, outName, outSuffix string) string {
	if outName != "" {
		return outName
	}
	if inSuffix != "" {
		inName = strings.TrimSuffix(inName, inSuffix)
	}
	return inName + outSuffix
}

// Bytes formats the size in a human readable form.
func Bytes(n int) string {
	switch {
	case n > 1024*1024:
		return fmt.Sprintf("%.f MiB", float64(n)/1024/1024)
	case n > 1024:
		return fmt.Sprintf("%.f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
