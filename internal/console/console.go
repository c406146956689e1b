// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console prints user-facing status lines.  Every line starts with a
// prefix which tells its kind apart.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	PrefixInfo    = "[*]"
	PrefixAction  = "[+]"
	PrefixSuccess = "[✓]"
	PrefixError   = "[ERROR]"
)

const (
	colorReset = "\x1b[0m"
	colorBlue  = "\x1b[34m"
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
)

type Console struct {
	w     io.Writer
	color bool
}

// New console writing to w.  Prefixes are colored if w is a terminal.
func New(w io.Writer) *Console {
	var color bool
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Console{w, color}
}

// Discard output.
func Discard() *Console {
	return &Console{w: io.Discard}
}

func (c *Console) Info(format string, args ...any)    { c.line(colorBlue, PrefixInfo, format, args) }
func (c *Console) Action(format string, args ...any)  { c.line(colorBlue, PrefixAction, format, args) }
func (c *Console) Success(format string, args ...any) { c.line(colorGreen, PrefixSuccess, format, args) }
func (c *Console) Error(format string, args ...any)   { c.line(colorRed, PrefixError, format, args) }

func (c *Console) line(color, prefix, format string, args []any) {
	if c.color {
		prefix = color + prefix + colorReset
	}
	fmt.Fprintf(c.w, prefix+" "+format+"\n", args...)
}
