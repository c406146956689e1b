// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssdt

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"import.name/ssdtgen/internal/file"
)

const guardEnd = "#endif"

// Outdated reports whether target needs to be regenerated from source: it
// doesn't exist or source has been modified after it.
func Outdated(source, target string) (bool, error) {
	targetInfo, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}

	sourceInfo, err := os.Stat(source)
	if err != nil {
		return false, err
	}

	return sourceInfo.ModTime().After(targetInfo.ModTime()), nil
}

// InjectLengthLines inserts decl before the first #endif line.  The result
// is false if there is no such line, and lines is returned as is.
func InjectLengthLines(lines []string, decl string) ([]string, bool) {
	for i, line := range lines {
		if strings.TrimSpace(line) == guardEnd {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, decl)
			out = append(out, lines[i:]...)
			return out, true
		}
	}

	return lines, false
}

// InjectLength inserts decl into the named file before the first #endif
// line.  The file is left as is if it has none.
func InjectLength(filename, decl string) (bool, error) {
	lines, err := file.ReadLines(filename)
	if err != nil {
		return false, &EditError{filename, err}
	}

	lines, ok := InjectLengthLines(lines, decl)
	if !ok {
		return false, nil
	}

	if err := file.WriteLines(filename, lines); err != nil {
		return false, &EditError{filename, err}
	}
	return true, nil
}

// NormalizeLines strips trailing whitespace and collapses blank line runs.
// A blank line is kept only after a non-blank line.
func NormalizeLines(lines []string) []string {
	var out []string

	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line != "" || (len(out) > 0 && out[len(out)-1] != "") {
			out = append(out, line)
		}
	}

	return out
}

// Normalize the named file in place.
func Normalize(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return &FormatError{filename, err}
	}

	lines, err := file.ReadLines(filename)
	if err != nil {
		return &FormatError{filename, err}
	}

	if err := file.WriteLines(filename, NormalizeLines(lines)); err != nil {
		return &FormatError{filename, err}
	}
	return nil
}

// HeaderLines declare the generated symbols for C code which embeds the
// table.
func HeaderLines(s Symbols) []string {
	guard := strings.ToUpper(s.Array()) + "_H"

	return []string{
		"#ifndef " + guard,
		"#define " + guard,
		"",
		"extern unsigned char " + s.Array() + "[];",
		"extern unsigned int " + s.Length() + ";",
		"",
		guardEnd,
	}
}
