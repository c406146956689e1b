// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filename decomposes paths into directory, stem and extension.
package filename

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Name of a file.  Only the last dot-separated suffix is the extension:
// "a.b.asl" has stem "a.b" and extension ".asl".  A leading dot doesn't
// start an extension.
type Name struct {
	Dir  string
	Stem string
	Ext  string
}

func Split(path string) Name {
	dir, base := filepath.Split(path)
	dir = filepath.Clean(dir)

	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}

	return Name{
		Dir:  dir,
		Stem: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}

// WithExt substitutes the extension.  Empty ext yields the base name.
func (n Name) WithExt(ext string) Name {
	n.Ext = ext
	return n
}

func (n Name) Base() string { return n.Stem + n.Ext }

func (n Name) String() string {
	return filepath.Join(n.Dir, n.Base())
}

// Identifier derived from the stem: lowercase, with characters which are
// not valid in a C identifier replaced by underscores.
func (n Name) Identifier() string {
	var b strings.Builder

	for i, r := range strings.ToLower(n.Stem) {
		switch {
		case r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)):
			b.WriteRune(r)
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
