// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssdt

import (
	"fmt"

	"import.name/ssdtgen/ssdt/filename"
)

// Filename extensions.
const (
	ExtSource = ".asl"
	ExtHex    = ".hex"
	ExtC      = ".c"
	ExtAML    = ".aml"
	ExtHeader = ".h"
)

// Artifacts are the files derived from a source file by extension
// substitution.
type Artifacts struct {
	Source filename.Name
	Base   filename.Name
}

func NewArtifacts(source string) Artifacts {
	n := filename.Split(source)
	return Artifacts{
		Source: n,
		Base:   n.WithExt(""),
	}
}

func (a Artifacts) Hex() string    { return a.Base.WithExt(ExtHex).String() }
func (a Artifacts) C() string      { return a.Base.WithExt(ExtC).String() }
func (a Artifacts) AML() string    { return a.Base.WithExt(ExtAML).String() }
func (a Artifacts) Header() string { return a.Base.WithExt(ExtHeader).String() }

// Symbols of the generated C code.
type Symbols struct {
	Name string // Prefix, e.g. "poefanssdt".
}

// SymbolsFor the artifacts.  Non-empty override replaces the name derived
// from the base filename.
func (a Artifacts) SymbolsFor(override string) Symbols {
	if override != "" {
		return Symbols{override}
	}
	return Symbols{a.Base.Identifier()}
}

func (s Symbols) Array() string  { return s.Name + "_aml_code" }
func (s Symbols) Length() string { return s.Array() + "_len" }

// LengthDefinition is a C declaration of the array size.
func (s Symbols) LengthDefinition() string {
	return fmt.Sprintf("unsigned int %s = sizeof(%s);", s.Length(), s.Array())
}
