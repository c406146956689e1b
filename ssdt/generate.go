// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ssdt generates C source code which embeds a compiled ACPI table.
package ssdt

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"import.name/pan"
	"import.name/ssdtgen/internal/console"
	"import.name/ssdtgen/internal/file"

	. "import.name/pan/mustcheck"
	. "import.name/type/context"
)

type Config struct {
	Symbol string // Derived from the source filename by default.
	Header bool   // Write a .h file declaring the symbols.
	Force  bool   // Regenerate even if up to date.
}

// Compiler of ACPI source files.  It writes base.hex.
type Compiler interface {
	Check(ctx Context) error
	Command(source, base string) []string
	Compile(ctx Context, source, base string) error
}

type State int

const (
	Start State = iota
	ToolChecked
	UpToDate
	Compiled
	Formatted
	Failed
)

var stateNames = [...]string{
	Start:       "start",
	ToolChecked: "tool checked",
	UpToDate:    "up to date",
	Compiled:    "compiled",
	Formatted:   "formatted",
	Failed:      "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

type Result struct {
	State     State
	Artifacts Artifacts
	Symbols   Symbols
	Injected  bool // Length definition was added.
}

type Generator struct {
	Config   Config
	Compiler Compiler
	Console  *console.Console
	Log      *slog.Logger
}

// Generate source.c from source.asl if source.c is outdated.  Result state
// is UpToDate or Formatted on success, and Failed on error.
func (g *Generator) Generate(ctx Context, source string) (res Result, err error) {
	defer func() {
		if x := recover(); x != nil {
			res.State = Failed
			err = pan.Error(x)
		}
	}()

	res.Artifacts = NewArtifacts(source)
	res.Symbols = res.Artifacts.SymbolsFor(g.Config.Symbol)
	a := res.Artifacts

	g.log().Debug("artifacts", "source", source, "base", a.Base.String(), "c", a.C(), "aml", a.AML(), "symbol", res.Symbols.Array())

	Check(g.Compiler.Check(ctx))
	res.State = ToolChecked

	if !g.Config.Force && !Must(Outdated(source, a.C())) {
		g.console().Success("Up to date. No rebuild needed.")
		res.State = UpToDate
		return
	}

	lock := Must(file.LockExclusive(source))
	defer lock.Unlock()

	// Another run may have regenerated the file while we waited.
	if !g.Config.Force && !Must(Outdated(source, a.C())) {
		g.console().Success("Up to date. No rebuild needed.")
		res.State = UpToDate
		return
	}

	res.Injected = g.compile(ctx, a, res.Symbols)
	res.State = Compiled

	if !exists(a.C()) {
		panic(pan.Wrap(&ArtifactError{a.C()}))
	}

	Check(Normalize(a.C()))
	g.console().Success("Formatted: %s", filepath.Base(a.C()))

	if g.Config.Header {
		Check(file.WriteLines(a.Header(), HeaderLines(res.Symbols)))
		g.console().Success("Wrote %s", filepath.Base(a.Header()))
	}

	res.State = Formatted
	return
}

func (g *Generator) compile(ctx Context, a Artifacts, s Symbols) bool {
	source := a.Source.String()
	base := a.Base.String()

	g.console().Action("Running: %s", strings.Join(g.Compiler.Command(source, base), " "))
	Check(g.Compiler.Compile(ctx, source, base))

	hex := a.Hex()
	c := a.C()

	if !exists(hex) {
		panic(pan.Wrap(&ArtifactError{hex}))
	}

	Check(os.Rename(hex, c))
	g.console().Success("Renamed %s to %s", hex, c)

	injected := Must(InjectLength(c, s.LengthDefinition()))
	if injected {
		g.console().Success("Added AML code length definition to %s", filepath.Base(c))
	} else {
		g.log().Warn("no #endif line; length definition not added", "file", c, "symbol", s.Length())
	}
	return injected
}

func (g *Generator) console() *console.Console {
	if g.Console == nil {
		return console.Discard()
	}
	return g.Console
}

func (g *Generator) log() *slog.Logger {
	if g.Log == nil {
		return slog.Default()
	}
	return g.Log
}

func exists(filename string) bool {
	_, err := os.Stat(filename)
	return !errors.Is(err, fs.ErrNotExist)
}
