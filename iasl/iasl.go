// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iasl runs the ACPI source language compiler.
package iasl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"import.name/lock"

	. "import.name/type/context"
)

const DefaultTool = "iasl"

type Config struct {
	Tool    string        // Executable name or path.
	Timeout time.Duration // Zero means no limit.
}

var DefaultConfig = Config{
	Tool: DefaultTool,
}

// Compiler invocation settings.  Nil Stdout or Stderr discards compiler
// output.
type Compiler struct {
	Config Config
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger

	mu      sync.Mutex
	checked bool
}

func New(c Config, stdout, stderr io.Writer, log *slog.Logger) *Compiler {
	return &Compiler{
		Config: c,
		Stdout: stdout,
		Stderr: stderr,
		Log:    log,
	}
}

func (c *Compiler) Tool() string {
	if c.Config.Tool == "" {
		return DefaultTool
	}
	return c.Config.Tool
}

// Check that the tool can be executed by querying its version.  Success is
// remembered.
func (c *Compiler) Check(ctx Context) error {
	var checked bool
	lock.Guard(&c.mu, func() {
		checked = c.checked
	})
	if checked {
		return nil
	}

	cmd := exec.CommandContext(ctx, c.Tool(), "-v")
	if err := cmd.Run(); err != nil {
		c.logger().Debug("tool check failed", "tool", c.Tool(), "error", err)
		return &ToolError{Tool: c.Tool(), Err: err}
	}

	lock.Guard(&c.mu, func() {
		c.checked = true
	})
	return nil
}

// Command line which compiles source into a C array named after base.  The
// compiler writes base.hex.
func (c *Compiler) Command(source, base string) []string {
	return []string{c.Tool(), "-vs", "-tc", "-p", base, source}
}

// Compile source.  Non-zero compiler exit status is returned as
// *CompileError.
func (c *Compiler) Compile(ctx Context, source, base string) error {
	if c.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Config.Timeout)
		defer cancel()
	}

	args := c.Command(source, base)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	t0 := time.Now()
	err := cmd.Run()
	c.logger().Debug("compiler exited", "args", args, "duration", time.Since(t0), "error", err)

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CompileError{Code: exitErr.ExitCode(), Err: err}
	}
	return &ToolError{Tool: c.Tool(), Err: err}
}

func (c *Compiler) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}
