// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iasl

import (
	"errors"
	"fmt"

	"import.name/ssdtgen/internal/error/exit"
)

// ToolError means that the compiler couldn't be executed.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string     { return fmt.Sprintf("required tool '%s' not found in PATH", e.Tool) }
func (e *ToolError) Unwrap() error     { return e.Err }
func (e *ToolError) ToolMissing() bool { return true }

// ExitCode is always failure: the status of a version query is not
// propagated.
func (e *ToolError) ExitCode() int { return exit.Failure }

// CompileError means that the compiler exited with non-zero status.
type CompileError struct {
	Code int // Negative if the process was terminated by a signal.
	Err  error
}

func (e *CompileError) Error() string { return fmt.Sprintf("iasl failed with exit code %d", e.Code) }
func (e *CompileError) Unwrap() error { return e.Err }

// ExitCode propagates the compiler's exit status.
func (e *CompileError) ExitCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return 1
}

type toolMissing interface {
	error
	ToolMissing() bool
}

func IsToolMissing(err error) bool {
	var e toolMissing
	return errors.As(err, &e) && e.ToolMissing()
}

// AsCompileError finds a compiler failure in err's chain.
func AsCompileError(err error) (*CompileError, bool) {
	var e *CompileError
	ok := errors.As(err, &e)
	return e, ok
}
