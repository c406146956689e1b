// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exit

import (
	"errors"
)

// Failure is the exit status of errors which don't specify one.
const Failure = 1

type exitCoder interface {
	error
	ExitCode() int
}

// Code returns the process exit status for err.  Nil error is success.
func Code(err error) int {
	if err == nil {
		return 0
	}

	var e exitCoder
	if errors.As(err, &e) {
		if code := e.ExitCode(); code != 0 {
			return code
		}
	}
	return Failure
}
