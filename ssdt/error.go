// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssdt

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ArtifactError means that the compiler succeeded but an expected output
// file doesn't exist.
type ArtifactError struct {
	Path string
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("expected %s file not generated: %s", filepath.Ext(e.Path), e.Path)
}

func (e *ArtifactError) MissingArtifact() bool { return true }

// EditError means that the length definition couldn't be added.
type EditError struct {
	Path string
	Err  error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("failed to add AML code length definition to %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *EditError) Unwrap() error { return e.Err }

// FormatError means that the generated file couldn't be normalized.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("expected output file %s was not generated", e.Path)
	}
	return fmt.Sprintf("formatting %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

type missingArtifact interface {
	error
	MissingArtifact() bool
}

func IsMissingArtifact(err error) bool {
	var e missingArtifact
	return errors.As(err, &e) && e.MissingArtifact()
}

func IsEditFailure(err error) bool {
	var e *EditError
	return errors.As(err, &e)
}

// IsFormattingMissingFile reports whether normalization found no file.
func IsFormattingMissingFile(err error) bool {
	var e *FormatError
	return errors.As(err, &e) && errors.Is(e.Err, fs.ErrNotExist)
}
