// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iasl

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"import.name/ssdtgen/internal/error/exit"

	. "import.name/testing/mustr"
)

// fakeTool writes an executable shell script which appends its arguments to
// a log file and then runs body.
func fakeTool(t *testing.T, body string) (tool, argLog string) {
	t.Helper()

	dir := t.TempDir()
	tool = filepath.Join(dir, "iasl")
	argLog = filepath.Join(dir, "args.log")

	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> '%s'\n%s\n", argLog, body)
	require.NoError(t, os.WriteFile(tool, []byte(script), 0o755))
	return
}

func readArgLog(t *testing.T, name string) []string {
	t.Helper()
	return strings.Split(strings.TrimSpace(string(Must(t, R(os.ReadFile(name))))), "\n")
}

func TestCheck(t *testing.T) {
	tool, argLog := fakeTool(t, "exit 0")
	c := New(Config{Tool: tool}, nil, nil, nil)

	require.NoError(t, c.Check(context.Background()))
	require.NoError(t, c.Check(context.Background()))

	assert.Equal(t, []string{"-v"}, readArgLog(t, argLog), "version query should run once")
}

func TestCheckMissing(t *testing.T) {
	c := New(Config{Tool: filepath.Join(t.TempDir(), "no-such-iasl")}, nil, nil, nil)

	err := c.Check(context.Background())
	require.Error(t, err)
	assert.True(t, IsToolMissing(err))
	assert.Contains(t, err.Error(), "not found in PATH")
}

func TestCheckFailure(t *testing.T) {
	tool, _ := fakeTool(t, "exit 7")
	c := New(Config{Tool: tool}, nil, nil, nil)

	err := c.Check(context.Background())
	assert.True(t, IsToolMissing(err))
	assert.Equal(t, exit.Failure, exit.Code(err), "version query status must not propagate")
}

func TestDefaultTool(t *testing.T) {
	c := New(Config{}, nil, nil, nil)
	assert.Equal(t, DefaultTool, c.Tool())
	assert.Equal(t, []string{"iasl", "-vs", "-tc", "-p", "/w/a", "/w/a.asl"}, c.Command("/w/a.asl", "/w/a"))
}

func TestCompile(t *testing.T) {
	tool, argLog := fakeTool(t, "echo compiled; echo warning >&2")

	var stdout, stderr bytes.Buffer
	c := New(Config{Tool: tool}, &stdout, &stderr, nil)

	require.NoError(t, c.Compile(context.Background(), "/w/a.asl", "/w/a"))

	assert.Equal(t, []string{"-vs -tc -p /w/a /w/a.asl"}, readArgLog(t, argLog))
	assert.Equal(t, "compiled\n", stdout.String())
	assert.Equal(t, "warning\n", stderr.String())
}

func TestCompileExitCode(t *testing.T) {
	tool, _ := fakeTool(t, "exit 2")
	c := New(Config{Tool: tool}, nil, nil, nil)

	err := c.Compile(context.Background(), "a.asl", "a")
	require.Error(t, err)

	e, ok := AsCompileError(err)
	require.True(t, ok)
	assert.Equal(t, 2, e.Code)
	assert.Equal(t, 2, e.ExitCode())
	assert.False(t, IsToolMissing(err))
	assert.Equal(t, "iasl failed with exit code 2", err.Error())
}

func TestCompileMissingTool(t *testing.T) {
	c := New(Config{Tool: filepath.Join(t.TempDir(), "gone")}, nil, nil, nil)
	assert.True(t, IsToolMissing(c.Compile(context.Background(), "a.asl", "a")))
}

func TestCompileTimeout(t *testing.T) {
	tool, _ := fakeTool(t, "exec sleep 10")
	c := New(Config{Tool: tool, Timeout: 100 * time.Millisecond}, nil, nil, nil)

	t0 := time.Now()
	assert.Error(t, c.Compile(context.Background(), "a.asl", "a"))
	assert.Less(t, time.Since(t0), 5*time.Second)
}

func TestCompileErrorSignal(t *testing.T) {
	e := &CompileError{Code: -1}
	assert.Equal(t, 1, e.ExitCode())
}
