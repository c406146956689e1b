// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	. "import.name/testing/mustr"
)

func TestInitText(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var b bytes.Buffer
	log := Must(t, R(Init(Config{}, &b)))

	log.Debug("hidden")
	log.Info("shown", "key", "value")

	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), "key=value")
}

func TestInitDebug(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var b bytes.Buffer
	log := Must(t, R(Init(Config{Debug: true}, &b)))

	log.Debug("detail")
	assert.Contains(t, b.String(), "detail")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
