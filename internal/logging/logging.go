// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"import.name/sjournal"
)

type Config struct {
	Journal bool
	Debug   bool
}

// Init returns some kind of logger on error.  Text output goes to w unless
// journal is enabled.
func Init(c Config, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}

	var h slog.Handler

	if c.Journal {
		opts := &sjournal.HandlerOptions{
			Delimiter:  sjournal.ColonDelimiter,
			TimeFormat: time.RFC3339Nano,
		}

		jh, err := sjournal.NewHandler(opts)
		if err != nil {
			return slog.New(slog.NewTextHandler(w, nil)), err
		}

		h = leveler{jh, level}
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	log := slog.New(h)

	slog.SetDefault(log)
	slog.SetLogLoggerLevel(slog.LevelInfo)

	return log, nil
}

// Discard returns a logger which drops everything.
func Discard() *slog.Logger {
	return slog.New(leveler{slog.NewTextHandler(io.Discard, nil), slog.LevelError + 1})
}

type leveler struct {
	slog.Handler
	min slog.Level
}

func (h leveler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min && h.Handler.Enabled(ctx, level)
}

func (h leveler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return leveler{h.Handler.WithAttrs(attrs), h.min}
}

func (h leveler) WithGroup(name string) slog.Handler {
	return leveler{h.Handler.WithGroup(name), h.min}
}
