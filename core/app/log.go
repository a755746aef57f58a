// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"context"
	"os"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const logChanBufferSize = 100

// LogHandler is the primary application logger target.
// It is assigned to the main context on startup and is closed on shutdown.
var LogHandler log.Indirect

// LogConfig holds the settings for the application log target.
type LogConfig struct {
	// Level is the lowest severity that is written.
	Level log.Severity
	// Style is the text style used when not writing JSON.
	Style log.Style
	// File, if not empty, is the path of a file the log is written to instead
	// of the standard streams.
	File string
	// JSON switches the output to structured zap entries.
	JSON bool
}

// DefaultLogConfig returns the configuration used before the application
// has parsed its own settings. Terminals get the brief style, anything else
// gets timestamps.
func DefaultLogConfig() LogConfig {
	style := log.Normal
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		style = log.Brief
	}
	return LogConfig{Level: log.Info, Style: style}
}

func wrapHandler(to log.Handler) log.Handler {
	to = log.Channel(to, logChanBufferSize)
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

func prepareContext(ctx context.Context, cfg LogConfig) context.Context {
	if old := LogHandler.SetTarget(wrapHandler(cfg.Style.Handler(log.Std()))); old != nil {
		old.Close()
	}
	ctx = log.PutProcess(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(cfg.Level))
	ctx = log.PutHandler(ctx, &LogHandler)
	return ctx
}

// ConfigureLog retargets the application log to match cfg, returning the
// context with the new severity filter applied.
func ConfigureLog(ctx context.Context, cfg LogConfig) (context.Context, error) {
	handler, err := newLogHandler(cfg)
	if err != nil {
		return ctx, err
	}
	if old := LogHandler.SetTarget(wrapHandler(handler)); old != nil {
		old.Close()
	}
	return log.PutFilter(ctx, log.SeverityFilter(cfg.Level)), nil
}

func newLogHandler(cfg LogConfig) (log.Handler, error) {
	if cfg.JSON {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.DisableStacktrace = true
		if cfg.File != "" {
			zc.OutputPaths = []string{cfg.File}
		}
		l, err := zc.Build()
		if err != nil {
			return nil, errors.Wrap(err, "Creating zap logger")
		}
		return log.Zap(l), nil
	}
	if cfg.File == "" {
		return cfg.Style.Handler(log.Std()), nil
	}
	file, err := os.Create(cfg.File)
	if err != nil {
		return nil, errors.Wrapf(err, "Creating log file %v", cfg.File)
	}
	h := cfg.Style.Handler(func(s string, _ log.Severity) {
		file.WriteString(s)
		file.WriteString("\n")
	})
	return log.NewHandler(h.Handle, func() { h.Close(); file.Close() }), nil
}
