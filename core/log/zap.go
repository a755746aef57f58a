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

package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap returns a Handler that writes messages as structured entries to l.
// Closing the handler syncs l.
func Zap(l *zap.Logger) Handler {
	return handler{
		handle: func(m *Message) {
			ce := l.Check(zapLevel(m.Severity), m.Text)
			if ce == nil {
				return
			}
			if !m.Time.IsZero() {
				ce.Time = m.Time
			}
			fields := make([]zap.Field, 0, len(m.Values)+4)
			if m.Tag != "" {
				fields = append(fields, zap.String("tag", m.Tag))
			}
			if m.Process != "" {
				fields = append(fields, zap.String("process", m.Process))
			}
			if len(m.Trace) > 0 {
				fields = append(fields, zap.Strings("trace", m.Trace))
			}
			if m.StopProcess {
				fields = append(fields, zap.Bool("stop", true))
			}
			for _, v := range m.Values {
				fields = append(fields, zap.Any(v.Name, v.Value))
			}
			ce.Write(fields...)
		},
		close: func() { l.Sync() },
	}
}

// zapLevel maps s to a zap level. Fatal maps to ErrorLevel as process
// termination is left to the application.
func zapLevel(s Severity) zapcore.Level {
	switch {
	case s <= Debug:
		return zapcore.DebugLevel
	case s == Info:
		return zapcore.InfoLevel
	case s == Warning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
