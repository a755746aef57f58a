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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/fault"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/pkg/errors"
)

func TestExitCodeOf(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name   string
		err    error
		expect ExitCode
	}{
		{"nil", nil, SuccessExit},
		{"plain", fault.Const("boom"), FatalExit},
		{"usage", UsageExit, UsageExit},
		{"wrapped abort", errors.Wrap(AbortExit, "eglCreateContext"), AbortExit},
	} {
		assert.For(test.name).That(ExitCodeOf(test.err)).Equals(test.expect)
	}
}

func TestRunExitCodes(t *testing.T) {
	assert := assert.To(t)
	defer func(f func(int)) { ExitFuncForTesting = f }(ExitFuncForTesting)
	got := -1
	ExitFuncForTesting = func(code int) { got = code }

	Run(func(ctx context.Context) error { return nil })
	assert.For("success").ThatInteger(got).Equals(int(SuccessExit))

	Run(func(ctx context.Context) error { return errors.Wrap(AbortExit, "replay") })
	assert.For("abort").ThatInteger(got).Equals(int(AbortExit))

	Run(func(ctx context.Context) error { panic(UsageExit) })
	assert.For("panic").ThatInteger(got).Equals(int(UsageExit))
}

func TestCleanupOrder(t *testing.T) {
	assert := assert.To(t)
	order := []string{}
	code := run(context.Background(), func(ctx context.Context) error {
		AddCleanup(func(context.Context) { order = append(order, "first") })
		AddCleanup(func(context.Context) { order = append(order, "second") })
		return nil
	})
	assert.For("code").That(code).Equals(SuccessExit)
	assert.For("order").ThatSlice(order).Equals([]string{"second", "first"})
}

func TestConfigureLogFile(t *testing.T) {
	assert := assert.To(t)
	path := filepath.Join(t.TempDir(), "replay.log")
	ctx := prepareContext(context.Background(), DefaultLogConfig())
	ctx, err := ConfigureLog(ctx, LogConfig{Level: log.Warning, Style: log.Raw, File: path})
	assert.For("err").ThatError(err).Succeeded()

	log.I(ctx, "filtered")
	log.W(ctx, "frame %d", 7)
	LogHandler.Close()

	data, err := os.ReadFile(path)
	assert.For("read").ThatError(err).Succeeded()
	text := strings.TrimSpace(string(data))
	assert.For("text").ThatString(text).Equals(fmt.Sprintf("frame %d", 7))
}
