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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gfxreplay/glretrace/core/app"
	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/glws"
)

func TestLoadConfigDefaults(t *testing.T) {
	assert := assert.To(t)
	cfg, err := loadConfig([]string{"trace.yaml"})
	assert.For("err").ThatError(err).Succeeded()
	assert.For("script").ThatString(cfg.Script).Equals("trace.yaml")
	assert.For("visual").That(cfg.Visual).Equals(glws.DefaultVisual)
	assert.For("check errors").ThatBoolean(cfg.CheckErrors).IsFalse()
	assert.For("snapshot dir").ThatString(cfg.SnapshotDir).Equals(".")
}

func TestLoadConfigFlags(t *testing.T) {
	assert := assert.To(t)
	cfg, err := loadConfig([]string{
		"--script", "a.yaml",
		"--double-buffer=false",
		"--depth-bits", "16",
		"--snapshot-frames", "1-3",
		"--log-level", "debug",
	})
	assert.For("err").ThatError(err).Succeeded()
	assert.For("script").ThatString(cfg.Script).Equals("a.yaml")
	assert.For("visual").That(cfg.Visual).Equals(glws.Visual{DoubleBuffer: false, DepthBits: 16, StencilBits: 8})
	logCfg, err := cfg.logConfig()
	assert.For("log err").ThatError(err).Succeeded()
	assert.For("level").That(logCfg.Level).Equals(log.Debug)
	sel, err := cfg.snapshotFrames()
	assert.For("frames err").ThatError(err).Succeeded()
	assert.For("frame 2").ThatBoolean(sel.Contains(2)).IsTrue()
}

func TestLoadConfigEnvAndFile(t *testing.T) {
	assert := assert.To(t)
	path := filepath.Join(t.TempDir(), "glretrace.yaml")
	err := os.WriteFile(path, []byte("stencil-bits: 0\nstatus-addr: localhost:9999\nlog-style: raw\n"), 0644)
	assert.For("write").ThatError(err).Succeeded()
	t.Setenv("GLRETRACE_CHECK_ERRORS", "true")

	cfg, err := loadConfig([]string{"--config", path, "trace.yaml"})
	assert.For("err").ThatError(err).Succeeded()
	assert.For("check errors").ThatBoolean(cfg.CheckErrors).IsTrue()
	assert.For("stencil").ThatInteger(cfg.Visual.StencilBits).Equals(0)
	assert.For("status").ThatString(cfg.StatusAddr).Equals("localhost:9999")
	logCfg, err := cfg.logConfig()
	assert.For("log err").ThatError(err).Succeeded()
	assert.For("style").ThatString(logCfg.Style.Name).Equals("raw")
}

func TestLoadConfigUsage(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name string
		args []string
	}{
		{"no script", nil},
		{"extra args", []string{"a.yaml", "b.yaml"}},
		{"bad flag", []string{"--frobnicate", "a.yaml"}},
	} {
		_, err := loadConfig(test.args)
		assert.For(test.name).That(app.ExitCodeOf(err)).Equals(app.UsageExit)
	}

	cfg, err := loadConfig([]string{"--log-level", "loud", "a.yaml"})
	assert.For("load").ThatError(err).Succeeded()
	_, err = cfg.logConfig()
	assert.For("bad level").That(app.ExitCodeOf(err)).Equals(app.UsageExit)

	cfg, err = loadConfig([]string{"--snapshot-frames", "3-1", "a.yaml"})
	assert.For("load frames").ThatError(err).Succeeded()
	_, err = cfg.snapshotFrames()
	assert.For("bad frames").That(app.ExitCodeOf(err)).Equals(app.UsageExit)
}
