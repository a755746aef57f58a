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
	"strings"

	"github.com/gfxreplay/glretrace/core/app"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/frame"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configKey         = "config"
	scriptKey         = "script"
	doubleBufferKey   = "double-buffer"
	depthBitsKey      = "depth-bits"
	stencilBitsKey    = "stencil-bits"
	checkErrorsKey    = "check-errors"
	logLevelKey       = "log-level"
	logStyleKey       = "log-style"
	logJSONKey        = "log-json"
	logFileKey        = "log-file"
	snapshotFramesKey = "snapshot-frames"
	snapshotDirKey    = "snapshot-dir"
	statusAddrKey     = "status-addr"
	metricsAddrKey    = "metrics-addr"

	envPrefix = "GLRETRACE"
)

// Config is the settings of a replay.
type Config struct {
	Script         string      `mapstructure:"script"`
	Visual         glws.Visual `mapstructure:",squash"`
	CheckErrors    bool        `mapstructure:"check-errors"`
	LogLevel       string      `mapstructure:"log-level"`
	LogStyle       string      `mapstructure:"log-style"`
	LogJSON        bool        `mapstructure:"log-json"`
	LogFile        string      `mapstructure:"log-file"`
	SnapshotFrames string      `mapstructure:"snapshot-frames"`
	SnapshotDir    string      `mapstructure:"snapshot-dir"`
	StatusAddr     string      `mapstructure:"status-addr"`
	MetricsAddr    string      `mapstructure:"metrics-addr"`
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(app.Name, pflag.ContinueOnError)
	fs.String(configKey, "", "Config file to read settings from")
	fs.String(scriptKey, "", "Call script to replay. May also be given as the only argument")
	fs.Bool(doubleBufferKey, glws.DefaultVisual.DoubleBuffer, "Replay with a double-buffered visual")
	fs.Int(depthBitsKey, glws.DefaultVisual.DepthBits, "Depth buffer bits of the visual")
	fs.Int(stencilBitsKey, glws.DefaultVisual.StencilBits, "Stencil buffer bits of the visual")
	fs.Bool(checkErrorsKey, false, "Check and report GL errors after each GL call")
	fs.String(logLevelKey, log.Info.String(), "Lowest severity that is logged")
	fs.String(logStyleKey, "", "Log style: raw, brief, normal or detailed. Defaults to brief on a terminal")
	fs.Bool(logJSONKey, false, "Log structured JSON entries")
	fs.String(logFileKey, "", "File to write the log to")
	fs.String(snapshotFramesKey, "", `Frames to snapshot the state of, such as "1,5,10-12" or "*"`)
	fs.String(snapshotDirKey, ".", "Directory snapshots are written to")
	fs.String(statusAddrKey, "", "Address to serve the grpc replay status on")
	fs.String(metricsAddrKey, "", "Address to serve prometheus metrics on")
	return fs
}

// loadConfig parses args, then overlays the environment and the config file
// named by --config.
func loadConfig(args []string) (*Config, error) {
	fs := buildFlagSet()
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, app.UsageExit
		}
		return nil, errors.Wrap(app.UsageExit, err.Error())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "Binding flags")
	}
	if path := v.GetString(configKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Reading config %v", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "Decoding config")
	}
	switch rest := fs.Args(); {
	case len(rest) == 1 && cfg.Script == "":
		cfg.Script = rest[0]
	case len(rest) > 0:
		return nil, errors.Wrapf(app.UsageExit, "Unexpected arguments %v", rest)
	}
	if cfg.Script == "" {
		return nil, errors.Wrap(app.UsageExit, "No call script given")
	}
	return cfg, nil
}

// logConfig returns the log settings, starting from the defaults.
func (c *Config) logConfig() (app.LogConfig, error) {
	out := app.DefaultLogConfig()
	if c.LogLevel != "" {
		level, ok := log.ParseSeverity(c.LogLevel)
		if !ok {
			return out, errors.Wrapf(app.UsageExit, "Unknown log level %q", c.LogLevel)
		}
		out.Level = level
	}
	if c.LogStyle != "" {
		style, ok := log.FindStyle(c.LogStyle)
		if !ok {
			return out, errors.Wrapf(app.UsageExit, "Unknown log style %q", c.LogStyle)
		}
		out.Style = style
	}
	out.JSON = c.LogJSON
	out.File = c.LogFile
	return out, nil
}

func (c *Config) snapshotFrames() (frame.Selection, error) {
	sel, err := frame.ParseSelection(c.SnapshotFrames)
	if err != nil {
		return sel, errors.Wrap(app.UsageExit, err.Error())
	}
	return sel, nil
}
