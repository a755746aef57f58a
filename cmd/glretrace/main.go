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

// The glretrace command replays a recorded EGL/GL call script.
package main

import (
	"context"
	"net"
	"os"

	"github.com/gfxreplay/glretrace/core/app"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/frame"
	"github.com/gfxreplay/glretrace/gapir/glretrace"
	"github.com/gfxreplay/glretrace/gapir/glws/headless"
	"github.com/gfxreplay/glretrace/gapir/metrics"
	"github.com/gfxreplay/glretrace/gapir/status"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	app.Name = "glretrace"
	app.Run(func(ctx context.Context) error { return run(ctx, os.Args[1:]) })
}

func run(ctx context.Context, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logCfg, err := cfg.logConfig()
	if err != nil {
		return err
	}
	if ctx, err = app.ConfigureLog(ctx, logCfg); err != nil {
		return err
	}
	return replay(ctx, cfg)
}

func readScript(ctx context.Context, path string) (*capture.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "Opening call script")
	}
	defer f.Close()
	calls, err := capture.ReadScript(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading %v", path)
	}
	log.I(ctx, "Read %d calls from %v", len(calls.Calls), path)
	return calls, nil
}

func replay(ctx context.Context, cfg *Config) error {
	calls, err := readScript(ctx, cfg.Script)
	if err != nil {
		return err
	}
	snapshots, err := cfg.snapshotFrames()
	if err != nil {
		return err
	}

	system := headless.New()
	counter := &frame.Counter{}
	progress := status.NewProgress(system)
	observers := frame.Fanout{counter, progress}
	if !snapshots.Empty() {
		if err := os.MkdirAll(cfg.SnapshotDir, 0755); err != nil {
			return errors.Wrap(err, "Creating snapshot directory")
		}
		observers = append(observers, &frame.Snapshotter{Source: system, Frames: snapshots, Dir: cfg.SnapshotDir})
	}
	registry := prometheus.NewRegistry()
	m, err := metrics.New("glretrace", registry)
	if err != nil {
		return err
	}
	observers = append(observers, m)

	e := glretrace.New(system, cfg.Visual, observers)
	e.CheckErrors = cfg.CheckErrors

	g, ctx := errgroup.WithContext(ctx)
	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()

	if cfg.StatusAddr != "" {
		listener, err := net.Listen("tcp", cfg.StatusAddr)
		if err != nil {
			return log.Errf(ctx, err, "Could not serve status on %v", cfg.StatusAddr)
		}
		g.Go(func() error { return status.Serve(serveCtx, listener, progress) })
	}
	if cfg.MetricsAddr != "" {
		g.Go(func() error { return metrics.Serve(serveCtx, cfg.MetricsAddr, registry) })
	}

	g.Go(func() error {
		defer stopServing()
		m.Start()
		err := glretrace.Run(ctx, e, calls, func(call *capture.Call, err error) {
			progress.Call(call, err)
			m.Call(call, err)
		})
		progress.Finish(err)
		if cerr := e.Close(ctx); cerr != nil {
			log.W(ctx, "Releasing replay resources: %v", cerr)
		}
		log.I(ctx, "Replayed %d frames", counter.Frames())
		if errors.Cause(err) == glretrace.ErrAbort {
			return errors.Wrap(app.AbortExit, err.Error())
		}
		return err
	})
	return g.Wait()
}
