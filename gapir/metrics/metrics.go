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

// Package metrics exports replay progress as prometheus metrics.
package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts replayed calls and frames.
// It is a frame.Observer and its Call method is a glretrace.Listener.
type Metrics struct {
	calls     *prometheus.CounterVec
	failed    prometheus.Counter
	frames    prometheus.Counter
	frameTime prometheus.Histogram

	// Now is the clock used to time frames.
	Now func() time.Time

	mutex     sync.Mutex
	lastFrame time.Time
}

// New creates the replay metrics and registers them with registerer.
func New(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls",
			Help:      "Number of calls replayed, by API",
		}, []string{"api"}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_failed",
			Help:      "Number of calls whose handler returned an error",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames",
			Help:      "Number of frames completed",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_seconds",
			Help:      "Wall time between frame boundaries",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		Now: time.Now,
	}
	for _, c := range []prometheus.Collector{m.calls, m.failed, m.frames, m.frameTime} {
		if err := registerer.Register(c); err != nil {
			return nil, errors.Wrap(err, "Registering replay metrics")
		}
	}
	return m, nil
}

func apiOf(name string) string {
	switch {
	case len(name) >= 3 && name[:3] == "egl":
		return "egl"
	case len(name) >= 2 && name[:2] == "gl":
		return "gl"
	default:
		return "other"
	}
}

// Call counts a replayed call and whether it failed.
func (m *Metrics) Call(call *capture.Call, err error) {
	m.calls.WithLabelValues(apiOf(call.Name)).Inc()
	if err != nil {
		m.failed.Inc()
	}
}

// FrameComplete counts a frame and records the time since the previous one.
func (m *Metrics) FrameComplete(ctx context.Context, call *capture.Call) {
	now := m.Now()
	m.mutex.Lock()
	last := m.lastFrame
	m.lastFrame = now
	m.mutex.Unlock()

	m.frames.Inc()
	if !last.IsZero() {
		m.frameTime.Observe(now.Sub(last).Seconds())
	}
}

// Start marks the beginning of the first frame.
func (m *Metrics) Start() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastFrame = m.Now()
}

// Handler returns the HTTP handler serving the metrics gathered by registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
}

// Serve serves registry at /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, registry *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(registry))
	server := &http.Server{Addr: addr, Handler: mux}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			if err := server.Shutdown(context.Background()); err != nil {
				log.W(ctx, "Metrics server shutdown: %v", err)
			}
		case <-done:
		}
	}()
	defer close(done)

	log.I(ctx, "Serving metrics at http://%s/metrics", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return errors.Wrap(err, "Serving metrics")
	}
	return nil
}
