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
	"os/signal"
	"sync"

	"github.com/gfxreplay/glretrace/core/log"
)

// ExitCode is the process exit status of an application.
// It can be panicked with, or returned as an error cause from the main task.
type ExitCode int

const (
	// SuccessExit is the exit code for succesful exit.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code if something logs at a fatal severity (critical or higher by default)
	FatalExit
	// UsageExit is the exit code if the usage function was invoked
	UsageExit
	// AbortExit is the exit code if a replay hit an unrecoverable call.
	AbortExit
)

func (c ExitCode) Error() string {
	switch c {
	case SuccessExit:
		return "success"
	case FatalExit:
		return "fatal error"
	case UsageExit:
		return "usage error"
	case AbortExit:
		return "replay aborted"
	default:
		return fmt.Sprintf("exit code %d", int(c))
	}
}

var (
	cleanupMutex sync.Mutex
	cleanups     []func(ctx context.Context)
)

// AddCleanup registers f to be called when the application shuts down.
// Cleanups run in the reverse order they were added.
func AddCleanup(f func(ctx context.Context)) {
	cleanupMutex.Lock()
	defer cleanupMutex.Unlock()
	cleanups = append(cleanups, f)
}

func runCleanups(ctx context.Context) {
	cleanupMutex.Lock()
	list := cleanups
	cleanups = nil
	cleanupMutex.Unlock()
	for i := len(list) - 1; i >= 0; i-- {
		list[i](ctx)
	}
	log.D(ctx, "Ran %d cleanups", len(list))
}

// handleAbortSignals calls cancel when the process is interrupted.
// The returned function stops listening.
func handleAbortSignals(cancel context.CancelFunc) func() {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-sigchan:
			cancel()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigchan)
		close(done)
	}
}
