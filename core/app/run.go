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
	"sync"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/pkg/errors"
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when the
	// application exits. It defaults to os.Exit
	ExitFuncForTesting = os.Exit
	// Version holds the version specification for the application.
	Version = VersionSpec{Major: 1, Minor: 0, Point: -1}
)

// Task is the main body of an application.
type Task func(ctx context.Context) error

// VersionSpec is the version of the application.
type VersionSpec struct {
	// Major version, the version structure is in valid if <0
	Major int
	// Minor version, not used if <0
	Minor int
	// Point version, not used if <0
	Point int
	// The build identifier, not used if an empty string
	Build string
}

// IsValid returns true if v holds a major version.
func (v VersionSpec) IsValid() bool {
	return v.Major >= 0
}

func (v VersionSpec) Format(f fmt.State, c rune) {
	fmt.Fprint(f, v.Major)
	if v.Minor >= 0 {
		fmt.Fprint(f, ".", v.Minor)
	}
	if v.Point >= 0 {
		fmt.Fprint(f, ".", v.Point)
	}
	if v.Build != "" {
		fmt.Fprint(f, ":", v.Build)
	}
}

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It builds the root logging context, cancels it on an interrupt signal, runs
// main and then converts the returned error to an exit code.
// Run does not return when main fails.
func Run(main Task) {
	ExitFuncForTesting(int(run(context.Background(), main)))
}

func run(root context.Context, main Task) (code ExitCode) {
	// Defer the panic handling
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		default:
			panic(cause)
		}
	}()

	ctx := prepareContext(root, DefaultLogConfig())
	ctx, cancel := context.WithCancel(ctx)

	// Defer the shutdown code
	shutdownOnce := sync.Once{}
	shutdown := func() {
		shutdownOnce.Do(func() {
			cancel()
			runCleanups(ctx)
			LogHandler.Close()
		})
	}
	defer shutdown()

	stop := handleAbortSignals(cancel)
	defer stop()

	err := main(ctx)
	code = ExitCodeOf(err)
	if err != nil {
		log.E(ctx, "Main failed\nError: %v", err)
	}
	return code
}

// ExitCodeOf returns the exit code an application should report for err.
// A nil error is SuccessExit, an error caused by an ExitCode is that code and
// anything else is a FatalExit.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return SuccessExit
	}
	if code, ok := errors.Cause(err).(ExitCode); ok {
		return code
	}
	return FatalExit
}
