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

package capture

import (
	"context"
	"io"
)

// Source provides recorded calls in stream order.
type Source interface {
	// Next returns the next call, or io.EOF once the stream is exhausted.
	Next(ctx context.Context) (*Call, error)
}

// Sink accepts recorded calls in stream order.
type Sink interface {
	Write(ctx context.Context, c *Call) error
}

// List is an in-memory call stream. It is both a Source and a Sink.
type List struct {
	Calls []*Call
	next  int
}

// Next returns the next unread call in the list.
func (l *List) Next(ctx context.Context) (*Call, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.next >= len(l.Calls) {
		return nil, io.EOF
	}
	c := l.Calls[l.next]
	l.next++
	return c, nil
}

// Write appends c to the list, assigning it the next call ID.
func (l *List) Write(ctx context.Context, c *Call) error {
	c.ID = uint64(len(l.Calls))
	l.Calls = append(l.Calls, c)
	return nil
}

// Rewind restarts reading from the first call.
func (l *List) Rewind() { l.next = 0 }
