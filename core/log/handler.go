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
	"context"
	"sync"
)

// Handler is the handler of log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

// NewHandler returns a Handler that calls handle for each message and close
// when the handler is closed.
func NewHandler(handle func(*Message), close func()) Handler {
	if close == nil {
		close = func() {}
	}
	return &handler{handle, close}
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close()            { h.close() }

type handlerKeyTy string

const handlerKey handlerKeyTy = "log.handlerKey"

// PutHandler returns a new context with the Handler assigned to w.
func PutHandler(ctx context.Context, w Handler) context.Context {
	return context.WithValue(ctx, handlerKey, w)
}

// GetHandler returns the Handler assigned to ctx.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}

// Channel is a log handler that passes log messages to another Handler through
// a chan.
// This makes this Handler safe to use from multiple threads.
func Channel(to Handler, size int) Handler {
	c := make(chan *Message, size)
	done := make(chan struct{})
	go func() {
		defer func() {
			to.Close()
			close(done)
		}()
		for m := range c {
			if m == nil {
				return
			}
			to.Handle(m)
		}
	}()
	handle := func(m *Message) {
		if m == nil {
			return
		}
		select {
		case c <- m: // Message sent.
		case <-done: // Handler closed. Message dropped on floor.
		}
	}
	close := func() {
		select {
		case <-done: // Already stopped.
		case c <- nil: // Stop requested.
			<-done // Wait for flush of existing messages.
		}
	}
	return &handler{handle, close}
}

// Broadcaster forwards all messages to all supplied handlers.
// Broadcaster implements the Handler interface.
type Broadcaster struct {
	l        sync.RWMutex
	handlers map[int]Handler
	nextID   int
}

// Broadcast forwards all messages sent to Broadcast to all supplied handlers.
// Additional handlers can be added with Listen.
func Broadcast(handlers ...Handler) *Broadcaster {
	m := make(map[int]Handler, len(handlers))
	for i, h := range handlers {
		m[i] = h
	}
	return &Broadcaster{handlers: m, nextID: len(handlers)}
}

// Listen calls adds h to the list of handlers that are informed of each log
// message passed to Handle.
func (b *Broadcaster) Listen(h Handler) (unlisten func()) {
	b.l.Lock()
	defer b.l.Unlock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	return func() {
		b.l.Lock()
		defer b.l.Unlock()
		delete(b.handlers, id)
	}
}

// Handle broadcasts the page to all the listening handlers.
func (b *Broadcaster) Handle(m *Message) {
	b.l.RLock()
	defer b.l.RUnlock()
	for _, h := range b.handlers {
		h.Handle(m)
	}
}

// Close calls Close on all the listening handlers and removes them from the
// broadcaster.
func (b *Broadcaster) Close() {
	b.l.Lock()
	defer b.l.Unlock()
	for _, h := range b.handlers {
		h.Close()
	}
	b.handlers = map[int]Handler{}
}
