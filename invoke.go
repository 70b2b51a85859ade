// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Invoker performs the actual remote or local execution. It is the
// only component permitted external interaction; every call must
// resolve the returned context to a response node or to a raised
// error, never escape it with an unmodeled failure. The invoker is
// generic over the context type of the client it backs and may be
// shared by any number of operations.
type Invoker[C any] interface {
	Invoke(req Node, op string) C
}

// InvokerFunc adapts a function to the Invoker capability.
type InvokerFunc[C any] func(Node, string) C

// Invoke implements Invoker.
func (f InvokerFunc[C]) Invoke(req Node, op string) C {
	return f(req, op)
}

// Local is an in-process invoker dispatching on a handler table.
// Handlers resolve on the calling goroutine inside the target world;
// an unregistered operation name resolves to the typed error produced
// by the missing mapping.
type Local[W World[C, E], C, E any] struct {
	world    W
	handlers map[string]func(Node) kont.Either[E, Node]
	missing  func(op string) E
}

// NewLocal creates a Local invoker for the given world. The missing
// mapping is required: the invoker is generic in E, so it cannot
// invent the typed error for an unknown operation name itself.
func NewLocal[W World[C, E], C, E any](world W, missing func(op string) E) *Local[W, C, E] {
	return &Local[W, C, E]{
		world:    world,
		handlers: make(map[string]func(Node) kont.Either[E, Node]),
		missing:  missing,
	}
}

// Handle registers h for the given operation name, replacing any
// previous handler. Registration must finish before the first Invoke.
func (l *Local[W, C, E]) Handle(op string, h func(Node) kont.Either[E, Node]) *Local[W, C, E] {
	l.handlers[op] = h
	return l
}

// Invoke implements Invoker by running the registered handler and
// lifting its two-branch result into the world.
func (l *Local[W, C, E]) Invoke(req Node, op string) C {
	h, ok := l.handlers[op]
	if !ok {
		return l.world.RaiseError(l.missing(op))
	}
	r := h(req)
	if e, isErr := r.GetLeft(); isErr {
		return l.world.RaiseError(e)
	}
	v, _ := r.GetRight()
	return l.world.Pure(v)
}

// Async is a future-world invoker adapting a blocking call function.
// Invoke returns a pending future immediately and resolves it from a
// goroutine of its own; the scheduling of the underlying work is the
// invoker's responsibility, not the client's.
type Async[E any] struct {
	do func(req Node, op string) kont.Either[E, Node]
}

// NewAsync creates an Async invoker around a blocking call function.
// do must be safe for concurrent use when operations run concurrently.
func NewAsync[E any](do func(req Node, op string) kont.Either[E, Node]) *Async[E] {
	return &Async[E]{do: do}
}

// Invoke implements Invoker for the future world.
func (a *Async[E]) Invoke(req Node, op string) *Future[E] {
	f := newFuture[E]()
	go func() {
		r := a.do(req, op)
		if e, isErr := r.GetLeft(); isErr {
			f.Fail(e)
			return
		}
		v, _ := r.GetRight()
		f.Complete(v)
	}()
	return f
}
