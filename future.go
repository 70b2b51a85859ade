// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// contCapacity is the bounded capacity for a future's continuation queue.
// 4 covers the deepest chain the client itself builds (one decode
// continuation plus caller-side Map/FlatMap) while keeping the ring
// buffer within a single cache line.
const contCapacity = 4

// Future resolution states. A future transitions exactly once,
// from pending to fulfilled or to failed.
const (
	futurePending   uint32 = 0
	futureFulfilled uint32 = 1
	futureFailed    uint32 = 2
)

// Future is the asynchronous context value: a single-assignment cell
// resolving to an element or to a typed error at an unspecified later
// point. Continuations registered before resolution are parked on a
// bounded lock-free SPSC queue and run by whichever side completes the
// rendezvous; continuations registered after resolution run inline.
//
// SPSC constraint: continuations must be registered from a single
// goroutine at a time (the composing side), and Complete/Fail must be
// called from a single goroutine (the resolving side). The drain flag
// serializes consumers, so either side may end up running a parked
// continuation.
type Future[E any] struct {
	state    atomix.Uint32
	draining atomix.Uint32
	value    Elem
	err      E
	conts    lfq.SPSC[func(kont.Either[E, Elem])]
}

// newFuture returns a pending future with an initialized
// continuation queue.
func newFuture[E any]() *Future[E] {
	f := &Future[E]{}
	f.conts.Init(contCapacity)
	return f
}

// Complete resolves f to the value branch and runs parked continuations.
// Panics if f is already resolved: a context never changes branch.
func (f *Future[E]) Complete(v Elem) {
	f.value = v
	if !f.state.CompareAndSwap(futurePending, futureFulfilled) {
		panic("apix: future resolved twice")
	}
	f.drain()
}

// Fail resolves f to the error branch and runs parked continuations.
// Panics if f is already resolved: a context never changes branch.
func (f *Future[E]) Fail(err E) {
	f.err = err
	if !f.state.CompareAndSwap(futurePending, futureFailed) {
		panic("apix: future resolved twice")
	}
	f.drain()
}

// resolved returns the resolution outcome, if any.
// The value/err stores happen before the state transition, so a
// non-pending load here guarantees the outcome fields are visible.
func (f *Future[E]) resolved() (kont.Either[E, Elem], bool) {
	switch f.state.Load() {
	case futureFulfilled:
		return kont.Right[E, Elem](f.value), true
	case futureFailed:
		return kont.Left[E, Elem](f.err), true
	}
	var zero kont.Either[E, Elem]
	return zero, false
}

// subscribe registers k to run with the resolution outcome.
// Runs k inline when f is already resolved. A full continuation queue
// is waited out with iox.Backoff: a resolved future always drains, so
// capacity pressure is transient.
//
// The post-enqueue recheck closes the race with a resolver whose drain
// finished before the enqueue landed: if the state reads resolved here,
// this side drains too, so k is never left parked.
func (f *Future[E]) subscribe(k func(kont.Either[E, Elem])) {
	if r, ok := f.resolved(); ok {
		k(r)
		return
	}
	var bo iox.Backoff
	for {
		if err := f.conts.Enqueue(&k); err == nil {
			break
		}
		bo.Wait()
	}
	if _, ok := f.resolved(); ok {
		f.drain()
	}
}

// drain empties the continuation queue, running each parked
// continuation with the resolution outcome. Only called after
// resolution. The draining flag serializes consumers (the SPSC
// consumer side must be single); acquisition waits with iox.Backoff,
// bounded by the running continuations of the current holder.
func (f *Future[E]) drain() {
	r, _ := f.resolved()
	var bo iox.Backoff
	for !f.draining.CompareAndSwap(0, 1) {
		bo.Wait()
	}
	for {
		k, err := f.conts.Dequeue()
		if err != nil {
			break
		}
		k(r)
	}
	f.draining.Store(0)
}

// Await blocks until f is resolved and recovers the typed result,
// waiting with adaptive backoff (iox.Backoff), without creating
// channels. The Right element must hold an O.
func Await[O, E any](f *Future[E]) kont.Either[E, O] {
	var bo iox.Backoff
	for {
		if r, ok := f.resolved(); ok {
			if e, isErr := r.GetLeft(); isErr {
				return kont.Left[E, O](e)
			}
			v, _ := r.GetRight()
			return kont.Right[E, O](v.(O))
		}
		bo.Wait()
	}
}

// FutureWorld is the asynchronous execution strategy. Run on an
// operation bound to this world returns a pending *Future immediately;
// the invoker schedules the underlying work and resolves it.
type FutureWorld[E any] struct{}

// Pure returns an already-fulfilled future holding v.
func (FutureWorld[E]) Pure(v Elem) *Future[E] {
	f := newFuture[E]()
	f.Complete(v)
	return f
}

// RaiseError returns an already-failed future carrying err.
func (FutureWorld[E]) RaiseError(err E) *Future[E] {
	f := newFuture[E]()
	f.Fail(err)
	return f
}

// Map registers a transforming continuation on fa.
// Failure propagates unchanged without invoking f.
func (w FutureWorld[E]) Map(fa *Future[E], f func(Elem) Elem) *Future[E] {
	return w.FlatMap(fa, func(v Elem) *Future[E] {
		return w.Pure(f(v))
	})
}

// FlatMap registers a sequencing continuation on fa. When fa resolves
// to a value, f runs exactly once and its future's outcome is forwarded;
// when fa fails, the error is forwarded unchanged and f never runs.
func (FutureWorld[E]) FlatMap(fa *Future[E], f func(Elem) *Future[E]) *Future[E] {
	fb := newFuture[E]()
	fa.subscribe(func(r kont.Either[E, Elem]) {
		if e, ok := r.GetLeft(); ok {
			fb.Fail(e)
			return
		}
		v, _ := r.GetRight()
		f(v).subscribe(func(inner kont.Either[E, Elem]) {
			if e, ok := inner.GetLeft(); ok {
				fb.Fail(e)
				return
			}
			iv, _ := inner.GetRight()
			fb.Complete(iv)
		})
	})
	return fb
}
