// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Deferred is the deferred context value: a kont continuation that
// resolves when run. Nothing executes at composition time; RaiseError
// is the kont error effect and short-circuits during RunDeferred.
type Deferred = kont.Eff[Elem]

// EffWorld is the deferred execution strategy on kont continuations.
// Operations bound to this world build a description of the call;
// RunDeferred evaluates it under an error handler.
type EffWorld[E any] struct{}

// Pure lifts v into a pure continuation.
func (EffWorld[E]) Pure(v Elem) Deferred {
	return kont.Pure(v)
}

// Map transforms the eventual result.
func (EffWorld[E]) Map(fa Deferred, f func(Elem) Elem) Deferred {
	return kont.Map(fa, f)
}

// FlatMap sequences a dependent continuation.
func (EffWorld[E]) FlatMap(fa Deferred, f func(Elem) Deferred) Deferred {
	return kont.Bind(fa, f)
}

// RaiseError performs the kont error effect. The error is observed as
// the Left branch by RunDeferred; continuations bound after the raise
// never run.
func (EffWorld[E]) RaiseError(err E) Deferred {
	return kont.ThrowError[E, Elem](err)
}

// deferredHandler handles the error effect for RunDeferred.
// Throw short-circuits, returning Left.
type deferredHandler[E any] struct {
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h deferredHandler[E]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	})
	if !ok {
		panic("apix: unhandled effect in deferredHandler")
	}
	v, _ := eop.DispatchError(h.errCtx)
	if h.errCtx.HasErr {
		return kont.Left[E, Elem](h.errCtx.Err), false
	}
	return v, true
}

// RunDeferred evaluates a deferred context and recovers the typed
// result: Right on success, Left on a raised error. The Right element
// must hold an O.
func RunDeferred[O, E any](m Deferred) kont.Either[E, O] {
	wrapped := kont.Map[kont.Resumed, Elem, kont.Either[E, Elem]](m, func(v Elem) kont.Either[E, Elem] {
		return kont.Right[E, Elem](v)
	})
	var errCtx kont.ErrorContext[E]
	r := kont.Handle(wrapped, deferredHandler[E]{errCtx: &errCtx})
	if e, ok := r.GetLeft(); ok {
		return kont.Left[E, O](e)
	}
	v, _ := r.GetRight()
	return kont.Right[E, O](v.(O))
}
