// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Sync is the synchronous context value: an already-resolved
// kont.Either holding the erased element on the Right branch or the
// typed error on the Left branch.
type Sync[E any] = kont.Either[E, Elem]

// SyncWorld is the synchronous/failable execution strategy.
// Evaluation is immediate on the calling goroutine; Run on an operation
// bound to this world returns only after the invoker has resolved.
type SyncWorld[E any] struct{}

// Pure lifts v into a resolved Right context.
func (SyncWorld[E]) Pure(v Elem) Sync[E] {
	return kont.Right[E, Elem](v)
}

// Map applies f to the Right branch. Left propagates unchanged.
func (SyncWorld[E]) Map(fa Sync[E], f func(Elem) Elem) Sync[E] {
	if e, ok := fa.GetLeft(); ok {
		return kont.Left[E, Elem](e)
	}
	v, _ := fa.GetRight()
	return kont.Right[E, Elem](f(v))
}

// FlatMap sequences f after fa. Left propagates unchanged; f is
// invoked exactly once on the Right branch.
func (SyncWorld[E]) FlatMap(fa Sync[E], f func(Elem) Sync[E]) Sync[E] {
	if e, ok := fa.GetLeft(); ok {
		return kont.Left[E, Elem](e)
	}
	v, _ := fa.GetRight()
	return f(v)
}

// RaiseError constructs a resolved Left context carrying err.
func (SyncWorld[E]) RaiseError(err E) Sync[E] {
	return kont.Left[E, Elem](err)
}

// Result recovers the typed result from a synchronous context.
// The Right element must hold an O; the type was fixed by the decoder
// bound at Op construction.
func Result[O, E any](c Sync[E]) kont.Either[E, O] {
	if e, ok := c.GetLeft(); ok {
		return kont.Left[E, O](e)
	}
	v, _ := c.GetRight()
	return kont.Right[E, O](v.(O))
}
