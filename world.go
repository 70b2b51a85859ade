// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Elem is the type-erased element carried through a world's context
// values. Concrete types are recovered via type assertions at the
// observation boundary (Result, Await, RunDeferred), following the
// kont.Erased convention.
type Elem = kont.Erased

// World is the composable-context capability for one execution strategy.
// C is the context value type of that strategy (an erased container of
// exactly one element or one error of type E), fixed per implementation:
//
//   - [SyncWorld]:   C = [Sync]    (resolved immediately)
//   - [FutureWorld]: C = *[Future] (resolved at an unspecified later point)
//   - [EffWorld]:    C = [Deferred] (resolved when the continuation is run)
//
// All four operations are total. A context observed as resolved never
// changes branch. Map and FlatMap over an error context must propagate the
// error unchanged without invoking f; FlatMap over a value context invokes
// f exactly once. Pure must be the identity element for FlatMap.
type World[C, E any] interface {
	// Pure lifts a plain value into a successful context.
	Pure(v Elem) C
	// Map transforms a held value, preserving the error branch unchanged.
	Map(fa C, f func(Elem) Elem) C
	// FlatMap sequences a dependent computation.
	FlatMap(fa C, f func(Elem) C) C
	// RaiseError constructs an already-failed context carrying err.
	RaiseError(err E) C
}
