// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// NewSyncClient creates a client executing in the synchronous world.
// Fuses New + SyncWorld, fixing the context type to Sync[E].
func NewSyncClient[E any](inv Invoker[Sync[E]]) *Client[SyncWorld[E], Sync[E], E] {
	return New[SyncWorld[E], Sync[E], E](SyncWorld[E]{}, inv)
}

// NewFutureClient creates a client executing in the asynchronous world.
// Fuses New + FutureWorld, fixing the context type to *Future[E].
func NewFutureClient[E any](inv Invoker[*Future[E]]) *Client[FutureWorld[E], *Future[E], E] {
	return New[FutureWorld[E], *Future[E], E](FutureWorld[E]{}, inv)
}

// NewDeferredClient creates a client executing in the deferred world.
// Fuses New + EffWorld, fixing the context type to Deferred.
func NewDeferredClient[E any](inv Invoker[Deferred]) *Client[EffWorld[E], Deferred, E] {
	return New[EffWorld[E], Deferred, E](EffWorld[E]{}, inv)
}

// NewLocalSync creates a Local invoker targeting the synchronous world.
func NewLocalSync[E any](missing func(op string) E) *Local[SyncWorld[E], Sync[E], E] {
	return NewLocal[SyncWorld[E], Sync[E], E](SyncWorld[E]{}, missing)
}

// NewLocalFuture creates a Local invoker targeting the asynchronous
// world. Handlers still resolve on the calling goroutine; use Async for
// an invoker that schedules work of its own.
func NewLocalFuture[E any](missing func(op string) E) *Local[FutureWorld[E], *Future[E], E] {
	return NewLocal[FutureWorld[E], *Future[E], E](FutureWorld[E]{}, missing)
}

// NewLocalDeferred creates a Local invoker targeting the deferred world.
func NewLocalDeferred[E any](missing func(op string) E) *Local[EffWorld[E], Deferred, E] {
	return NewLocal[EffWorld[E], Deferred, E](EffWorld[E]{}, missing)
}

// Call builds and runs a one-shot synchronous operation.
// Fuses Op + Run + Result.
func Call[I, O, E any](c *Client[SyncWorld[E], Sync[E], E], name string, enc Encoder[I], dec Decoder[O, E], in I) kont.Either[E, O] {
	return Result[O](Op[I, O](c, name, enc, dec).Run(in))
}

// CallFuture builds and runs a one-shot asynchronous operation,
// returning the pending future. Fuses Op + Run; observe with Await.
func CallFuture[I, O, E any](c *Client[FutureWorld[E], *Future[E], E], name string, enc Encoder[I], dec Decoder[O, E], in I) *Future[E] {
	return Op[I, O](c, name, enc, dec).Run(in)
}

// CallDeferred builds and runs a one-shot deferred operation,
// returning the unevaluated continuation. Fuses Op + Run; evaluate
// with RunDeferred.
func CallDeferred[I, O, E any](c *Client[EffWorld[E], Deferred, E], name string, enc Encoder[I], dec Decoder[O, E], in I) Deferred {
	return Op[I, O](c, name, enc, dec).Run(in)
}
