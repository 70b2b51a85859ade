// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package apix provides an effect-polymorphic API client on
// [code.hybscloud.com/kont].
//
// A remote call is described once — name, input type, output type — and
// executes under interchangeable execution strategies (worlds) without
// duplicating the call logic. Every operation runs serialize → invoke →
// decode inside the chosen world, with typed error propagation via
// [code.hybscloud.com/kont.Either] instead of uncaught failures.
//
// # Architecture
//
//   - Worlds: [World] is the composable-context capability (Pure, Map,
//     FlatMap, RaiseError) over a type-erased element ([Elem]).
//     [SyncWorld] resolves immediately on [Sync] values; [FutureWorld]
//     resolves later on lock-free [Future] cells via
//     [code.hybscloud.com/lfq] and [code.hybscloud.com/atomix];
//     [EffWorld] defers on [Deferred] kont continuations.
//   - Serialization: [Encoder] and [Decoder] are per-type capabilities
//     over the opaque wire document [Node]. Decode is two-branch
//     ([code.hybscloud.com/kont.Either]), never a panic.
//   - Invocation: [Invoker] performs the external call inside the
//     world's context. [Local] dispatches in-process; [Async] resolves
//     futures from its own goroutine.
//   - Client: [New] fixes world, error type, and invoker; [Op] produces
//     immutable named [Operation] descriptors.
//   - Error Handling: invocation and decode failures short-circuit as
//     typed errors; Map/FlatMap never observe an error branch.
//
// # Observation
//
//   - Sync: [Result] recovers the typed Either immediately.
//   - Future: [Await] blocks with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]), without creating channels.
//   - Deferred: [RunDeferred] evaluates under the kont error handler.
//
// # Example
//
//	inv := apix.NewLocalSync[apix.Fault](apix.NoOperationFault)
//	inv.Handle("getOrderList", func(req apix.Node) kont.Either[apix.Fault, apix.Node] {
//		return kont.Right[apix.Fault](apix.El("OrderList"))
//	})
//	client := apix.NewSyncClient[apix.Fault](inv)
//	orders := apix.Op[OrderQuery, OrderList](client, "getOrderList", queryEncoder, listDecoder)
//	result := apix.Result[OrderList](orders.Run(OrderQuery{UserID: "0001"}))
package apix
