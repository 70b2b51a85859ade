// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Client binds one world capability to one invoker. The context type
// and error type are fixed at construction; the invoker is shared by
// every operation the client produces.
type Client[W World[C, E], C, E any] struct {
	world W
	inv   Invoker[C]
}

// New creates a client executing operations in the given world
// through the given invoker.
func New[W World[C, E], C, E any](world W, inv Invoker[C]) *Client[W, C, E] {
	return &Client[W, C, E]{world: world, inv: inv}
}

// Operation is a named, typed call descriptor bound to one client and
// its invoker. Immutable; construction is cheap, side-effect free, and
// may be repeated safely. The output type is phantom: it is fixed by
// the decoder bound at construction and recovered at the observation
// boundary.
type Operation[C, I, O any] struct {
	kont.Phantom[O]
	name   string
	serial Serial
	run    func(I) C
}

// Name returns the operation name sent to the invoker.
func (op Operation[C, I, O]) Name() string {
	return op.name
}

// Serial returns the serial number assigned at construction.
func (op Operation[C, I, O]) Serial() Serial {
	return op.serial
}

// Run executes the operation with the given input: the input is
// encoded, delegated to the invoker, and the response decoded, all
// inside the client's world. The result is a single context value
// holding the decoded output or a propagated typed error; no
// intermediate state is observable.
func (op Operation[C, I, O]) Run(in I) C {
	return op.run(in)
}

// Op builds the named operation on c, binding the encoder for I and
// the decoder for O. Per call: encode, invoke, then sequence decode
// over the wrapped response, lifting the decoded value with Pure and
// a decode failure with RaiseError. An invocation failure raised by
// the invoker short-circuits past the decoder unchanged.
func Op[I, O any, W World[C, E], C, E any](c *Client[W, C, E], name string, enc Encoder[I], dec Decoder[O, E]) Operation[C, I, O] {
	world, inv := c.world, c.inv
	return Operation[C, I, O]{
		name:   name,
		serial: nextSerial(),
		run: func(in I) C {
			wrapped := inv.Invoke(enc.Encode(in), name)
			return world.FlatMap(wrapped, func(x Elem) C {
				r := dec.Decode(x.(Node))
				if e, isErr := r.GetLeft(); isErr {
					return world.RaiseError(e)
				}
				v, _ := r.GetRight()
				return world.Pure(v)
			})
		},
	}
}
