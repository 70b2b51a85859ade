// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// Encoder encodes one domain type into the wire format. Encode is
// total: an encoder that can fail must represent the failure state
// inside the returned node, never panic.
type Encoder[I any] interface {
	Encode(in I) Node
}

// Decoder decodes the wire format into one domain type or a typed
// error. Decode is total and two-branch: malformed input yields Left,
// never a panic, so either branch lifts into the execution context
// uniformly.
type Decoder[O, E any] interface {
	Decode(wire Node) kont.Either[E, O]
}

// EncoderFunc adapts a function to the Encoder capability.
type EncoderFunc[I any] func(I) Node

// Encode implements Encoder.
func (f EncoderFunc[I]) Encode(in I) Node {
	return f(in)
}

// DecoderFunc adapts a function to the Decoder capability.
type DecoderFunc[O, E any] func(Node) kont.Either[E, O]

// Decode implements Decoder.
func (f DecoderFunc[O, E]) Decode(wire Node) kont.Either[E, O] {
	return f(wire)
}
