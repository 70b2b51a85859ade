// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import "fmt"

// Kind classifies a Fault by where in the call it arose.
type Kind uint8

const (
	// KindConnection marks an invocation failure reaching the target.
	KindConnection Kind = iota + 1
	// KindProtocol marks an invocation failure after the target was reached.
	KindProtocol
	// KindMalformed marks a decode failure on the response wire value.
	KindMalformed
	// KindNoOperation marks an unregistered operation name.
	KindNoOperation
)

// String returns the kind label.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindProtocol:
		return "protocol"
	case KindMalformed:
		return "malformed"
	case KindNoOperation:
		return "no operation"
	}
	return "unknown"
}

// Fault is the stock typed error instantiation for E. The error type
// of a client stays caller-chosen; Fault is for callers that do not
// need their own. Immutable value type, comparable.
type Fault struct {
	Op   string
	Kind Kind
	Msg  string
}

// Error implements error.
func (f Fault) Error() string {
	if f.Op == "" {
		return fmt.Sprintf("apix: %s: %s", f.Kind, f.Msg)
	}
	return fmt.Sprintf("apix: %s: %s: %s", f.Op, f.Kind, f.Msg)
}

// ConnectionFault constructs a KindConnection fault.
func ConnectionFault(op, msg string) Fault {
	return Fault{Op: op, Kind: KindConnection, Msg: msg}
}

// MalformedFault constructs a KindMalformed fault.
func MalformedFault(op, msg string) Fault {
	return Fault{Op: op, Kind: KindMalformed, Msg: msg}
}

// NoOperationFault constructs a KindNoOperation fault. Suitable as the
// missing mapping of a Local invoker with E = Fault.
func NoOperationFault(op string) Fault {
	return Fault{Op: op, Kind: KindNoOperation, Msg: "no handler registered"}
}
