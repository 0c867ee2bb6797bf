// Package ioerror provides an I/O error value supporting equality and cheap
// duplication.
//
// It defines a single concrete type Error whose payload, when present, lives
// behind one shared handle, making == an allocation-free identity check and
// Clone an O(1) value copy.
package ioerror

import (
	"syscall"

	"github.com/next-trace/scg-ioerror/contract"
)

// repr selects which of the three representations an Error carries.
type repr uint8

const (
	reprPlain  repr = iota // classification only; the zero representation
	reprOS                 // raw OS error code
	reprCustom             // classification plus shared payload handle
)

// payload is the shared handle around a diagnostic error.
//
// Handles are allocated once, never mutated afterwards, and shared by every
// clone of the Error that created them. Two handles are the same payload only
// if they are the same allocation; the wrapped error's own notion of equality
// is deliberately ignored. Lifetime is the garbage collector's concern: the
// wrapped error is reclaimed when the last Error holding the handle is
// dropped, with no refcount to maintain and nothing for concurrent clones to
// race on.
type payload struct {
	err error
}

// Error is an I/O error value with a classification and an optional shared
// diagnostic payload.
//
// Fields:
//   - kind:    the contract.Kind classification
//   - code:    raw OS error code (os representation only)
//   - payload: shared handle to the diagnostic error (custom representation
//     only)
//
// Error is a comparable value type. == compares the classification exactly
// and the payload by handle identity; two independently constructed errors
// with identical payload content therefore compare unequal, while an error
// always compares equal to its clone. The zero value is a plain KindOther
// error.
type Error struct {
	repr    repr
	kind    contract.Kind
	code    syscall.Errno
	payload *payload
}

// compile-time guarantee that Error implements contract.Error
var _ contract.Error = Error{}

// ------ standard error interface

// Error returns the payload's description for custom errors, the platform's
// errno text for os errors, and the classification text otherwise.
func (e Error) Error() string {
	switch e.repr {
	case reprOS:
		return e.code.Error()
	case reprCustom:
		return e.payload.err.Error()
	default:
		return e.kind.String()
	}
}

// Unwrap returns the diagnostic payload when one is present, nil otherwise.
// It makes errors.Is and errors.As traverse into the adopted native error.
func (e Error) Unwrap() error {
	if e.repr == reprCustom {
		return e.payload.err
	}
	return nil
}

// ------ contract.Error getters

// Kind returns the classification.
func (e Error) Kind() contract.Kind { return e.kind }

// Payload returns the diagnostic payload, or nil when the error carries none.
func (e Error) Payload() error {
	if e.repr == reprCustom {
		return e.payload.err
	}
	return nil
}

// Errno returns the raw OS error code and true when the error was built
// directly from one, and 0 and false otherwise.
func (e Error) Errno() (syscall.Errno, bool) {
	if e.repr == reprOS {
		return e.code, true
	}
	return 0, false
}

// ------ core constructors

// New creates an Error with the given classification and diagnostic payload.
// A non-nil payload is wrapped in a freshly allocated shared handle, the one
// allocation this type ever performs; a nil payload yields a plain
// classification-only error. New never fails.
//
// Each call allocates a distinct handle, so two New errors are never equal
// even with the same payload value. Share errors by cloning, not by
// reconstructing.
func New(kind contract.Kind, diag error) Error {
	if diag == nil {
		return Error{repr: reprPlain, kind: kind}
	}
	return Error{repr: reprCustom, kind: kind, payload: &payload{err: diag}}
}

// ------ duplication and equality

// Clone returns a copy of the error sharing the same payload handle. No
// payload bytes are copied regardless of how often the error is cloned; the
// one-time cost was paid at construction or conversion. Clone never fails.
//
// Clone is a plain value copy, so e.Clone() == e always holds.
func (e Error) Clone() Error { return e }

// Equal reports whether two errors have exactly matching classifications and
// either both carry no payload or both refer to the same payload handle.
//
// Equality is identity-based on the handle: the payload may well define its
// own value equality, but Equal never consults it. Equal content in
// separately allocated payloads compares unequal by contract, keeping the
// check allocation-free and O(1). Equal is reflexive, symmetric, transitive
// and identical to ==.
func (e Error) Equal(other Error) bool { return e == other }
