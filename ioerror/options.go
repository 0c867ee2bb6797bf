package ioerror

import (
	"errors"
	"syscall"

	"github.com/next-trace/scg-ioerror/contract"
)

// Option configures an Error during construction via E().
type Option func(*Error)

// WithPayload attaches a diagnostic payload in a freshly allocated shared
// handle during E() construction. A nil payload is ignored.
func WithPayload(diag error) Option {
	return func(e *Error) {
		if diag == nil {
			return
		}
		e.repr = reprCustom
		e.code = 0
		e.payload = &payload{err: diag}
	}
}

// WithText attaches a plain text diagnostic payload during E() construction.
// Each call allocates, so two errors built with identical text are not equal.
func WithText(text string) Option {
	return WithPayload(errors.New(text))
}

// WithErrno switches the error to the raw-OS-code representation during E()
// construction, discarding any payload set before it. The classification is
// re-derived from the code so that os-representation errors with the same
// code are always equal, whichever constructor produced them.
func WithErrno(errno syscall.Errno) Option {
	return func(e *Error) {
		e.repr = reprOS
		e.kind = kindFromErrno(errno)
		e.code = errno
		e.payload = nil
	}
}

// E is a minimal builder when you don't want the full New(...) signature.
// Without options it yields a plain classification-only error.
func E(kind contract.Kind, opts ...Option) Error {
	e := Error{repr: reprPlain, kind: kind}
	for _, o := range opts {
		o(&e)
	}

	return e
}
