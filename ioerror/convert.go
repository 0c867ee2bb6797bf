package ioerror

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/next-trace/scg-ioerror/contract"
)

// From adapts any native error into an Error.
//
// Behavior:
//   - nil input => plain KindOther
//   - input already an Error => returned unchanged (same payload handle, so
//     round-tripping never breaks clone equality)
//   - bare syscall.Errno => raw-OS-code representation, no payload
//   - anything else => classification read from the error tree and the input
//     adopted as the payload of a freshly allocated shared handle
//
// Adoption stores the native error itself; nothing is copied, since Go error
// values are freely shareable references. The handle allocation is paid once
// here and never again on Clone. From never fails.
func From(err error) Error {
	if err == nil {
		return Error{repr: reprPlain, kind: contract.KindOther}
	}

	if e, ok := err.(Error); ok {
		return e
	}

	if errno, ok := err.(syscall.Errno); ok {
		return FromErrno(errno)
	}

	return New(kindOf(err), err)
}

// FromErrno creates an Error straight from a raw OS error code, mirroring
// native errors built directly from one: no payload, classification derived
// from the code.
func FromErrno(errno syscall.Errno) Error {
	return Error{repr: reprOS, kind: kindFromErrno(errno), code: errno}
}

// kindOf classifies an arbitrary error tree against the platform taxonomy.
func kindOf(err error) contract.Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return contract.KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return contract.KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return contract.KindAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return contract.KindInvalidInput
	case errors.Is(err, fs.ErrClosed):
		return contract.KindClosed
	case errors.Is(err, errors.ErrUnsupported):
		return contract.KindUnsupported
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, syscall.ETIMEDOUT):
		return contract.KindTimedOut
	case errors.Is(err, syscall.EINTR):
		return contract.KindInterrupted
	default:
		return contract.KindOther
	}
}

// kindFromErrno classifies a bare OS error code.
func kindFromErrno(errno syscall.Errno) contract.Kind {
	switch errno {
	case syscall.ENOENT:
		return contract.KindNotFound
	case syscall.EACCES, syscall.EPERM:
		return contract.KindPermissionDenied
	case syscall.EEXIST:
		return contract.KindAlreadyExists
	case syscall.EINVAL:
		return contract.KindInvalidInput
	case syscall.ETIMEDOUT:
		return contract.KindTimedOut
	case syscall.EINTR:
		return contract.KindInterrupted
	default:
		return contract.KindOther
	}
}
