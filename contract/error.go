// Package contract exposes the minimal error surface used by other packages.
//
// It defines the closed Kind taxonomy of broad I/O failure categories and the
// Error interface that larger error hierarchies can depend on without
// importing the concrete adapter type.
package contract

// Kind is the classification of a broad I/O failure category.
//
// The set mirrors the platform taxonomy (io/fs sentinel errors,
// errors.ErrUnsupported, deadline and interrupt errnos) rather than defining
// a new one. It is closed: consumers switch over it exhaustively and fall
// back on KindOther.
type Kind int

const (
	// KindNotFound indicates the requested entity does not exist.
	KindNotFound Kind = iota

	// KindPermissionDenied indicates the operation lacked the required
	// privileges.
	KindPermissionDenied

	// KindAlreadyExists indicates an entity with the name already exists.
	KindAlreadyExists

	// KindInvalidInput indicates a parameter was malformed for the
	// operation.
	KindInvalidInput

	// KindTimedOut indicates the operation's deadline elapsed.
	KindTimedOut

	// KindInterrupted indicates the operation was interrupted and can
	// typically be retried.
	KindInterrupted

	// KindUnsupported indicates the operation is not supported on this
	// platform or by this implementation.
	KindUnsupported

	// KindClosed indicates the operation was attempted on an already
	// closed resource.
	KindClosed

	// KindOther is the catch-all for failures outside the categories
	// above. It is the Kind of the zero adapter value.
	KindOther
)

// String returns the human-readable category text.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "entity not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "entity already exists"
	case KindInvalidInput:
		return "invalid input parameter"
	case KindTimedOut:
		return "timed out"
	case KindInterrupted:
		return "operation interrupted"
	case KindUnsupported:
		return "unsupported operation"
	case KindClosed:
		return "resource closed"
	case KindOther:
		return "other error"
	default:
		return "unknown error kind"
	}
}

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the exact classification from Kind() (never remap).
//   - Support errors.Unwrap via Unwrap(), returning the diagnostic payload
//     when one is present and nil otherwise.
//
// The interface intentionally contains only getters and Unwrap to keep the
// API surface minimal: equality and duplication are value operations on the
// concrete type, not part of the contract.
type Error interface {
	error
	Kind() Kind
	Unwrap() error
}
