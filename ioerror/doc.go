// Package ioerror provides an I/O error value supporting equality and cheap
// duplication.
//
// The platform's native I/O errors carry arbitrary payloads with no equality
// and no cheap copy. This package exposes a single concrete type Error adapting them
// into a comparable struct value while preserving the classification and the
// opaque diagnostic payload, so that larger error types can embed it as a
// leaf cause and derive their own equality and duplication from their fields.
//
// Key characteristics:
//   - Comparable with == and duplicable by plain value copy
//   - Payload shared through one handle, never copied on Clone
//   - Equality by handle identity, never payload content
//   - errors.Is / errors.As traversal into the adopted payload via Unwrap
//
// Construction options are available via E and With* helpers, and From adapts
// an arbitrary native error.
package ioerror
