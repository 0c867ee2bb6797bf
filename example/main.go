// Package main demonstrates usage of the scg-ioerror package.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/next-trace/scg-ioerror/contract"
	"github.com/next-trace/scg-ioerror/ioerror"
)

func main() {
	// Adapt a native I/O error. The payload is adopted, not copied.
	native := &fs.PathError{Op: "open", Path: "/no/such/file", Err: syscall.ENOENT}
	e1 := ioerror.From(native)
	e2 := e1.Clone()
	fmt.Println(e1, e1.Kind(), e1.Equal(e2)) // equal: clones share the handle

	// The adopted payload stays visible to the standard helpers.
	fmt.Println(errors.Is(e1, fs.ErrNotExist))

	// Identical text, separate allocations: never equal.
	a := ioerror.E(contract.KindOther, ioerror.WithText("foo"))
	b := ioerror.E(contract.KindOther, ioerror.WithText("foo"))
	fmt.Println(a.Equal(b), a.Equal(a.Clone()))

	// Embed as a comparable cause inside a larger error type.
	type copyError struct {
		Op    string
		Cause ioerror.Error
	}
	x := copyError{Op: "sync", Cause: e1}
	y := copyError{Op: "sync", Cause: e2}
	fmt.Println(x == y) // derived equality works through the adapter
}
