package mmapalloc

import "errors"

var (
	// ErrPointerType indicates the element type carries pointers and must
	// not live in memory the garbage collector cannot see.
	ErrPointerType = errors.New("mmapalloc: element type contains pointers")

	// ErrBadLen indicates a non-positive slot count was requested.
	ErrBadLen = errors.New("mmapalloc: block length must be positive")
)
