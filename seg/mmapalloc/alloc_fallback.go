//go:build !unix

package mmapalloc

import (
	"unsafe"

	"github.com/joshuapare/segkit/internal/typeinfo"
	"github.com/joshuapare/segkit/seg"
)

// Allocator falls back to heap blocks when anonymous mappings are not
// available. The element-type restriction is kept so code is portable to
// the mmap-backed build.
type Allocator[T any] struct {
	elemSize uintptr
	live     int
}

// New builds a heap-backed allocator for a pointer-free element type.
func New[T any]() (*Allocator[T], error) {
	if typeinfo.HasPointers[T]() {
		return nil, ErrPointerType
	}
	return &Allocator[T]{elemSize: unsafe.Sizeof(*new(T))}, nil
}

// Alloc returns a fresh zeroed block of n slots.
func (a *Allocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrBadLen
	}
	a.live++
	return make([]T, n), nil
}

// Free releases the block to the garbage collector.
func (a *Allocator[T]) Free(block []T) {
	if len(block) == 0 {
		return
	}
	a.live--
}

// Equal reports whether other is this same allocator instance.
func (a *Allocator[T]) Equal(other seg.Allocator[T]) bool {
	p, ok := other.(*Allocator[T])
	return ok && p == a
}

// Live returns the number of blocks not yet freed.
func (a *Allocator[T]) Live() int {
	return a.live
}

// Close is a no-op for the heap fallback.
func (a *Allocator[T]) Close() error {
	a.live = 0
	return nil
}

// Compile-time interface check
var _ seg.Allocator[int32] = (*Allocator[int32])(nil)
