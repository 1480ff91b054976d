//go:build unix

package mmapalloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/segkit/internal/typeinfo"
	"github.com/joshuapare/segkit/seg"
)

// Allocator hands out blocks carved from anonymous private mappings, one
// mapping per block. Instances compare Equal only to themselves, since each
// tracks its own mappings. Not safe for concurrent use.
type Allocator[T any] struct {
	elemSize uintptr
	regions  map[unsafe.Pointer][]byte
}

// New builds an mmap-backed allocator for a pointer-free element type.
func New[T any]() (*Allocator[T], error) {
	if typeinfo.HasPointers[T]() {
		return nil, ErrPointerType
	}
	return &Allocator[T]{
		elemSize: unsafe.Sizeof(*new(T)),
		regions:  make(map[unsafe.Pointer][]byte),
	}, nil
}

// Alloc maps a fresh zero-filled region of n slots.
func (a *Allocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrBadLen
	}
	size := n * int(a.elemSize)
	if size == 0 {
		// Zero-size elements need no backing memory.
		return make([]T, n), nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmapalloc: mmap %d bytes: %w", size, err)
	}
	base := unsafe.Pointer(unsafe.SliceData(data))
	a.regions[base] = data
	return unsafe.Slice((*T)(base), n), nil
}

// Free unmaps the region backing block. Blocks this allocator did not
// produce are ignored.
func (a *Allocator[T]) Free(block []T) {
	if len(block) == 0 {
		return
	}
	base := unsafe.Pointer(unsafe.SliceData(block))
	data, ok := a.regions[base]
	if !ok {
		return
	}
	delete(a.regions, base)
	_ = unix.Munmap(data)
}

// Equal reports whether other is this same allocator instance.
func (a *Allocator[T]) Equal(other seg.Allocator[T]) bool {
	p, ok := other.(*Allocator[T])
	return ok && p == a
}

// Live returns the number of mappings not yet freed.
func (a *Allocator[T]) Live() int {
	return len(a.regions)
}

// Close unmaps every outstanding region. Blocks handed out earlier must not
// be touched afterwards.
func (a *Allocator[T]) Close() error {
	for base, data := range a.regions {
		delete(a.regions, base)
		if err := unix.Munmap(data); err != nil {
			return fmt.Errorf("mmapalloc: munmap: %w", err)
		}
	}
	return nil
}

// Compile-time interface check
var _ seg.Allocator[int32] = (*Allocator[int32])(nil)
