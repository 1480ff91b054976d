package seg

// Allocator is the block allocation strategy injected into a Vector.
//
// Alloc returns a slice of exactly n slots. Free releases a block previously
// returned by Alloc on the same allocator; releasing blocks obtained from a
// different allocator instance is only valid when the two compare Equal.
//
// Equal reports whether blocks allocated by one allocator may be freed by
// the other. It is consulted exactly once, by Move, to decide between an
// O(1) directory transfer and an element-wise rebuild.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(block []T)
	Equal(other Allocator[T]) bool
}

// HeapAllocator is the default Allocator. It delegates to the Go runtime:
// Alloc never fails and Free is a no-op (the collector reclaims unreferenced
// blocks). All HeapAllocator instances compare equal.
type HeapAllocator[T any] struct{}

// Alloc returns a fresh zeroed block of n slots.
func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

// Free is a no-op; the garbage collector owns heap blocks.
func (HeapAllocator[T]) Free([]T) {}

// Equal reports true for any other HeapAllocator.
func (HeapAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(HeapAllocator[T])
	return ok
}

// Compile-time interface check
var _ Allocator[int] = HeapAllocator[int]{}
