// Package seg provides a segmented, block-allocated sequence container.
//
// # Overview
//
// Vector[T] grows by appending fixed-size blocks to a small directory of
// block slices instead of reallocating one flat backing array. Because a
// block is never moved or resized once allocated, every element keeps its
// address for its entire lifetime: pointers returned by Append, At and Back
// stay valid across any number of further appends and reserves. This makes
// Vector a suitable payload store for open-addressing hash tables (see the
// dense package), which can hand out cheap logical indices or live pointers
// into the store without a rehash ever relocating payload data.
//
// # Indexing
//
// Each block holds a power-of-two number of slots, derived from a target
// block byte budget (default 4096 bytes) divided by the element size, with a
// minimum of one slot per block. A logical index i maps to its slot with two
// branch-free operations:
//
//	block  = i >> shift
//	offset = i & (slotsPerBlock - 1)
//
// Append is therefore worst-case O(1): growth allocates exactly one new
// block and never copies existing elements.
//
// # Allocation
//
// Block memory comes from an injected Allocator[T]. The default
// HeapAllocator delegates to the Go runtime and never fails; custom
// allocators (for example seg/mmapalloc) may return errors, which propagate
// unmodified from Append, Grow, Reserve and the cloning operations.
//
// # Invalidation
//
// Element memory is never invalidated by growth. The only invalidation
// trigger for an Iterator is a reallocation of the directory's own backing
// array, which happens when Reserve or Append pushes the number of blocks
// beyond the directory's current capacity. Iterators captured before such an
// event observe the old directory and must not be trusted afterwards.
//
// # Access checking and concurrency
//
// At, Back and Pop are unchecked: the caller must guarantee the index is in
// range. Vector performs no synchronization; mutating operations require
// exclusive access.
package seg
