package seg

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/joshuapare/segkit/internal/typeinfo"
)

// Vector is a segmented sequence of T with address-stable elements.
// See the package documentation for the growth and invalidation model.
//
// The zero value is not ready for use; construct with New.
type Vector[T any] struct {
	// blocks is the directory: one entry per allocated block, each of
	// exactly 1<<shift slots, in allocation order.
	blocks [][]T
	size   int
	shift  uint
	mask   int
	alloc  Allocator[T]

	// plain is set when T carries no pointers; destroyed slots then need
	// no zeroing, so Clear degrades to a size reset.
	plain bool
}

// New constructs an empty Vector with zero blocks.
func New[T any](opts ...Option[T]) *Vector[T] {
	c := config[T]{
		blockBytes: DefaultBlockBytes,
		alloc:      HeapAllocator[T]{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	shift := blockShift(unsafe.Sizeof(*new(T)), c.blockBytes)
	perBlock := 1 << shift
	if perBlock <= 0 || perBlock&(perBlock-1) != 0 {
		panic(fmt.Sprintf("seg: slots per block %d is not a positive power of two", perBlock))
	}

	return &Vector[T]{
		shift: shift,
		mask:  perBlock - 1,
		alloc: c.alloc,
		plain: !typeinfo.HasPointers[T](),
	}
}

// blockShift finds the largest s such that a block of 1<<s elements stays
// within the byte budget, with a minimum of one element per block.
func blockShift(elemSize uintptr, blockBytes int) uint {
	if elemSize == 0 {
		elemSize = 1
	}
	var s uint
	for s < 62 && elemSize<<(s+1) <= uintptr(blockBytes) {
		s++
	}
	return s
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the total slot count across all allocated blocks. It is
// always a multiple of BlockLen.
func (v *Vector[T]) Cap() int { return len(v.blocks) << v.shift }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// BlockLen returns the fixed slot count of a single block. It is a power of
// two derived from the block byte budget and never changes after New.
func (v *Vector[T]) BlockLen() int { return 1 << v.shift }

// At returns a pointer to the element at logical index i. The pointer stays
// valid until the element is destroyed; growth never moves it.
//
// At is unchecked: i must be below Len.
func (v *Vector[T]) At(i int) *T {
	return &v.blocks[i>>v.shift][i&v.mask]
}

// Back returns a pointer to the last element. Unchecked: Len must be > 0.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Append stores x in the next slot, growing by exactly one block if the
// vector is full, and returns a stable pointer to the stored element. No
// previously returned pointer is invalidated.
func (v *Vector[T]) Append(x T) (*T, error) {
	p, err := v.next()
	if err != nil {
		return nil, err
	}
	*p = x
	return p, nil
}

// Grow claims the next slot, set to the zero value, and returns a stable
// pointer to it. It is the in-place construction primitive: callers fill
// the slot through the pointer.
func (v *Vector[T]) Grow() (*T, error) {
	p, err := v.next()
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// next claims the slot at index size without writing it.
func (v *Vector[T]) next() (*T, error) {
	if v.size == v.Cap() {
		if err := v.increaseCapacity(); err != nil {
			return nil, err
		}
	}
	p := v.At(v.size)
	v.size++
	return p, nil
}

// increaseCapacity allocates exactly one block and appends its address to
// the directory. This is the sole growth primitive; existing blocks are
// never copied or resized.
func (v *Vector[T]) increaseCapacity() error {
	block, err := v.alloc.Alloc(v.BlockLen())
	if err != nil {
		return err
	}
	v.blocks = append(v.blocks, block)
	return nil
}

// Pop destroys the last element. Block memory is retained for reuse.
// Unchecked: Len must be > 0.
func (v *Vector[T]) Pop() {
	v.size--
	if !v.plain {
		var zero T
		*v.At(v.size) = zero
	}
}

// Clear destroys every live element and resets Len to zero. All blocks are
// retained, so Cap is unchanged and the next Cap appends allocate nothing.
func (v *Vector[T]) Clear() {
	if !v.plain {
		for i := 0; i < v.size; i += v.BlockLen() {
			b := v.blocks[i>>v.shift]
			clear(b[:min(v.size-i, len(b))])
		}
	}
	v.size = 0
}

// Reserve grows capacity to at least n slots by pre-sizing the directory
// and then adding whole blocks. It never removes blocks and is a no-op when
// capacity already suffices.
//
// Reserve may reallocate the directory's backing array, which invalidates
// outstanding iterators (but no element pointer).
func (v *Vector[T]) Reserve(n int) error {
	if need := v.blocksFor(n); need > len(v.blocks) {
		v.blocks = slices.Grow(v.blocks, need-len(v.blocks))
	}
	for v.Cap() < n {
		if err := v.increaseCapacity(); err != nil {
			return err
		}
	}
	return nil
}

// ShrinkToFit frees every trailing block that holds no live element and
// reallocates the directory to its exact remaining length. Blocks holding
// live elements are never touched. After Clear, ShrinkToFit brings Cap to
// zero.
func (v *Vector[T]) ShrinkToFit() {
	need := v.blocksFor(v.size)
	for len(v.blocks) > need {
		last := len(v.blocks) - 1
		v.alloc.Free(v.blocks[last])
		v.blocks[last] = nil
		v.blocks = v.blocks[:last]
	}
	if len(v.blocks) == 0 {
		v.blocks = nil
		return
	}
	if cap(v.blocks) > len(v.blocks) {
		exact := make([][]T, len(v.blocks))
		copy(exact, v.blocks)
		v.blocks = exact
	}
}

// blocksFor returns the block count needed for n slots.
func (v *Vector[T]) blocksFor(n int) int {
	return (n + v.mask) >> v.shift
}

// Close destroys every live element and returns every block to the
// allocator. The vector is empty but reusable afterwards.
func (v *Vector[T]) Close() {
	v.Clear()
	v.dealloc()
}

// dealloc returns all blocks to the allocator and drops the directory.
func (v *Vector[T]) dealloc() {
	for i, b := range v.blocks {
		v.alloc.Free(b)
		v.blocks[i] = nil
	}
	v.blocks = nil
}
