package seg

import (
	"iter"
	"unsafe"
)

// Iterator is a forward iterator over a Vector: a captured directory header
// plus a logical index. Dereference recomputes (block, offset) from the
// index, so element-block growth never invalidates an iterator — only a
// reallocation of the directory's own backing array does (see the package
// documentation).
//
// Iterators are cheap values; copy them freely.
type Iterator[T any] struct {
	dir   [][]T
	idx   int
	shift uint
	mask  int
}

// Begin returns an iterator at logical index 0.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{dir: v.blocks, shift: v.shift, mask: v.mask}
}

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{dir: v.blocks, idx: v.size, shift: v.shift, mask: v.mask}
}

// Ref returns a pointer to the element under the iterator. Unchecked: the
// iterator must not equal End.
func (it Iterator[T]) Ref() *T {
	return &it.dir[it.idx>>it.shift][it.idx&it.mask]
}

// Value returns a copy of the element under the iterator.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Index returns the logical index the iterator points at.
func (it Iterator[T]) Index() int { return it.idx }

// Next advances the iterator by one position.
func (it *Iterator[T]) Next() { it.idx++ }

// Add returns an iterator advanced by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.idx += n
	return it
}

// Sub returns the distance from other to it, in elements.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.idx - other.idx
}

// Equal reports whether both iterators refer to the same position over the
// same directory.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.idx == other.idx && unsafe.SliceData(it.dir) == unsafe.SliceData(other.dir)
}

// All returns an insertion-order range over (index, element pointer) pairs.
//
//	for i, p := range v.All() { ... }
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Values returns an insertion-order range over element copies.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.At(i)) {
				return
			}
		}
	}
}
