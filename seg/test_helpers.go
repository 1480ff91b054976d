package seg

import (
	"errors"
	"testing"
)

// errInjected is returned by countingAllocator when a test arms failAt.
var errInjected = errors.New("seg: injected allocation failure")

// countingAllocator is a heap-backed test double that records block traffic.
// Distinct instances compare unequal, so tests can drive both the transfer
// and the element-wise path of Move. When failAt is armed, the failAt-th
// Alloc call (1-based, counted from arming) fails with errInjected.
type countingAllocator[T any] struct {
	allocs int
	frees  int
	failAt int
}

func (a *countingAllocator[T]) Alloc(n int) ([]T, error) {
	if a.failAt > 0 {
		a.failAt--
		if a.failAt == 0 {
			return nil, errInjected
		}
	}
	a.allocs++
	return make([]T, n), nil
}

func (a *countingAllocator[T]) Free([]T) {
	a.frees++
}

func (a *countingAllocator[T]) Equal(other Allocator[T]) bool {
	p, ok := other.(*countingAllocator[T])
	return ok && p == a
}

// live returns the number of blocks allocated but not yet freed.
func (a *countingAllocator[T]) live() int {
	return a.allocs - a.frees
}

// zeroCheckAllocator fails the test when a block is released while any slot
// still holds a live (non-zero) element, i.e. when an element was not
// destroyed before its block went back to the allocator. Only meaningful
// for pointer-carrying T, where destruction zeroes the slot.
type zeroCheckAllocator[T comparable] struct {
	t      *testing.T
	allocs int
	frees  int
}

func (a *zeroCheckAllocator[T]) Alloc(n int) ([]T, error) {
	a.allocs++
	return make([]T, n), nil
}

func (a *zeroCheckAllocator[T]) Free(block []T) {
	a.t.Helper()
	var zero T
	for i, x := range block {
		if x != zero {
			a.t.Errorf("block released with live element in slot %d", i)
		}
	}
	a.frees++
}

func (a *zeroCheckAllocator[T]) Equal(other Allocator[T]) bool {
	p, ok := other.(*zeroCheckAllocator[T])
	return ok && p == a
}

// mustAppend appends x and fails the test on allocation error.
func mustAppend[T any](t *testing.T, v *Vector[T], x T) *T {
	t.Helper()
	p, err := v.Append(x)
	if err != nil {
		t.Fatalf("Append(%v): %v", x, err)
	}
	return p
}

// fill appends the integers [0, n) to a vector of int.
func fill(t *testing.T, v *Vector[int], n int) {
	t.Helper()
	for i := range n {
		mustAppend(t, v, i)
	}
}
