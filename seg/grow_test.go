package seg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVector_Reserve tests that Reserve front-loads all block allocations.
func TestVector_Reserve(t *testing.T) {
	ca := &countingAllocator[int]{}
	v := New[int](WithAllocator[int](ca), WithBlockBytes[int](64))

	require.NoError(t, v.Reserve(1000))
	assert.GreaterOrEqual(t, v.Cap(), 1000)
	assert.Zero(t, v.Cap()%v.BlockLen())
	assert.Zero(t, v.Len())

	allocsAfterReserve := ca.allocs
	fill(t, v, 1000)
	assert.Equal(t, allocsAfterReserve, ca.allocs, "appends within reserved capacity must not allocate")
}

// TestVector_ReserveIdempotent tests that a satisfied Reserve is a no-op.
func TestVector_ReserveIdempotent(t *testing.T) {
	ca := &countingAllocator[int]{}
	v := New[int](WithAllocator[int](ca), WithBlockBytes[int](64))

	require.NoError(t, v.Reserve(100))
	capBefore := v.Cap()
	allocsBefore := ca.allocs

	require.NoError(t, v.Reserve(100))
	require.NoError(t, v.Reserve(10))
	assert.Equal(t, capBefore, v.Cap(), "Reserve never removes blocks")
	assert.Equal(t, allocsBefore, ca.allocs)
}

// TestVector_ReserveAllocFailure tests that the error from the allocation
// strategy propagates unmodified.
func TestVector_ReserveAllocFailure(t *testing.T) {
	ca := &countingAllocator[int]{failAt: 3}
	v := New[int](WithAllocator[int](ca), WithBlockBytes[int](64))

	err := v.Reserve(1000)
	require.ErrorIs(t, err, errInjected)

	// The blocks added before the failure remain usable.
	assert.Equal(t, 2*v.BlockLen(), v.Cap())
	fill(t, v, v.Cap())
}

// TestVector_ShrinkToFitAfterClear tests that shrinking an empty vector
// frees every block.
func TestVector_ShrinkToFitAfterClear(t *testing.T) {
	ca := &countingAllocator[int]{}
	v := New[int](WithAllocator[int](ca), WithBlockBytes[int](64))
	fill(t, v, 500)

	v.Clear()
	v.ShrinkToFit()
	assert.Zero(t, v.Cap())
	assert.Zero(t, ca.live())
}

// TestVector_ShrinkToFitPartial tests that only trailing element-free
// blocks are dropped and survivors keep their addresses.
func TestVector_ShrinkToFitPartial(t *testing.T) {
	ca := &countingAllocator[int64]{}
	v := New[int64](WithAllocator[int64](ca), WithBlockBytes[int64](32))
	require.Equal(t, 4, v.BlockLen())

	for i := range int64(10) {
		_, err := v.Append(i)
		require.NoError(t, err)
	}
	require.Equal(t, 12, v.Cap()) // 3 blocks

	for range 5 {
		v.Pop()
	}
	keep := v.At(4)

	v.ShrinkToFit()
	assert.Equal(t, 8, v.Cap(), "ceil(5/4) = 2 blocks remain")
	assert.Equal(t, 1, ca.frees)
	assert.Same(t, keep, v.At(4), "live element must not move")
	for i := range int64(5) {
		assert.Equal(t, i, *v.At(int(i)))
	}
}

// TestVector_ShrinkToFitNoOpWhenFull tests that a full vector is untouched.
func TestVector_ShrinkToFitNoOpWhenFull(t *testing.T) {
	ca := &countingAllocator[int64]{}
	v := New[int64](WithAllocator[int64](ca), WithBlockBytes[int64](32))
	for i := range int64(8) {
		_, err := v.Append(i)
		require.NoError(t, err)
	}

	v.ShrinkToFit()
	assert.Equal(t, 8, v.Cap())
	assert.Zero(t, ca.frees)
}

// TestVector_GrowthIsOneBlockAtATime tests the sole growth primitive:
// each capacity increase is exactly one block.
func TestVector_GrowthIsOneBlockAtATime(t *testing.T) {
	ca := &countingAllocator[int64]{}
	v := New[int64](WithAllocator[int64](ca), WithBlockBytes[int64](32))

	for i := range int64(64) {
		before := ca.allocs
		_, err := v.Append(i)
		require.NoError(t, err)
		assert.LessOrEqual(t, ca.allocs-before, 1, "append %d allocated more than one block", i)
	}
	assert.Equal(t, 16, ca.allocs)
}
