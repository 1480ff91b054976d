package mmapalloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/segkit/seg"
	"github.com/joshuapare/segkit/seg/mmapalloc"
)

// TestNew_RejectsPointerTypes tests the element-type restriction.
func TestNew_RejectsPointerTypes(t *testing.T) {
	_, err := mmapalloc.New[string]()
	assert.ErrorIs(t, err, mmapalloc.ErrPointerType)

	_, err = mmapalloc.New[*int]()
	assert.ErrorIs(t, err, mmapalloc.ErrPointerType)

	_, err = mmapalloc.New[struct{ B []byte }]()
	assert.ErrorIs(t, err, mmapalloc.ErrPointerType)

	_, err = mmapalloc.New[int64]()
	assert.NoError(t, err)
}

// TestAllocator_AllocFree tests the block round trip.
func TestAllocator_AllocFree(t *testing.T) {
	a, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer a.Close()

	block, err := a.Alloc(512)
	require.NoError(t, err)
	require.Len(t, block, 512)
	assert.Equal(t, 1, a.Live())

	// Mapped memory arrives zeroed and is writable.
	for i := range block {
		assert.Zero(t, block[i])
		block[i] = int64(i)
	}
	assert.Equal(t, int64(511), block[511])

	a.Free(block)
	assert.Zero(t, a.Live())
}

// TestAllocator_BadLen tests the slot-count guard.
func TestAllocator_BadLen(t *testing.T) {
	a, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Alloc(0)
	assert.ErrorIs(t, err, mmapalloc.ErrBadLen)
	_, err = a.Alloc(-1)
	assert.ErrorIs(t, err, mmapalloc.ErrBadLen)
}

// TestAllocator_Equal tests instance identity semantics.
func TestAllocator_Equal(t *testing.T) {
	a, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer a.Close()
	b, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer b.Close()

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(seg.HeapAllocator[int64]{}))
}

// TestAllocator_BacksVector tests the allocator under a real vector,
// including address stability and full release on Close.
func TestAllocator_BacksVector(t *testing.T) {
	a, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer a.Close()

	v := seg.New[int64](seg.WithAllocator[int64](a), seg.WithBlockBytes[int64](128))

	var first *int64
	for i := range int64(1000) {
		p, err := v.Append(i)
		require.NoError(t, err)
		if i == 0 {
			first = p
		}
	}
	assert.Equal(t, 1000, v.Len())
	assert.Equal(t, int64(0), *first)
	for i := range 1000 {
		require.Equal(t, int64(i), *v.At(i))
	}
	assert.Positive(t, a.Live())

	v.Close()
	assert.Zero(t, a.Live(), "vector must return every mapped block")
}

// TestAllocator_CrossAllocatorMove tests an element-wise move from mapped
// blocks to the heap.
func TestAllocator_CrossAllocatorMove(t *testing.T) {
	a, err := mmapalloc.New[int64]()
	require.NoError(t, err)
	defer a.Close()

	src := seg.New[int64](seg.WithAllocator[int64](a), seg.WithBlockBytes[int64](128))
	for i := range int64(100) {
		_, err := src.Append(i)
		require.NoError(t, err)
	}

	dst, err := seg.Move(src, seg.WithBlockBytes[int64](128))
	require.NoError(t, err)
	assert.Equal(t, 100, dst.Len())
	for i := range 100 {
		require.Equal(t, int64(i), *dst.At(i))
	}

	// Source stays valid and still owns its mapped blocks.
	assert.Zero(t, src.Len())
	src.Close()
	assert.Zero(t, a.Live())
}
