package seg

// Clone returns a deep copy of v using the same allocator: fresh blocks,
// every element copied in insertion order. The copy shares no block with v.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.alloc)
}

// CloneWith is Clone under an explicitly supplied allocator.
//
// If an allocation fails partway through, every block already allocated for
// the copy is freed (and any copied element destroyed) before the error is
// returned; nothing leaks.
func (v *Vector[T]) CloneWith(alloc Allocator[T]) (*Vector[T], error) {
	if alloc == nil {
		alloc = v.alloc
	}
	out := &Vector[T]{
		shift: v.shift,
		mask:  v.mask,
		alloc: alloc,
		plain: v.plain,
	}
	if err := out.appendAll(v); err != nil {
		out.Close()
		return nil, err
	}
	return out, nil
}

// CopyFrom replaces v's contents with a deep copy of src. Blocks already
// owned by v are reused; extra blocks are allocated as needed. On failure v
// is left valid, holding the elements copied so far.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	v.Clear()
	return v.appendAll(src)
}

// MoveFrom releases v's current contents and takes over src's directory and
// size in O(1), leaving src empty with zero blocks. It assumes both vectors
// share allocator semantics (their allocators compare Equal); use Move for
// the allocator-aware form.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	v.dealloc()
	v.blocks = src.blocks
	v.size = src.size
	v.shift = src.shift
	v.mask = src.mask
	v.plain = src.plain
	src.blocks = nil
	src.size = 0
}

// Move constructs a vector from src under the configuration given by opts.
// When the new allocator compares Equal to src's and the block geometry
// matches, ownership of the directory transfers in O(1) and no element is
// touched. Otherwise every element is moved element-wise into freshly
// allocated blocks and src is left empty but valid: it remains closable and
// still owns (and correctly releases) its blocks.
func Move[T any](src *Vector[T], opts ...Option[T]) (*Vector[T], error) {
	out := New[T](opts...)
	if out.alloc.Equal(src.alloc) && out.shift == src.shift {
		out.MoveFrom(src)
		return out, nil
	}
	if err := out.appendAll(src); err != nil {
		out.Close()
		return nil, err
	}
	src.Clear()
	return out, nil
}

// appendAll reserves room for src's elements and appends copies of them in
// insertion order.
func (v *Vector[T]) appendAll(src *Vector[T]) error {
	if err := v.Reserve(v.size + src.size); err != nil {
		return err
	}
	for i := range src.size {
		if _, err := v.Append(*src.At(i)); err != nil {
			return err
		}
	}
	return nil
}
