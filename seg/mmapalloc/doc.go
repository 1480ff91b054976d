// Package mmapalloc provides a seg.Allocator backed by anonymous memory
// mappings, keeping block payloads entirely outside the Go heap.
//
// Because the garbage collector does not scan mapped regions, only
// pointer-free element types are accepted: New returns ErrPointerType for
// any T that carries pointers, strings, slices, maps, channels, funcs or
// interfaces.
//
// Blocks must be returned to the allocator that produced them (Vector.Close
// or ShrinkToFit do this); Close unmaps whatever is still outstanding. On
// platforms without mmap the allocator transparently falls back to the heap.
package mmapalloc
