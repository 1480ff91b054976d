package seg

// DefaultBlockBytes is the target byte budget of a single block when
// WithBlockBytes is not given. Larger budgets reduce directory bookkeeping
// per element but make a single allocation coarser.
const DefaultBlockBytes = 4096

// Option configures a Vector at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	blockBytes int
	alloc      Allocator[T]
}

// WithBlockBytes sets the target block byte budget. The slot count per block
// is the largest power of two whose total size fits the budget, with a
// minimum of one slot. Values below one byte are treated as one.
func WithBlockBytes[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n < 1 {
			n = 1
		}
		c.blockBytes = n
	}
}

// WithAllocator sets the block allocation strategy. A nil allocator is
// ignored and the default HeapAllocator is kept.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.alloc = a
		}
	}
}
