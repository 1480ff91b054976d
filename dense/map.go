package dense

import (
	"hash/maphash"
	"iter"

	"github.com/joshuapare/segkit/seg"
)

const (
	// Grow the bucket array when entries exceed 13/16 (≈0.81) of its size.
	loadNum = 13
	loadDen = 16

	minBuckets = 8

	// Buckets hold 1-based uint32 indices, capping the entry count.
	maxEntries uint64 = 1<<32 - 2
)

// Entry is a key/value pair stored in the payload vector.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an open-addressing hash table with segmented payload storage.
// Construct with New; the zero value is not ready for use.
type Map[K comparable, V any] struct {
	entries *seg.Vector[Entry[K, V]]
	buckets []uint32 // 1-based entry index; 0 marks an empty slot
	seed    maphash.Seed
}

// New constructs an empty map. Options tune the underlying payload vector,
// e.g. seg.WithBlockBytes or seg.WithAllocator.
func New[K comparable, V any](opts ...seg.Option[Entry[K, V]]) *Map[K, V] {
	return &Map[K, V]{
		entries: seg.New(opts...),
		seed:    maphash.MakeSeed(),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.entries.Len() }

func (m *Map[K, V]) hash(k K) uint64 {
	return maphash.Comparable(m.seed, k)
}

// find probes for k. It returns the bucket slot where the probe ended, the
// 0-based entry index, and whether the key was found. Requires a non-empty
// bucket array.
func (m *Map[K, V]) find(k K) (slot int, idx int, ok bool) {
	mask := uint64(len(m.buckets) - 1)
	s := m.hash(k) & mask
	for {
		b := m.buckets[s]
		if b == 0 {
			return int(s), -1, false
		}
		if e := m.entries.At(int(b - 1)); e.Key == k {
			return int(s), int(b - 1), true
		}
		s = (s + 1) & mask
	}
}

// Put inserts or replaces the value for k. Replacement never moves the
// entry, so pointers from EntryOf keep observing the update.
func (m *Map[K, V]) Put(k K, v V) error {
	m.ensureBuckets(m.entries.Len() + 1)

	slot, idx, ok := m.find(k)
	if ok {
		m.entries.At(idx).Value = v
		return nil
	}
	if uint64(m.entries.Len()) >= maxEntries {
		return ErrFull
	}
	if _, err := m.entries.Append(Entry[K, V]{Key: k, Value: v}); err != nil {
		return err
	}
	m.buckets[slot] = uint32(m.entries.Len()) // new entry's index + 1
	return nil
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m.entries.Len() == 0 {
		var zero V
		return zero, false
	}
	_, idx, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries.At(idx).Value, true
}

// EntryOf returns a stable pointer to the entry for k, or nil. The pointer
// survives inserts and bucket-array growth; Delete of any key may reuse or
// move entry slots and invalidates it.
func (m *Map[K, V]) EntryOf(k K) *Entry[K, V] {
	if m.entries.Len() == 0 {
		return nil
	}
	_, idx, ok := m.find(k)
	if !ok {
		return nil
	}
	return m.entries.At(idx)
}

// Delete removes k. The last entry is swapped into the freed payload slot
// and the vacated bucket is closed with backward-shift deletion.
func (m *Map[K, V]) Delete(k K) bool {
	if m.entries.Len() == 0 {
		return false
	}
	slot, idx, ok := m.find(k)
	if !ok {
		return false
	}

	last := m.entries.Len() - 1
	if idx != last {
		// Redirect the bucket of the moved entry before overwriting, so
		// probing still finds it under its own key.
		lastSlot, _, _ := m.find(m.entries.At(last).Key)
		*m.entries.At(idx) = *m.entries.At(last)
		m.buckets[lastSlot] = uint32(idx + 1)
	}
	m.entries.Pop()
	m.shiftDelete(slot)
	return true
}

// shiftDelete empties slot and walks the probe chain, moving back every
// entry whose home position makes it unreachable past the new hole.
func (m *Map[K, V]) shiftDelete(slot int) {
	mask := len(m.buckets) - 1
	i := slot
	m.buckets[i] = 0
	j := i
	for {
		j = (j + 1) & mask
		b := m.buckets[j]
		if b == 0 {
			return
		}
		home := int(m.hash(m.entries.At(int(b-1)).Key) & uint64(mask))
		if (j-home)&mask < (j-i)&mask {
			// Still reachable from its home position; leave it.
			continue
		}
		m.buckets[i] = b
		m.buckets[j] = 0
		i = j
	}
}

// Reserve sizes both the payload store and the bucket array for n entries,
// so the next n Puts allocate no blocks and trigger no rehash.
func (m *Map[K, V]) Reserve(n int) error {
	if err := m.entries.Reserve(n); err != nil {
		return err
	}
	m.ensureBuckets(n)
	return nil
}

// ensureBuckets grows and rebuilds the bucket array when need entries would
// exceed the load factor. Payload is untouched: the rebuild rescans entries
// in insertion order and rewrites indices only.
func (m *Map[K, V]) ensureBuckets(need int) {
	n := len(m.buckets)
	if n > 0 && need*loadDen <= n*loadNum {
		return
	}
	if n == 0 {
		n = minBuckets
	}
	for need*loadDen > n*loadNum {
		n <<= 1
	}

	m.buckets = make([]uint32, n)
	mask := uint64(n - 1)
	for i, e := range m.entries.All() {
		s := m.hash(e.Key) & mask
		for m.buckets[s] != 0 {
			s = (s + 1) & mask
		}
		m.buckets[s] = uint32(i + 1)
	}
}

// All returns an insertion-order range over key/value pairs.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an insertion-order range over keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Clear removes every entry but keeps payload blocks and the bucket array
// for reuse.
func (m *Map[K, V]) Clear() {
	m.entries.Clear()
	clear(m.buckets)
}

// Close releases the payload store and the bucket array.
func (m *Map[K, V]) Close() {
	m.entries.Close()
	m.buckets = nil
}
