// Package dense provides an open-addressing hash map whose key/value
// payload lives in a segmented vector (seg.Vector).
//
// The bucket array stores only 1-based logical indices into the payload
// store. Because the store never relocates an element, growing or rehashing
// the bucket array moves nothing but small indices: pointers obtained from
// EntryOf stay valid across any number of inserts. Deleting swaps the last
// entry into the freed payload slot, so the store stays dense and iteration
// cost is proportional to Len.
//
// Iteration order is insertion order, except that a Delete moves the most
// recently inserted entry into the deleted entry's position.
//
// Map is not safe for concurrent use.
package dense
