package dense

import "errors"

// ErrFull indicates the map reached the maximum number of entries a bucket
// can reference.
var ErrFull = errors.New("dense: map is full")
