package segtree

import "errors"

// ErrOutOfRange is returned when an index or range is outside the tree bounds.
var ErrOutOfRange = errors.New("index out of range")
