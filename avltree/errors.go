package avltree

import "errors"

// ErrKeyNotFound is returned when deleting a key that is not present.
var ErrKeyNotFound = errors.New("key not found")
