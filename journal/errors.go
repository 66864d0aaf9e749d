package journal

import "errors"

// ErrCorrupted is returned when a journal record fails its checksum or
// cannot be decoded.
var ErrCorrupted = errors.New("corrupted journal record")
