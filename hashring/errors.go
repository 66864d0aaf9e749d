package hashring

import "errors"

var (
	// ErrEmptyRing is returned when locating a key on a ring with no nodes.
	ErrEmptyRing = errors.New("hash ring is empty")

	// ErrNodeExists is returned when adding a node that is already on the ring.
	ErrNodeExists = errors.New("node already on ring")

	// ErrNodeNotFound is returned when removing a node that is not on the ring.
	ErrNodeNotFound = errors.New("node not on ring")
)
