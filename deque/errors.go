package deque

import "errors"

var (
	// ErrEmpty is returned when popping from an empty deque.
	ErrEmpty = errors.New("deque is empty")

	// ErrOutOfRange is returned when an index is outside the deque bounds.
	ErrOutOfRange = errors.New("index out of range")
)
