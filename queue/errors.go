package queue

import "errors"

var (
	// ErrEmpty is returned when dequeuing from an empty queue.
	ErrEmpty = errors.New("queue is empty")

	// ErrInsufficient is returned when a bulk dequeue needs more items than
	// the queue holds.
	ErrInsufficient = errors.New("not enough items in queue")

	// ErrInvalidCount is returned when a bulk operation receives a
	// non-positive count.
	ErrInvalidCount = errors.New("count must be positive")
)
