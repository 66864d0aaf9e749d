package stack

import "errors"

var (
	// ErrEmpty is returned when removing from an empty stack.
	ErrEmpty = errors.New("stack is empty")

	// ErrInsufficient is returned when a bulk or pairwise operation needs
	// more items than the stack holds.
	ErrInsufficient = errors.New("not enough items on stack")

	// ErrInvalidCount is returned when a bulk operation receives a
	// non-positive count.
	ErrInvalidCount = errors.New("count must be positive")
)
