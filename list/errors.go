package list

import "errors"

var (
	// ErrEmpty is returned when popping from an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrNotFound is returned when removing an item that is not present.
	ErrNotFound = errors.New("item not found")
)
