package reference

import "errors"

var (
	// ErrEmptyTable is returned when a table file declares no building types.
	ErrEmptyTable = errors.New("reference: table defines no building types")
	// ErrInvalidRange is returned when a range violates min <= typical <= max
	// or carries negative bounds.
	ErrInvalidRange = errors.New("reference: invalid range")
)
