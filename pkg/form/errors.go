package form

import "errors"

var (
	// ErrUnknownField is returned when a path or Set call names a key the
	// record does not declare.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrUnknownSection is returned for section names outside the catalog.
	ErrUnknownSection = errors.New("form: unknown section")
	// ErrRowIndex is returned when a row index is out of range.
	ErrRowIndex = errors.New("form: row index out of range")
	// ErrInvalidPath is returned for malformed field paths.
	ErrInvalidPath = errors.New("form: invalid field path")
)
