package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSession is returned when a submission is requested without a
	// configured session.
	ErrNoSession = errors.New("tui: no submission session configured")
)
