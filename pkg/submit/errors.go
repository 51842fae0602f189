package submit

import "errors"

var (
	// ErrInFlight is returned when a session already has a request
	// outstanding.
	ErrInFlight = errors.New("submit: a submission is already in flight")
	// ErrNoSnapshot is returned for nil snapshots.
	ErrNoSnapshot = errors.New("submit: snapshot is required")
	// ErrNoBackend is returned when a Submitter has no service to call.
	ErrNoBackend = errors.New("submit: backend is not configured")
)
