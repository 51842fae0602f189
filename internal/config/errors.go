package config

import "errors"

var (
	// ErrInvalidTimeout is returned when the service timeout is not positive.
	ErrInvalidTimeout = errors.New("config: service timeout must be positive")
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
	// ErrInvalidLogFormat is returned for an unknown log format.
	ErrInvalidLogFormat = errors.New("config: unknown log format")
)
