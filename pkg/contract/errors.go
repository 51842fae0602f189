package contract

import "errors"

var (
	// ErrOperationNotFound is returned when the document lacks the requested
	// operation or its JSON request body.
	ErrOperationNotFound = errors.New("contract: operation not found")
	// ErrEmptyDocument is returned for blank documents.
	ErrEmptyDocument = errors.New("contract: document payload is empty")
)
