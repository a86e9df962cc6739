package domain

import "errors"

var (
	// ErrStorageUnavailable signals that the backing store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidDocument signals a stored document that cannot be represented as JSON.
	ErrInvalidDocument = errors.New("invalid document")
)
