package db

import (
	"context"
	"errors"
)

// Sentinel errors for database operations.
var (
	ErrUnavailable      = errors.New("db: storage unavailable")
	ErrCorruptDocument  = errors.New("db: corrupt document")
	ErrUnknownDriver    = errors.New("db: unknown driver")
	ErrMissingArguments = errors.New("db: missing connection arguments")
)

// Op names used for error context.
const (
	OpPing    = "PING"
	OpFind    = "FIND"
	OpDecode  = "DECODE"
	OpScan    = "SCAN"
	OpGet     = "GET"
	OpConnect = "CONNECT"
)

// Error wraps an underlying error with the operation name for diagnostics.
// Err is the classification sentinel (or the raw error when unclassified);
// Cause keeps the driver error when Err is a sentinel.
type Error struct {
	Op    string
	Err   error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Op + ": " + e.Err.Error() + ": " + e.Cause.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// IsTimeout reports whether err is a context deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
