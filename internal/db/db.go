package db

import (
	"context"
	"time"
)

// Record is a raw stored document as returned by a driver.
// Values are already normalised to JSON-compatible Go types.
type Record = map[string]any

// Store is the database facade used by the composition root.
type Store interface {
	Pinger
	DocumentReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DocumentReader reads whole collections.
type DocumentReader interface {
	// FindAll returns every record of the collection without the identifier field.
	// An empty collection yields an empty, non-nil slice.
	FindAll(ctx context.Context, collection string) ([]Record, error)
}

// IdentifierField is the reserved per-document key that never leaves the store layer.
const IdentifierField = "_id"

// WaitForReady polls p.Ping until it succeeds or the timeout expires.
// Drivers delegate their WaitForReady here.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return &Error{Op: OpPing, Err: ErrUnavailable, Cause: ctx.Err()}
		case <-ticker.C:
			if err := p.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
