package vizdata

import "github.com/kailas-cloud/vizdata/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStorageUnavailable = domain.ErrStorageUnavailable
	ErrInvalidDocument    = domain.ErrInvalidDocument
)
