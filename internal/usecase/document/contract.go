package document

import (
	"context"

	"github.com/kailas-cloud/vizdata/internal/domain"
)

// Repository defines the storage contract for documents.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.Document, error)
}

// FetchRecorder observes how many documents each fetch returned.
type FetchRecorder interface {
	ObserveFetched(count int)
}
