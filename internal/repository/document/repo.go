package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/vizdata/internal/db"
	"github.com/kailas-cloud/vizdata/internal/domain"
)

// store is the consumer interface for documents (ISP).
type store interface {
	FindAll(ctx context.Context, collection string) ([]db.Record, error)
}

// Repo implements usecase/document.Repository over a single collection.
type Repo struct {
	store      store
	collection string
}

// New creates a document repository bound to collection.
func New(s store, collection string) *Repo {
	return &Repo{store: s, collection: collection}
}

// FindAll returns every document of the bound collection.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Document, error) {
	recs, err := r.store.FindAll(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("find all in %s: %w", r.collection, mapError(err))
	}

	docs := make([]domain.Document, len(recs))
	for i, rec := range recs {
		docs[i] = domain.Document(rec)
	}
	return docs, nil
}

// mapError translates store sentinels into domain sentinels, keeping the original chain.
func mapError(err error) error {
	switch {
	case errors.Is(err, db.ErrUnavailable):
		return errors.Join(domain.ErrStorageUnavailable, err)
	case errors.Is(err, db.ErrCorruptDocument):
		return errors.Join(domain.ErrInvalidDocument, err)
	default:
		return err
	}
}
