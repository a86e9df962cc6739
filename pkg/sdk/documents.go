package vizdata

import (
	"context"
	"time"

	"github.com/kailas-cloud/vizdata/internal/domain"
)

// Document is one stored record without its identifier field.
type Document = map[string]any

// documentUseCase is the internal interface for document reads.
type documentUseCase interface {
	FetchAll(ctx context.Context) ([]domain.Document, error)
}

// Documents returns every document of the configured collection.
// An empty collection yields an empty, non-nil slice.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	start := time.Now()
	docs, err := c.docSvc.FetchAll(ctx)
	c.obs.observe("documents", start, len(docs), err)
	if err != nil {
		return nil, err
	}

	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = Document(d)
	}
	return out, nil
}
