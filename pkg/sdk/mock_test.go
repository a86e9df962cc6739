package vizdata

import (
	"context"
	"time"

	"github.com/kailas-cloud/vizdata/internal/db"
	"github.com/kailas-cloud/vizdata/internal/domain"
)

// --- documentUseCase mock ---

type mockDocumentUC struct {
	fetchFn func(ctx context.Context) ([]domain.Document, error)
}

func (m *mockDocumentUC) FetchAll(ctx context.Context) ([]domain.Document, error) {
	return m.fetchFn(ctx)
}

// --- db.Store mock ---

type mockStore struct {
	records []db.Record
	err     error
	pingErr error
	closed  bool
	queried []string
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func (m *mockStore) FindAll(_ context.Context, collection string) ([]db.Record, error) {
	m.queried = append(m.queried, collection)
	return m.records, m.err
}

func (m *mockStore) Close() { m.closed = true }

func (m *mockStore) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, m, timeout)
}
