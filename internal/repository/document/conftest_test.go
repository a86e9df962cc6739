package document

import (
	"context"
	"testing"

	"github.com/kailas-cloud/vizdata/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	findAllFn func(ctx context.Context, collection string) ([]db.Record, error)
	calls     []string
}

func (m *mockStore) FindAll(ctx context.Context, collection string) ([]db.Record, error) {
	m.calls = append(m.calls, collection)
	if m.findAllFn != nil {
		return m.findAllFn(ctx, collection)
	}
	return []db.Record{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "data_collection")
	return repo, ms
}
