package document

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/vizdata/internal/db"
	"github.com/kailas-cloud/vizdata/internal/domain"
)

func TestFindAll_UsesBoundCollection(t *testing.T) {
	repo, ms := newTestRepo(t)

	if _, err := repo.FindAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ms.calls) != 1 || ms.calls[0] != "data_collection" {
		t.Errorf("expected one call for data_collection, got %v", ms.calls)
	}
}

func TestFindAll_ConvertsRecords(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.findAllFn = func(_ context.Context, _ string) ([]db.Record, error) {
		return []db.Record{{"name": "a"}, {"name": "b"}}, nil
	}

	docs, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[1]["name"] != "b" {
		t.Errorf("docs[1] = %v", docs[1])
	}
}

func TestFindAll_EmptyIsNonNil(t *testing.T) {
	repo, _ := newTestRepo(t)

	docs, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs == nil {
		t.Fatal("expected non-nil slice")
	}
}

func TestFindAll_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		notWant []error
	}{
		{
			name:    "unavailable",
			err:     &db.Error{Op: db.OpFind, Err: db.ErrUnavailable, Cause: context.DeadlineExceeded},
			want:    domain.ErrStorageUnavailable,
			notWant: []error{domain.ErrInvalidDocument},
		},
		{
			name:    "corrupt",
			err:     &db.Error{Op: db.OpDecode, Err: db.ErrCorruptDocument},
			want:    domain.ErrInvalidDocument,
			notWant: []error{domain.ErrStorageUnavailable},
		},
		{
			name:    "unclassified",
			err:     &db.Error{Op: db.OpFind, Err: errors.New("unauthorized")},
			notWant: []error{domain.ErrStorageUnavailable, domain.ErrInvalidDocument},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, ms := newTestRepo(t)
			ms.findAllFn = func(_ context.Context, _ string) ([]db.Record, error) {
				return nil, tc.err
			}

			docs, err := repo.FindAll(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if docs != nil {
				t.Errorf("expected no documents on error, got %v", docs)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("expected %v in chain, got %v", tc.want, err)
			}
			for _, nw := range tc.notWant {
				if errors.Is(err, nw) {
					t.Errorf("unexpected %v in chain: %v", nw, err)
				}
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("original error lost: %v", err)
			}
		})
	}
}
