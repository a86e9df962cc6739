package document

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vizdata/internal/domain"
	logpkg "github.com/kailas-cloud/vizdata/internal/logger"
)

// Service reads the whole document collection.
type Service struct {
	repo     Repository
	recorder FetchRecorder
	logger   *zap.Logger
}

// New creates a document service. logger is used when the request context carries none.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// WithRecorder attaches a fetch-count recorder.
func (s *Service) WithRecorder(r FetchRecorder) *Service {
	s.recorder = r
	return s
}

// FetchAll returns every stored document with the identifier field removed.
// The result is never nil on success.
func (s *Service) FetchAll(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	out := make([]domain.Document, len(docs))
	for i, d := range docs {
		out[i] = d.WithoutIdentifier()
	}

	logpkg.FromContextOr(ctx, s.logger).Info("Number of records fetched", zap.Int("count", len(out)))
	if s.recorder != nil {
		s.recorder.ObserveFetched(len(out))
	}

	return out, nil
}
