package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vizdata/internal/domain"
	logpkg "github.com/kailas-cloud/vizdata/internal/logger"
	healthuc "github.com/kailas-cloud/vizdata/internal/usecase/health"
)

// DocumentFetcher reads the whole collection.
type DocumentFetcher interface {
	FetchAll(ctx context.Context) ([]domain.Document, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// ErrorRecorder counts failed document reads by error code.
type ErrorRecorder interface {
	ObserveError(kind string)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Server serves the dashboard page and the document API.
type Server struct {
	documents     DocumentFetcher
	health        HealthChecker
	index         []byte
	static        fs.FS
	errRecorder   ErrorRecorder
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server. index is the pre-rendered page served on GET /.
func NewServer(
	documents DocumentFetcher,
	health HealthChecker,
	index []byte,
	static fs.FS,
	logger *zap.Logger,
) *Server {
	return &Server{
		documents:     documents,
		health:        health,
		index:         index,
		static:        static,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// WithErrorRecorder attaches a recorder for failed reads.
func (s *Server) WithErrorRecorder(r ErrorRecorder) *Server {
	s.errRecorder = r
	return s
}

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.index)
}

// Data handles GET /api/data. Query parameters are ignored.
func (s *Server) Data(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.FetchAll(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	// Marshal before writing so a bad document never yields a partial 200.
	body, err := json.Marshal(docs)
	if err != nil {
		s.handleDomainError(w, r, errors.Join(domain.ErrInvalidDocument, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// Static serves embedded assets under /static/.
func (s *Server) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(s.static)))
}

// NotFound handles unmatched routes.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, ErrorCodeNotFound, "not found")
}

// MethodNotAllowed handles known routes hit with the wrong method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)

	var code ErrorCode
	for _, h := range s.errorHandlers {
		if code = h(w, err); code != "" {
			break
		}
	}
	if code == "" {
		code = ErrorCodeInternal
		writeError(w, http.StatusInternalServerError, code, "internal error")
	}

	log.Error("document read failed", zap.String("code", string(code)), zap.Error(err))
	if s.errRecorder != nil {
		s.errRecorder.ObserveError(string(code))
	}
}
