package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vizdata/internal/metrics"
)

// NewRouter wires the middleware chain and routes for s.
func NewRouter(s *Server, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(logger))
	// Must wrap JSONRecoverer: recovered panics count as 500s.
	r.Use(metrics.Middleware())
	r.Use(JSONRecoverer(logger))

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Get("/", s.Index)
	r.Get("/api/data", s.Data)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Handle("/static/*", s.Static())

	return r
}
