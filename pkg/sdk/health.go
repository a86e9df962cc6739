package vizdata

import (
	"context"
	"errors"
	"time"

	healthuc "github.com/kailas-cloud/vizdata/internal/usecase/health"
)

var errHealthDegraded = errors.New("vizdata: health degraded")

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component → "ok"/"error"
}

// Health checks the health of the backing store.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)
	var err error
	if report.Status != healthuc.Healthy {
		err = errHealthDegraded
	}
	c.obs.observe("health", start, -1, err)

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
