package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Mocks ---

type mockDBPinger struct {
	err      error
	deadline time.Time
}

func (m *mockDBPinger) Ping(ctx context.Context) error {
	m.deadline, _ = ctx.Deadline()
	return m.err
}

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockDBPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
}

func TestCheck_PingIsBounded(t *testing.T) {
	p := &mockDBPinger{}
	svc := New(p).WithPingTimeout(50 * time.Millisecond)

	before := time.Now()
	svc.Check(context.Background())

	if p.deadline.IsZero() {
		t.Fatal("expected ping context to carry a deadline")
	}
	if p.deadline.Sub(before) > time.Second {
		t.Errorf("deadline too far: %v", p.deadline.Sub(before))
	}
}

func TestWithPingTimeout_IgnoresNonPositive(t *testing.T) {
	svc := New(&mockDBPinger{}).WithPingTimeout(0)
	if svc.pingTimeout != defaultPingTimeout {
		t.Errorf("pingTimeout = %v, want %v", svc.pingTimeout, defaultPingTimeout)
	}
}
