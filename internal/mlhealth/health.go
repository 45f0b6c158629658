// Package mlhealth tracks sentiment model sidecar health for the
// ml-health metrics endpoint.
package mlhealth

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/feedbacklens/classifier/internal/mltransport"
)

// Status is a snapshot of the sidecar's last observed health.
type Status struct {
	Reachable    bool      `json:"reachable"`
	LatencyMs    int64     `json:"latency_ms"`
	ModelVersion string    `json:"model_version,omitempty"`
	LastChecked  time.Time `json:"last_checked"`
	LastError    string    `json:"last_error,omitempty"`
}

// Tracker polls the sidecar /health endpoint on demand and keeps the
// last snapshot. Safe for concurrent use.
type Tracker struct {
	baseURL string
	clock   clockwork.Clock

	mu     sync.RWMutex
	status Status
}

// NewTracker creates a tracker for the given sidecar base URL. The
// clock is injected so tests can control LastChecked.
func NewTracker(baseURL string, clock clockwork.Clock) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{baseURL: baseURL, clock: clock}
}

// Check calls GET /health and records the outcome. The updated snapshot
// is returned.
func (t *Tracker) Check(ctx context.Context) Status {
	reachable, latencyMs, modelVersion, err := mltransport.DoHealth(ctx, t.baseURL)

	status := Status{
		Reachable:    reachable,
		LatencyMs:    latencyMs,
		ModelVersion: modelVersion,
		LastChecked:  t.clock.Now(),
	}
	if err != nil {
		status.LastError = err.Error()
	}

	t.mu.Lock()
	t.status = status
	t.mu.Unlock()

	return status
}

// Status returns the last recorded snapshot without polling.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
