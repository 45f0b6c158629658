package mlhealth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbacklens/classifier/internal/mlhealth"
)

func TestTracker_Check_Healthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"model_version": "distil-2"})
	}))
	defer server.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	tracker := mlhealth.NewTracker(server.URL, clock)

	status := tracker.Check(context.Background())

	assert.True(t, status.Reachable)
	assert.Equal(t, "distil-2", status.ModelVersion)
	assert.Equal(t, now, status.LastChecked)
	assert.Empty(t, status.LastError)
}

func TestTracker_Check_Unreachable(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tracker := mlhealth.NewTracker("http://127.0.0.1:1", clock)

	status := tracker.Check(context.Background())

	assert.False(t, status.Reachable)
	assert.NotEmpty(t, status.LastError)
}

func TestTracker_Status_KeepsLastSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"model_version": "distil-2"})
	}))
	defer server.Close()

	tracker := mlhealth.NewTracker(server.URL, clockwork.NewFakeClock())

	assert.False(t, tracker.Status().Reachable, "zero snapshot before first check")

	_ = tracker.Check(context.Background())
	assert.True(t, tracker.Status().Reachable)
}
