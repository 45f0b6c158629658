package mlclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbacklens/classifier/internal/mlclient"
)

func TestClient_Infer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/classify", r.URL.Path)

		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "great lecture", req.Text)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"label":              "POSITIVE",
			"score":              0.93,
			"model_version":      "distil-2",
			"processing_time_ms": 12,
		})
	}))
	defer server.Close()

	client := mlclient.NewClient(server.URL)
	verdict, err := client.Infer(context.Background(), "great lecture")

	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", verdict.Label)
	assert.InDelta(t, 0.93, verdict.Score, 1e-9)
	assert.Equal(t, "distil-2", verdict.ModelVersion)
}

func TestClient_Infer_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := mlclient.NewClient(server.URL)
	verdict, err := client.Infer(context.Background(), "text")

	assert.Error(t, err)
	assert.Nil(t, verdict)
}

func TestClient_Infer_Unreachable(t *testing.T) {
	client := mlclient.NewClient("http://127.0.0.1:1")
	verdict, err := client.Infer(context.Background(), "text")

	assert.Error(t, err)
	assert.Nil(t, verdict)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"model_version": "distil-2"})
	}))
	defer server.Close()

	client := mlclient.NewClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestClient_Health_Unreachable(t *testing.T) {
	client := mlclient.NewClient("http://127.0.0.1:1")
	err := client.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, mlclient.ErrUnavailable)
}
