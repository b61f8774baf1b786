package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHealth(t *testing.T, graph *mockGraph, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHealthHandler(graph)
	router.GET("/health", h.HealthCheck)
	router.GET("/ready", h.ReadinessCheck)
	router.GET("/live", h.LivenessCheck)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := getHealth(t, &mockGraph{}, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "teamgraph", response["service"])
	assert.Contains(t, response, "timestamp")
	assert.Contains(t, response, "version")
}

func TestLivenessCheck(t *testing.T) {
	w := getHealth(t, &mockGraph{}, "/live")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessCheck(t *testing.T) {
	w := getHealth(t, &mockGraph{}, "/ready")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready"`)
}

func TestReadinessCheckStoreDown(t *testing.T) {
	w := getHealth(t, &mockGraph{healthErr: errors.New("connection refused")}, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not_ready")
	assert.Contains(t, w.Body.String(), "connection refused")
}
