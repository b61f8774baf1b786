package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/config"
	"github.com/scholargraph/teamgraph/pkg/types"
)

type stubGraph struct{}

func (stubGraph) FormTeams(ctx context.Context, req teamgraph.FormRequest) (*types.BatchResult, error) {
	return &types.BatchResult{BatchID: "b-1", Algorithm: req.Algorithm}, nil
}
func (stubGraph) Keywords(ctx context.Context, limit int) ([]string, error) { return nil, nil }
func (stubGraph) SearchAuthors(ctx context.Context, query string, limit int) ([]types.AuthorSummary, error) {
	return nil, nil
}
func (stubGraph) HealthCheck(ctx context.Context) error { return nil }
func (stubGraph) Close(ctx context.Context) error       { return nil }

func testServer() *Server {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	s := New(cfg, stubGraph{})
	s.Setup()
	return s
}

func TestRoutes(t *testing.T) {
	s := testServer()

	paths := []string{"/health", "/ready", "/live", "/api/v1/algorithms", "/api/v1/keywords"}
	for _, path := range paths {
		w := httptest.NewRecorder()
		s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/teams", nil))
	require.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
