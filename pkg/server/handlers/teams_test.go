package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/types"
)

func postTeams(t *testing.T, graph *mockGraph, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/teams", NewTeamsHandler(graph).FormTeams)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFormTeams(t *testing.T) {
	graph := &mockGraph{formTeams: func(req teamgraph.FormRequest) (*types.BatchResult, error) {
		assert.Equal(t, []string{"nlp", "vision"}, req.Keywords)
		assert.Equal(t, "CAT", req.Algorithm)
		assert.Equal(t, 2, req.TeamCount)
		return &types.BatchResult{BatchID: "b-1", Algorithm: "CAT", Teams: []types.TeamView{}}, nil
	}}

	w := postTeams(t, graph, `{"keywords": ["nlp", "vision"], "algorithm": "CAT", "team_count": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result types.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "b-1", result.BatchID)
}

func TestFormTeamsDefaults(t *testing.T) {
	graph := &mockGraph{formTeams: func(req teamgraph.FormRequest) (*types.BatchResult, error) {
		assert.Equal(t, "ACET", req.Algorithm)
		assert.Equal(t, 1, req.TeamCount)
		return &types.BatchResult{}, nil
	}}

	w := postTeams(t, graph, `{"keywords": ["nlp"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFormTeamsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"keywords": `},
		{"missing keywords", `{"algorithm": "ACET"}`},
		{"blank keywords", `{"keywords": ["  ", ""]}`},
		{"negative team count", `{"keywords": ["nlp"], "team_count": -1}`},
		{"bad null years option", `{"keywords": ["nlp"], "null_years_option": 7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postTeams(t, &mockGraph{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFormTeamsUnknownAlgorithm(t *testing.T) {
	// The engine's validation error maps to 400, not 500.
	w := postTeams(t, &mockGraph{}, `{"keywords": ["nlp"], "algorithm": "BOGUS"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestFormTeamsEngineFailure(t *testing.T) {
	graph := &mockGraph{formTeams: func(req teamgraph.FormRequest) (*types.BatchResult, error) {
		return nil, errors.New("store unavailable")
	}}

	w := postTeams(t, graph, `{"keywords": ["nlp"]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "formation_failed")
}
