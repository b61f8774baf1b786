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

	"github.com/scholargraph/teamgraph/pkg/types"
)

func catalogRouter(graph *mockGraph) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCatalogHandler(graph)
	router.GET("/api/v1/algorithms", h.ListAlgorithms)
	router.GET("/api/v1/algorithms/:id", h.GetAlgorithm)
	router.GET("/api/v1/keywords", h.ListKeywords)
	router.GET("/api/v1/authors/search", NewAuthorsHandler(graph).Search)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListAlgorithms(t *testing.T) {
	w := get(catalogRouter(&mockGraph{}), "/api/v1/algorithms")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Algorithms []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Algorithms, 7)
	assert.Equal(t, "ACET", response.Algorithms[0].Code)
}

func TestGetAlgorithm(t *testing.T) {
	router := catalogRouter(&mockGraph{})

	w := get(router, "/api/v1/algorithms/cot")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cohesion-Optimized")

	w = get(router, "/api/v1/algorithms/BOGUS")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListKeywords(t *testing.T) {
	w := get(catalogRouter(&mockGraph{}), "/api/v1/keywords")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestSearchAuthors(t *testing.T) {
	graph := &mockGraph{searchAuthors: func(query string, limit int) ([]types.AuthorSummary, error) {
		assert.Equal(t, "ada", query)
		assert.Equal(t, 5, limit)
		return []types.AuthorSummary{{ID: "A1", Name: "Ada One", Skills: "nlp"}}, nil
	}}

	w := get(catalogRouter(graph), "/api/v1/authors/search?q=ada&limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada One")
}

func TestSearchAuthorsFailure(t *testing.T) {
	graph := &mockGraph{searchAuthors: func(query string, limit int) ([]types.AuthorSummary, error) {
		return nil, errors.New("store unavailable")
	}}

	w := get(catalogRouter(graph), "/api/v1/authors/search?q=ada")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
