package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/formation"
	"github.com/scholargraph/teamgraph/pkg/server/dto"
)

// CatalogHandler serves the algorithm catalogue and the keyword vocabulary
type CatalogHandler struct {
	graph teamgraph.TeamGraph
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(g teamgraph.TeamGraph) *CatalogHandler {
	return &CatalogHandler{graph: g}
}

// ListAlgorithms handles GET /api/v1/algorithms
func (h *CatalogHandler) ListAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": formation.Algorithms()})
}

// GetAlgorithm handles GET /api/v1/algorithms/:id
func (h *CatalogHandler) GetAlgorithm(c *gin.Context) {
	alg, err := formation.ParseAlgorithm(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, alg.Info())
}

// ListKeywords handles GET /api/v1/keywords
func (h *CatalogHandler) ListKeywords(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "500"))

	keywords, err := h.graph.Keywords(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "query_failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": keywords, "count": len(keywords)})
}
