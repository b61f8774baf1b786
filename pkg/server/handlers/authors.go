package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/formation"
	"github.com/scholargraph/teamgraph/pkg/server/dto"
)

// AuthorsHandler serves author lookups
type AuthorsHandler struct {
	graph teamgraph.TeamGraph
}

// NewAuthorsHandler creates a new authors handler
func NewAuthorsHandler(g teamgraph.TeamGraph) *AuthorsHandler {
	return &AuthorsHandler{graph: g}
}

// Search handles GET /api/v1/authors/search?q=...&limit=...
func (h *AuthorsHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	authors, err := h.graph.SearchAuthors(c.Request.Context(), query, limit)
	if err != nil {
		if formation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "query_failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}
