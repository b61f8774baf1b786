package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/formation"
	"github.com/scholargraph/teamgraph/pkg/server/dto"
)

// TeamsHandler handles team formation requests
type TeamsHandler struct {
	graph teamgraph.TeamGraph
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(g teamgraph.TeamGraph) *TeamsHandler {
	return &TeamsHandler{graph: g}
}

// FormTeams handles POST /api/v1/teams
func (h *TeamsHandler) FormTeams(c *gin.Context) {
	var req dto.FormTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	result, err := h.graph.FormTeams(c.Request.Context(), teamgraph.FormRequest{
		Keywords:        req.Keywords,
		Algorithm:       req.Algorithm,
		TeamCount:       req.TeamCount,
		ExcludedIDs:     req.ExcludedIDs,
		TimeThreshold:   req.TimeThreshold,
		NullYearsOption: req.NullYearsOption,
		SortOrder:       req.SortOrder,
		RandSeed:        req.RandSeed,
	})
	if err != nil {
		if formation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "formation_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
