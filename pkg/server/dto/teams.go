package dto

import (
	"errors"
	"strings"
)

// MaxKeywords bounds a single request; each keyword widens the search loop.
const MaxKeywords = 20

// MaxTeamCount bounds the number of teams per batch.
const MaxTeamCount = 50

// FormTeamsRequest is the body of POST /api/v1/teams.
type FormTeamsRequest struct {
	Keywords        []string `json:"keywords" binding:"required"`
	Algorithm       string   `json:"algorithm"`
	TeamCount       int      `json:"team_count"`
	ExcludedIDs     []string `json:"excluded_ids"`
	TimeThreshold   int      `json:"time_threshold"`
	NullYearsOption int      `json:"null_years_option"`
	SortOrder       string   `json:"sort_order"`
	RandSeed        int64    `json:"rand_seed"`
}

// Validate checks the request and fills defaults for omitted fields.
func (r *FormTeamsRequest) Validate() error {
	cleaned := make([]string, 0, len(r.Keywords))
	for _, kw := range r.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	r.Keywords = cleaned

	if len(r.Keywords) == 0 {
		return errors.New("keywords cannot be empty")
	}
	if len(r.Keywords) > MaxKeywords {
		return errors.New("too many keywords")
	}
	if r.Algorithm == "" {
		r.Algorithm = "ACET"
	}
	if r.TeamCount == 0 {
		r.TeamCount = 1
	}
	if r.TeamCount < 0 || r.TeamCount > MaxTeamCount {
		return errors.New("team_count must be between 1 and 50")
	}
	if r.NullYearsOption < 0 || r.NullYearsOption > 3 {
		return errors.New("null_years_option must be 1, 2 or 3")
	}
	return nil
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
