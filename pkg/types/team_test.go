package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamStatusCompleteness(t *testing.T) {
	assert.Equal(t, 1.0, TeamComplete.Completeness())
	assert.Equal(t, 0.7, TeamIncomplete.Completeness())
}

func TestBatchResultJSON(t *testing.T) {
	result := BatchResult{
		BatchID:   "b-1",
		Algorithm: "ACET",
		Teams: []TeamView{{
			Number:        1,
			Name:          "Team 1",
			Status:        TeamComplete,
			Completeness:  1.0,
			SkillsCovered: []string{"nlp"},
			Members:       []TeamMember{{AuthorID: "A1", Name: "Ada One", AddedFor: "nlp"}},
		}},
		Statistics: Statistics{TotalTeams: 1, TotalMembers: 1, KeywordCoverage: 100},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded BatchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
	assert.Contains(t, string(data), `"team_number":1`)
	assert.Contains(t, string(data), `"added_for":"nlp"`)
}
