package export

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholargraph/teamgraph/pkg/types"
)

func sampleResult() *types.BatchResult {
	return &types.BatchResult{
		BatchID:   "b-1",
		Algorithm: "ACET",
		Teams: []types.TeamView{
			{
				Number:            1,
				Name:              "Team 1",
				IntraTeamDistance: 2,
				Completeness:      1.0,
				Status:            types.TeamComplete,
				Members: []types.TeamMember{
					{AuthorID: "A1", Name: "Ada One", Skills: "nlp", MatchedSkills: []string{"nlp"}, AddedFor: "nlp", PaperCount: 3, TotalCitations: 40},
					{AuthorID: "A2", Name: "Bob Two", Skills: "vision", MatchedSkills: []string{"vision"}, AddedFor: "vision"},
				},
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleResult())
	require.Len(t, rows, 2)
	assert.Equal(t, "b-1", rows[0].BatchID)
	assert.Equal(t, int32(1), rows[0].TeamNumber)
	assert.Equal(t, "A1", rows[0].AuthorID)
	assert.Equal(t, "nlp", rows[0].MatchedSkills)
	assert.Equal(t, int64(2), rows[1].IntraTeamDistance)
	assert.Equal(t, "complete", rows[1].Status)
}

func TestWriteTeamsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batches", "b-1.parquet")
	require.NoError(t, WriteTeams(path, sampleResult()))

	rows, err := parquet.ReadFile[TeamRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada One", rows[0].AuthorName)
	assert.Equal(t, int64(40), rows[0].TotalCitations)
}

func TestWriteTeamsEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteTeams(path, &types.BatchResult{BatchID: "b-2", Algorithm: "CAT"}))

	rows, err := parquet.ReadFile[TeamRow](path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
