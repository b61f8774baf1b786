// Package export flattens batch results into Parquet files for downstream
// analysis.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/scholargraph/teamgraph/pkg/types"
)

// TeamRow is the Parquet schema for one team member: one row per member, the
// team-level attributes denormalized onto each row.
type TeamRow struct {
	BatchID           string  `parquet:"batch_id"`
	Algorithm         string  `parquet:"algorithm"`
	TeamNumber        int32   `parquet:"team_number"`
	TeamName          string  `parquet:"team_name"`
	AuthorID          string  `parquet:"author_id"`
	AuthorName        string  `parquet:"author_name"`
	Skills            string  `parquet:"skills"`
	MatchedSkills     string  `parquet:"matched_skills"` // comma-joined
	AddedFor          string  `parquet:"added_for_skill"`
	PaperCount        int64   `parquet:"paper_count"`
	TotalCitations    int64   `parquet:"total_citations"`
	IntraTeamDistance int64   `parquet:"intra_team_distance"`
	Completeness      float64 `parquet:"completeness"`
	Status            string  `parquet:"status"`
}

// Rows flattens a batch result into member rows.
func Rows(result *types.BatchResult) []TeamRow {
	var rows []TeamRow
	for _, team := range result.Teams {
		for _, m := range team.Members {
			rows = append(rows, TeamRow{
				BatchID:           result.BatchID,
				Algorithm:         result.Algorithm,
				TeamNumber:        int32(team.Number),
				TeamName:          team.Name,
				AuthorID:          m.AuthorID,
				AuthorName:        m.Name,
				Skills:            m.Skills,
				MatchedSkills:     strings.Join(m.MatchedSkills, ", "),
				AddedFor:          m.AddedFor,
				PaperCount:        m.PaperCount,
				TotalCitations:    m.TotalCitations,
				IntraTeamDistance: team.IntraTeamDistance,
				Completeness:      team.Completeness,
				Status:            string(team.Status),
			})
		}
	}
	return rows
}

// WriteTeams writes a batch result to path, creating parent directories as
// needed. A batch with no teams still produces a file with the schema and
// zero rows.
func WriteTeams(path string, result *types.BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	rows := Rows(result)
	if rows == nil {
		rows = []TeamRow{}
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write parquet file %s: %w", path, err)
	}
	return nil
}
