package formation

import (
	"context"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// SeedFilter produces the ordered anchor candidates for a batch. A candidate
// qualifies only if the first keyword matches its own skill labels or an
// authored paper's keyword set, case-insensitively.
type SeedFilter interface {
	Filter(ctx context.Context, keywords []string, maxDistance, limit int) ([]types.TeamCandidate, error)
}

// candidateFromRow maps a finder/filter result row onto a TeamCandidate.
func candidateFromRow(row map[string]any) types.TeamCandidate {
	return types.TeamCandidate{
		AuthorID:  driver.AsString(row["author_id"], ""),
		Name:      driver.AsString(row["author_name"], ""),
		Skills:    driver.AsString(row["skills"], ""),
		Degree:    driver.AsInt64(row["degree"], 0),
		Distance:  driver.AsInt64(row["distance"], 0),
		Citations: driver.AsInt64(row["citation_count"], 0),
		Recency:   driver.AsInt64(row["recency"], 0),
	}
}

// sufficientConnectionsFilter matches the first keyword and requires at least
// len(keywords)-1 distinct authors reachable over any edge type, ranked by
// overall structural degree.
type sufficientConnectionsFilter struct {
	q driver.Querier
}

func (f sufficientConnectionsFilter) Filter(ctx context.Context, keywords []string, maxDistance, limit int) ([]types.TeamCandidate, error) {
	rows, err := f.q.ReadRows(ctx, querySeedSufficientConnections(maxDistance), map[string]any{
		"first_keyword":   keywords[0],
		"min_connections": len(keywords) - 1,
		"limit":           limit,
	})
	if err != nil {
		return nil, err
	}
	return seedCandidates(rows), nil
}

// writtenConnectionsFilter is the co-authorship-only variant.
type writtenConnectionsFilter struct {
	q driver.Querier
}

func (f writtenConnectionsFilter) Filter(ctx context.Context, keywords []string, maxDistance, limit int) ([]types.TeamCandidate, error) {
	rows, err := f.q.ReadRows(ctx, querySeedWrittenConnections(maxDistance), map[string]any{
		"first_keyword":   keywords[0],
		"min_connections": len(keywords) - 1,
		"limit":           limit,
	})
	if err != nil {
		return nil, err
	}
	return seedCandidates(rows), nil
}

// highCitationFilter ranks by aggregate citation mass of keyword-matched
// papers and ignores connectivity entirely.
type highCitationFilter struct {
	q driver.Querier
}

func (f highCitationFilter) Filter(ctx context.Context, keywords []string, maxDistance, limit int) ([]types.TeamCandidate, error) {
	rows, err := f.q.ReadRows(ctx, querySeedHighCitation, map[string]any{
		"skill": keywords[0],
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return seedCandidates(rows), nil
}

// seedCandidates maps filter rows; a seed always has distance 0.
func seedCandidates(rows []map[string]any) []types.TeamCandidate {
	candidates := make([]types.TeamCandidate, 0, len(rows))
	for _, row := range rows {
		c := candidateFromRow(row)
		c.Distance = 0
		candidates = append(candidates, c)
	}
	return candidates
}
