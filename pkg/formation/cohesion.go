package formation

import (
	"context"
	"log/slog"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
	"github.com/scholargraph/teamgraph/pkg/utils"
)

// CohesionScore is the pairwise-additive affinity between a candidate and a
// team: sum over members of 2×(jointly authored papers) + (shared
// affiliations). A deliberate simplification, not a graph-theoretic cohesion
// metric: contributions are independent per member pair.
func CohesionScore(ctx context.Context, q driver.Querier, teamIDs []string, candidateID string) (float64, error) {
	row, err := q.ReadSingle(ctx, queryPotentialCohesion, map[string]any{
		"team_ids":     teamIDs,
		"candidate_id": candidateID,
	})
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return driver.AsFloat64(row["total_cohesion"], 0), nil
}

// combinedScore blends cohesion against nearness. The 0.1 offset keeps the
// distance term finite for hypothetical distance-0 candidates.
func combinedScore(cohesion float64, distance int64, cohesionWeight, distanceWeight float64) float64 {
	return cohesionWeight*cohesion + distanceWeight*(1.0/(float64(distance)+0.1))
}

// cohesionOptimizedStrategy (COT): generate the ten nearest keyword matches,
// score each against the team, and keep the highest weighted score. Scoring
// queries for independent candidates run concurrently under a bounded
// executor; selection stays sequential in candidate order so ties resolve
// deterministically.
type cohesionOptimizedStrategy struct {
	q              driver.Querier
	logger         *slog.Logger
	cohesionWeight float64
	distanceWeight float64
	maxConcurrent  int
}

func (s cohesionOptimizedStrategy) SeedFilter() SeedFilter {
	return sufficientConnectionsFilter{s.q}
}

func (s cohesionOptimizedStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	rows, err := s.q.ReadRows(ctx, queryCohesionCandidates(req.MaxDistance), finderParams(req))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	candidates := make([]types.TeamCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, candidateFromRow(row))
	}

	scorers := make([]func() (float64, error), len(candidates))
	for i := range candidates {
		candidateID := candidates[i].AuthorID
		scorers[i] = func() (float64, error) {
			return CohesionScore(ctx, s.q, req.TeamIDs, candidateID)
		}
	}
	cohesions, errs := utils.ExecuteWithResults(ctx, s.maxConcurrent, scorers...)

	var best *types.TeamCandidate
	bestScore := -1.0
	for i := range candidates {
		if errs[i] != nil {
			s.logger.Warn("cohesion scoring failed, skipping candidate",
				"candidate", candidates[i].AuthorID, "error", errs[i])
			continue
		}
		score := combinedScore(cohesions[i], candidates[i].Distance, s.cohesionWeight, s.distanceWeight)
		if score > bestScore {
			bestScore = score
			c := candidates[i]
			c.Degree = int64(cohesions[i])
			best = &c
		}
	}
	return best, nil
}
