package formation

import (
	"context"
	"math/rand"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// timeAwareStrategy (TAT): candidates must share a paper with a team member
// no older than the time threshold; ranked by recency, then distance, then
// citation mass. The search is shared-paper based, so the effective distance
// is always the direct collaboration distance of 2 regardless of radius.
type timeAwareStrategy struct {
	q             driver.Querier
	timeThreshold int
	nullYears     NullYearsOption
	rng           *rand.Rand
}

func (s timeAwareStrategy) SeedFilter() SeedFilter {
	return sufficientConnectionsFilter{s.q}
}

func (s timeAwareStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	params := finderParams(req)
	params["time_threshold"] = s.timeThreshold
	params["null_replacement"] = s.nullYears.Replacement(s.timeThreshold, s.rng)
	return findSingle(ctx, s.q, queryFindTimeAware, params)
}

// citationOptimizedStrategy (CIT): the time-aware shape with a configurable
// ranking priority and the high-citation seed filter.
type citationOptimizedStrategy struct {
	q             driver.Querier
	timeThreshold int
	nullYears     NullYearsOption
	sortOrder     SortOrder
	rng           *rand.Rand
}

func (s citationOptimizedStrategy) SeedFilter() SeedFilter {
	return highCitationFilter{s.q}
}

func (s citationOptimizedStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	params := finderParams(req)
	params["time_threshold"] = s.timeThreshold
	params["null_replacement"] = s.nullYears.Replacement(s.timeThreshold, s.rng)
	return findSingle(ctx, s.q, queryFindCitationOptimized(s.sortOrder), params)
}
