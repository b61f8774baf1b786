package formation

import (
	"context"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// FindRequest asks a strategy for the single best new member within a radius.
type FindRequest struct {
	TeamIDs     []string
	Keyword     string
	MaxDistance int
	ExcludedIDs []string
}

// Strategy bundles the per-algorithm behavior: one seed filter and one member
// finder. FindMember returns at most one candidate; (nil, nil) means no
// qualifying author exists at this radius.
type Strategy interface {
	SeedFilter() SeedFilter
	FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error)
}

// finderParams builds the common parameter set. Excluded IDs must never be
// nil: Cypher's IN treats null lists as null, not empty.
func finderParams(req FindRequest) map[string]any {
	excluded := req.ExcludedIDs
	if excluded == nil {
		excluded = []string{}
	}
	return map[string]any{
		"team_ids":     req.TeamIDs,
		"keyword":      req.Keyword,
		"excluded_ids": excluded,
	}
}

// findSingle runs a single-best-member query and maps the result.
func findSingle(ctx context.Context, q driver.Querier, query string, params map[string]any) (*types.TeamCandidate, error) {
	row, err := q.ReadSingle(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	c := candidateFromRow(row)
	return &c, nil
}

// highestDegreeStrategy (ACET): any edge type, closest first, degree breaks
// ties.
type highestDegreeStrategy struct {
	q driver.Querier
}

func (s highestDegreeStrategy) SeedFilter() SeedFilter {
	return sufficientConnectionsFilter{s.q}
}

func (s highestDegreeStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	return findSingle(ctx, s.q, queryFindHighestDegree(req.MaxDistance), finderParams(req))
}

// writtenConnectionStrategy (CAT): co-authorship edges only.
type writtenConnectionStrategy struct {
	q driver.Querier
}

func (s writtenConnectionStrategy) SeedFilter() SeedFilter {
	return writtenConnectionsFilter{s.q}
}

func (s writtenConnectionStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	return findSingle(ctx, s.q, queryFindWrittenConnection(req.MaxDistance), finderParams(req))
}

// organizationalConnectionStrategy (OAT): affiliation and containment edges
// only. Also used directly by the orchestrator as the fallback finder for the
// temporal strategies.
type organizationalConnectionStrategy struct {
	q driver.Querier
}

func (s organizationalConnectionStrategy) SeedFilter() SeedFilter {
	return sufficientConnectionsFilter{s.q}
}

func (s organizationalConnectionStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	return findSingle(ctx, s.q, queryFindOrganizationalConnection(req.MaxDistance), finderParams(req))
}

// prioritizedConnectionStrategy (PRT): co-authorship beats affiliation beats
// any-path. The reported distance is the tier constant, not a measured
// shortest-path length.
type prioritizedConnectionStrategy struct {
	q driver.Querier
}

func (s prioritizedConnectionStrategy) SeedFilter() SeedFilter {
	return writtenConnectionsFilter{s.q}
}

func (s prioritizedConnectionStrategy) FindMember(ctx context.Context, req FindRequest) (*types.TeamCandidate, error) {
	return findSingle(ctx, s.q, queryFindPrioritizedConnection(req.MaxDistance), finderParams(req))
}
