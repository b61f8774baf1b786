package formation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// Engine orchestrates team assembly over the collaboration graph. It owns no
// state between batches: every AssembleTeams call builds its exclusion set
// and strategy from scratch.
type Engine struct {
	q      driver.Querier
	logger *slog.Logger
}

// NewEngine wires an engine onto a graph querier.
func NewEngine(q driver.Querier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{q: q, logger: logger}
}

// strategyFor builds the strategy for one batch. The switch is exhaustive
// over the closed algorithm set; callers validate before dispatch.
func (e *Engine) strategyFor(alg Algorithm, opts Options, rng *rand.Rand) Strategy {
	switch alg {
	case ACET:
		return highestDegreeStrategy{e.q}
	case CAT:
		return writtenConnectionStrategy{e.q}
	case OAT:
		return organizationalConnectionStrategy{e.q}
	case PRT:
		return prioritizedConnectionStrategy{e.q}
	case COT:
		return cohesionOptimizedStrategy{
			q:              e.q,
			logger:         e.logger,
			cohesionWeight: opts.CohesionWeight,
			distanceWeight: opts.DistanceWeight,
			maxConcurrent:  opts.MaxConcurrentScores,
		}
	case TAT:
		return timeAwareStrategy{
			q:             e.q,
			timeThreshold: opts.TimeThreshold,
			nullYears:     opts.NullYears,
			rng:           rng,
		}
	case CIT:
		return citationOptimizedStrategy{
			q:             e.q,
			timeThreshold: opts.TimeThreshold,
			nullYears:     opts.NullYears,
			sortOrder:     opts.SortOrder,
			rng:           rng,
		}
	default:
		panic("unreachable: algorithm validated before dispatch")
	}
}

// usesOrgFallback reports whether the algorithm retries the current radius
// with organizational edges before widening. Only the temporal strategies
// do: their shared-paper predicate is strict enough that a purely structural
// fallback is worth one extra query.
func usesOrgFallback(alg Algorithm) bool {
	return alg == TAT || alg == CIT
}

func validateRequest(req Request) error {
	if !req.Algorithm.Valid() {
		return &ValidationError{Field: "algorithm", Reason: "unknown algorithm identifier " + string(req.Algorithm)}
	}
	if len(req.Keywords) == 0 {
		return &ValidationError{Field: "keywords", Reason: "at least one keyword is required"}
	}
	for _, kw := range req.Keywords {
		if strings.TrimSpace(kw) == "" {
			return &ValidationError{Field: "keywords", Reason: "keywords must be non-empty"}
		}
	}
	if req.TeamCount <= 0 {
		return &ValidationError{Field: "team_count", Reason: "team count must be positive"}
	}
	return nil
}

// AssembleTeams runs one batch: validate, pick seeds, grow one team per seed
// under the widening search, enrich the members and aggregate statistics.
// Validation failures abort before any query; graph failures during the
// search degrade to smaller or incomplete teams instead of failing the batch.
func (e *Engine) AssembleTeams(ctx context.Context, req Request) (*types.BatchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	opts := req.Options
	opts.normalize()

	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	strategy := e.strategyFor(req.Algorithm, opts, rng)
	excluded := NewExclusionSet(opts.ExcludedIDs...)

	batchID := uuid.NewString()
	logger := e.logger.With("batch_id", batchID, "algorithm", string(req.Algorithm))
	logger.Info("assembling teams",
		"keywords", req.Keywords, "team_count", req.TeamCount, "excluded", excluded.Len())

	// Pre-excluded seeds must not consume a team slot, so over-fetch by the
	// size of the initial exclusion set.
	seedLimit := req.TeamCount + excluded.Len()
	seeds, err := strategy.SeedFilter().Filter(ctx, req.Keywords, opts.MaxDistance, seedLimit)
	if err != nil {
		logger.Warn("seed query failed, treating as no candidates", "error", err)
		seeds = nil
	}
	if len(seeds) == 0 {
		return &types.BatchResult{
			BatchID:   batchID,
			Algorithm: string(req.Algorithm),
			Teams:     []types.TeamView{},
			Message:   ErrNoCandidates.Error(),
		}, nil
	}

	var teams []types.Team
	for _, s := range seeds {
		if len(teams) >= req.TeamCount {
			break
		}
		if excluded.Contains(s.AuthorID) {
			continue
		}
		team := e.assembleTeam(ctx, logger, strategy, req, opts, s, excluded)
		// Members of an incomplete team are spent too: a partially used
		// author must not reappear in a later team of the same batch.
		excluded.Add(team.MemberIDs...)
		teams = append(teams, team)
	}

	views := e.enrichTeams(ctx, logger, req, teams)
	result := &types.BatchResult{
		BatchID:    batchID,
		Algorithm:  string(req.Algorithm),
		Teams:      views,
		Statistics: Aggregate(views),
	}
	if incomplete := countIncomplete(teams); incomplete > 0 {
		result.Message = fmt.Sprintf("%d of %d teams could not cover every requested skill", incomplete, len(teams))
	}
	logger.Info("batch finished", "teams", len(views), "incomplete", countIncomplete(teams))
	return result, nil
}

// assembleTeam grows one team from a seed. For each uncovered keyword it runs
// the widening search: start at the initial radius and widen one hop at a
// time up to the ceiling; the temporal strategies additionally retry each
// radius over organizational edges before widening. A keyword that stays
// uncovered at the ceiling marks the team incomplete and ends the search for
// this team.
func (e *Engine) assembleTeam(ctx context.Context, logger *slog.Logger, strategy Strategy, req Request, opts Options, seed types.TeamCandidate, excluded *ExclusionSet) types.Team {
	team := types.Team{
		MemberIDs: []string{seed.AuthorID},
		AddedFor:  map[string]string{seed.AuthorID: req.Keywords[0]},
		Status:    types.TeamComplete,
	}
	fallback := organizationalConnectionStrategy{e.q}

	for _, keyword := range req.Keywords[1:] {
		var member *types.TeamCandidate
		for distance := opts.InitialDistance; distance <= opts.MaxIncrease; distance++ {
			member = e.findMember(ctx, logger, strategy, team, keyword, distance, excluded)
			if member == nil && !opts.DisableOrgConnections && usesOrgFallback(req.Algorithm) {
				member = e.findMember(ctx, logger, fallback, team, keyword, distance, excluded)
			}
			if member != nil {
				break
			}
		}
		if member == nil {
			logger.Warn("no member found within radius ceiling",
				"seed", seed.AuthorID, "keyword", keyword, "max_increase", opts.MaxIncrease)
			team.Status = types.TeamIncomplete
			break
		}
		team.MemberIDs = append(team.MemberIDs, member.AuthorID)
		team.AddedFor[member.AuthorID] = keyword
		team.IntraTeamDistance += member.Distance
	}
	return team
}

// findMember runs one strategy probe at one radius. Query failures are
// logged and degrade to "no candidate here" so the widening loop continues.
// Candidates already spent elsewhere in the batch are rejected even when the
// query-side filter missed them.
func (e *Engine) findMember(ctx context.Context, logger *slog.Logger, strategy Strategy, team types.Team, keyword string, distance int, excluded *ExclusionSet) *types.TeamCandidate {
	member, err := strategy.FindMember(ctx, FindRequest{
		TeamIDs:     team.MemberIDs,
		Keyword:     keyword,
		MaxDistance: distance,
		ExcludedIDs: append(excluded.IDs(), team.MemberIDs...),
	})
	if err != nil {
		logger.Warn("member query failed, treating as no candidate",
			"keyword", keyword, "distance", distance, "error", err)
		return nil
	}
	if member == nil {
		return nil
	}
	if excluded.Contains(member.AuthorID) {
		return nil
	}
	if member.Distance == 0 {
		// Finders that report a tier constant or no path length at all
		// count as found at the current radius.
		member.Distance = int64(distance)
	}
	return member
}

func countIncomplete(teams []types.Team) int {
	n := 0
	for _, t := range teams {
		if t.Status == types.TeamIncomplete {
			n++
		}
	}
	return n
}

// Keywords lists the distinct skill labels present in the store.
func (e *Engine) Keywords(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := e.q.ReadRows(ctx, queryKeywordVocabulary, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("keyword vocabulary query: %w", err)
	}
	keywords := make([]string, 0, len(rows))
	for _, row := range rows {
		if kw := driver.AsString(row["keyword"], ""); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords, nil
}

// SearchAuthors finds authors whose name or skills contain the query string.
func (e *Engine) SearchAuthors(ctx context.Context, query string, limit int) ([]types.AuthorSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ValidationError{Field: "query", Reason: "search query must be non-empty"}
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := e.q.ReadRows(ctx, querySearchAuthors, map[string]any{
		"query": strings.ToLower(query),
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("author search query: %w", err)
	}
	authors := make([]types.AuthorSummary, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, types.AuthorSummary{
			ID:     driver.AsString(row["author_id"], ""),
			Name:   driver.AsString(row["author_name"], ""),
			Skills: driver.AsString(row["skills"], ""),
		})
	}
	return authors, nil
}

// Probe verifies the store answers a trivial read.
func (e *Engine) Probe(ctx context.Context) error {
	_, err := e.q.ReadSingle(ctx, queryConnectivityProbe, nil)
	if err != nil {
		return fmt.Errorf("connectivity probe: %w", err)
	}
	return nil
}
