package formation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedScore(t *testing.T) {
	// Cohesion 6 at distance 2 against cohesion 1 at the same distance.
	strong := combinedScore(6, 2, 0.7, 0.3)
	weak := combinedScore(1, 2, 0.7, 0.3)
	assert.Greater(t, strong, weak)

	// With zero cohesion everywhere, nearness decides.
	near := combinedScore(0, 1, 0.7, 0.3)
	far := combinedScore(0, 5, 0.7, 0.3)
	assert.Greater(t, near, far)
}

func newCohesionStrategy(q *mockQuerier) cohesionOptimizedStrategy {
	return cohesionOptimizedStrategy{
		q:              q,
		logger:         testLogger(),
		cohesionWeight: 0.7,
		distanceWeight: 0.3,
		maxConcurrent:  4,
	}
}

func TestCohesionFindMemberPicksHighestScore(t *testing.T) {
	cohesionByID := map[string]float64{"C1": 1, "C2": 6}
	q := &mockQuerier{}
	q.rows = func(query string, params map[string]any) ([]map[string]any, error) {
		if strings.Contains(query, "$candidate_id") {
			score := cohesionByID[params["candidate_id"].(string)]
			return []map[string]any{{"total_cohesion": score}}, nil
		}
		return []map[string]any{
			authorRow("C1", "Cara One", "nlp", 10, 2),
			authorRow("C2", "Cole Two", "nlp", 3, 2),
		}, nil
	}

	member, err := newCohesionStrategy(q).FindMember(context.Background(), FindRequest{
		TeamIDs: []string{"A1"}, Keyword: "nlp", MaxDistance: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "C2", member.AuthorID)
	assert.Equal(t, int64(6), member.Degree, "the cohesion score replaces the structural degree")
}

func TestCohesionFindMemberTieBreaksByCandidateOrder(t *testing.T) {
	q := &mockQuerier{}
	q.rows = func(query string, params map[string]any) ([]map[string]any, error) {
		if strings.Contains(query, "$candidate_id") {
			return []map[string]any{{"total_cohesion": float64(3)}}, nil
		}
		return []map[string]any{
			authorRow("C1", "Cara One", "nlp", 10, 2),
			authorRow("C2", "Cole Two", "nlp", 3, 2),
		}, nil
	}

	member, err := newCohesionStrategy(q).FindMember(context.Background(), FindRequest{
		TeamIDs: []string{"A1"}, Keyword: "nlp", MaxDistance: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "C1", member.AuthorID)
}

func TestCohesionFindMemberSkipsFailedScores(t *testing.T) {
	q := &mockQuerier{}
	q.rows = func(query string, params map[string]any) ([]map[string]any, error) {
		if strings.Contains(query, "$candidate_id") {
			if params["candidate_id"] == "C1" {
				return nil, errors.New("timeout")
			}
			return []map[string]any{{"total_cohesion": float64(2)}}, nil
		}
		return []map[string]any{
			authorRow("C1", "Cara One", "nlp", 10, 2),
			authorRow("C2", "Cole Two", "nlp", 3, 3),
		}, nil
	}

	member, err := newCohesionStrategy(q).FindMember(context.Background(), FindRequest{
		TeamIDs: []string{"A1"}, Keyword: "nlp", MaxDistance: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "C2", member.AuthorID)
}

func TestCohesionFindMemberNoCandidates(t *testing.T) {
	q := &mockQuerier{}
	member, err := newCohesionStrategy(q).FindMember(context.Background(), FindRequest{
		TeamIDs: []string{"A1"}, Keyword: "nlp", MaxDistance: 2,
	})
	require.NoError(t, err)
	assert.Nil(t, member)
}
