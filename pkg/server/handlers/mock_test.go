package handlers

import (
	"context"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/formation"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// mockGraph scripts TeamGraph responses for handler tests.
type mockGraph struct {
	formTeams     func(req teamgraph.FormRequest) (*types.BatchResult, error)
	keywords      func(limit int) ([]string, error)
	searchAuthors func(query string, limit int) ([]types.AuthorSummary, error)
	healthErr     error
}

var _ teamgraph.TeamGraph = (*mockGraph)(nil)

func (m *mockGraph) FormTeams(ctx context.Context, req teamgraph.FormRequest) (*types.BatchResult, error) {
	if m.formTeams == nil {
		if _, err := formation.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, err
		}
		return &types.BatchResult{BatchID: "b-1", Algorithm: req.Algorithm, Teams: []types.TeamView{}}, nil
	}
	return m.formTeams(req)
}

func (m *mockGraph) Keywords(ctx context.Context, limit int) ([]string, error) {
	if m.keywords == nil {
		return []string{"graphs", "nlp"}, nil
	}
	return m.keywords(limit)
}

func (m *mockGraph) SearchAuthors(ctx context.Context, query string, limit int) ([]types.AuthorSummary, error) {
	if m.searchAuthors == nil {
		return nil, nil
	}
	return m.searchAuthors(query, limit)
}

func (m *mockGraph) HealthCheck(ctx context.Context) error { return m.healthErr }

func (m *mockGraph) Close(ctx context.Context) error { return nil }
