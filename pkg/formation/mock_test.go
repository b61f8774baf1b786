package formation

import (
	"context"
	"strings"
	"sync"
)

// mockQuerier scripts query results for engine tests. Queries are routed by
// rows, which receives the full Cypher text and the parameter map; the mock
// records every call so tests can assert on how many queries ran and with
// what parameters.
type mockQuerier struct {
	mu    sync.Mutex
	rows  func(query string, params map[string]any) ([]map[string]any, error)
	calls []queryCall
}

type queryCall struct {
	query  string
	params map[string]any
}

func (m *mockQuerier) ReadRows(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	m.mu.Lock()
	m.calls = append(m.calls, queryCall{query: query, params: params})
	m.mu.Unlock()
	if m.rows == nil {
		return nil, nil
	}
	return m.rows(query, params)
}

func (m *mockQuerier) ReadSingle(ctx context.Context, query string, params map[string]any) (map[string]any, error) {
	rows, err := m.ReadRows(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (m *mockQuerier) VerifyConnectivity(ctx context.Context) error { return nil }
func (m *mockQuerier) Close(ctx context.Context) error              { return nil }

func (m *mockQuerier) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// callsContaining returns the recorded calls whose query text contains frag.
func (m *mockQuerier) callsContaining(frag string) []queryCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []queryCall
	for _, c := range m.calls {
		if strings.Contains(c.query, frag) {
			out = append(out, c)
		}
	}
	return out
}

// authorRow builds a finder/filter result row.
func authorRow(id, name, skills string, degree, distance int64) map[string]any {
	return map[string]any{
		"author_id":   id,
		"author_name": name,
		"skills":      skills,
		"degree":      degree,
		"distance":    distance,
	}
}
