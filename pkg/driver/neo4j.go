package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DefaultQueryTimeout bounds any single traversal query when the caller did
// not configure one. Widening searches issue many queries per team, so a
// stuck query must not stall the whole batch.
const DefaultQueryTimeout = 60 * time.Second

// Neo4jQuerier implements Querier against a Neo4j (or AuraDB) instance.
type Neo4jQuerier struct {
	client       neo4j.DriverWithContext
	database     string
	queryTimeout time.Duration
}

// NewNeo4jQuerier creates a querier for the given connection details. A zero
// queryTimeout falls back to DefaultQueryTimeout.
func NewNeo4jQuerier(uri, username, password, database string, queryTimeout time.Duration) (*Neo4jQuerier, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}

	return &Neo4jQuerier{
		client:       client,
		database:     database,
		queryTimeout: queryTimeout,
	}, nil
}

// ReadRows runs the query in a read transaction and collects every row.
func (n *Neo4jQuerier) ReadRows(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, n.queryTimeout)
	defer cancel()

	session := n.client.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: n.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			rows = append(rows, record.AsMap())
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]map[string]any), nil
}

// ReadSingle runs the query and returns the first row, or (nil, nil) when the
// query matched nothing.
func (n *Neo4jQuerier) ReadSingle(ctx context.Context, query string, params map[string]any) (map[string]any, error) {
	rows, err := n.ReadRows(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// VerifyConnectivity checks reachability and credentials.
func (n *Neo4jQuerier) VerifyConnectivity(ctx context.Context) error {
	if err := n.client.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j connectivity check failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (n *Neo4jQuerier) Close(ctx context.Context) error {
	return n.client.Close(ctx)
}
