package driver

import "context"

// Querier is the read-only capability the formation engine requires from the
// underlying graph store. Consumers should depend on this interface, not on a
// concrete driver, so the engine stays testable without a running database.
type Querier interface {
	// ReadRows runs a read-only Cypher query and returns every result row as
	// a column-name keyed map.
	ReadRows(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)

	// ReadSingle runs a read-only Cypher query expected to yield at most one
	// row. It returns (nil, nil) when the query matched nothing.
	ReadSingle(ctx context.Context, query string, params map[string]any) (map[string]any, error)

	// VerifyConnectivity checks that the store is reachable with the
	// configured credentials.
	VerifyConnectivity(ctx context.Context) error

	// Close releases all resources held by the driver.
	Close(ctx context.Context) error
}
