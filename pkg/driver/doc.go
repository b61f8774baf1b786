// Package driver provides the graph-query port the team-assembly engine runs
// against, plus its Neo4j implementation. The engine only ever issues
// read-only traversal and aggregation queries, so the port is deliberately
// narrow: rows, single record, connectivity check, close.
package driver
