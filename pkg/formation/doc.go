// Package formation implements the team-assembly search engine: seed
// candidate filters, the seven member-finding ranking strategies, the
// widening-search orchestrator that drives them, cross-team exclusion, and
// batch statistics.
//
// The engine is read-only against the graph store and consumes only the
// narrow driver.Querier port, so every component here is testable against an
// in-memory mock. One batch run is logically sequential: each team must
// observe the exclusion state left behind by the previous one. Individual
// candidate-scoring queries inside a single decision may fan out concurrently
// under a bounded executor.
package formation
