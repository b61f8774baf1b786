// Package types defines the core data structures shared across teamgraph:
// graph-resident records (authors, papers, affiliations), the transient
// team-assembly values produced during one batch run, and the result views
// handed back to callers.
package types
