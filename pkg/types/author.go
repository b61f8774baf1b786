package types

// Author represents a researcher node in the collaboration graph.
//
// Graph schema:
//
//	(Author)-[WRITTEN]->(Paper)
//	(Author)-[WORKS_IN]->(Department|Organization)
//	(Organization)-[INCLUDES]->(Department)
type Author struct {
	ID     string   `json:"author_id"`
	Name   string   `json:"author_name"`
	Skills []string `json:"skills"`
}

// Paper represents a publication node. YearsPassed is nil when the store has
// no recency information for the paper; ranking strategies replace nil values
// through an explicit imputation policy before comparing.
type Paper struct {
	ID               string   `json:"paper_id"`
	Title            string   `json:"title"`
	CombinedKeywords []string `json:"combined_keywords"`
	CitationCount    int64    `json:"citation_count"`
	YearsPassed      *int64   `json:"years_passed,omitempty"`
}

// Organization represents an organization or department node. Departments may
// be included in a parent organization through INCLUDES edges.
type Organization struct {
	ID   string `json:"org_id"`
	Name string `json:"org_name"`
}

// AuthorSummary is the compact author record returned by name/skill search.
type AuthorSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Skills string `json:"skills"`
}
