package types

// TeamStatus marks whether a team covered every requested keyword.
type TeamStatus string

const (
	TeamComplete   TeamStatus = "complete"
	TeamIncomplete TeamStatus = "incomplete"
)

// Completeness returns the scoring weight used by the statistics aggregator:
// 1.0 for a complete team, 0.7 for an incomplete one.
func (s TeamStatus) Completeness() float64 {
	if s == TeamComplete {
		return 1.0
	}
	return 0.7
}

// TeamCandidate is a transient ranking result produced by a seed filter or a
// member finder. It lives only long enough to be accepted or rejected.
type TeamCandidate struct {
	AuthorID string `json:"author_id"`
	Name     string `json:"author_name"`
	// Skills is the raw comma-separated skill string as stored on the node.
	Skills string `json:"skills"`
	// Degree is the structural connectivity score the producing filter
	// ranked by. For the cohesion strategy it carries the cohesion score.
	Degree int64 `json:"degree"`
	// Distance is the path length from the team at which the candidate was
	// found. Seeds have distance 0; traversal results are always >= 1.
	Distance int64 `json:"distance"`
	// Citations is the aggregate citation mass for keyword-matched papers.
	// Populated by the time-aware and citation-optimized strategies only.
	Citations int64 `json:"citation_count,omitempty"`
	// Recency is the effective minimum years-passed of the qualifying shared
	// paper, with nulls already imputed. Populated by temporal strategies.
	Recency int64 `json:"recency,omitempty"`
}

// Team is the raw product of one orchestration run: ordered member IDs, the
// keyword each member was added for, and the running intra-team distance sum.
// It becomes immutable once finalized.
type Team struct {
	Label             string            `json:"team"`
	MemberIDs         []string          `json:"member_ids"`
	AddedFor          map[string]string `json:"added_for"`
	IntraTeamDistance int64             `json:"intra_team_distance"`
	Status            TeamStatus        `json:"status"`
}

// TeamMember is one enriched member row inside a TeamView.
type TeamMember struct {
	AuthorID       string   `json:"author_id"`
	Name           string   `json:"author_name"`
	MatchedSkills  []string `json:"matched_skills"`
	Skills         string   `json:"skills"`
	AddedFor       string   `json:"added_for"`
	PaperCount     int64    `json:"paper_count"`
	Organizations  []string `json:"organizations"`
	TotalCitations int64    `json:"total_citations"`
}

// TeamView is the presentation form of one finalized team.
type TeamView struct {
	Number            int          `json:"team_number"`
	Name              string       `json:"team_name"`
	Members           []TeamMember `json:"members"`
	SkillsCovered     []string     `json:"skills_covered"`
	RequestedSkills   []string     `json:"requested_skills"`
	IntraTeamDistance int64        `json:"intra_team_distance"`
	Completeness      float64      `json:"completeness"`
	Algorithm         string       `json:"algorithm"`
	Status            TeamStatus   `json:"status"`
}

// Statistics is the post-hoc batch summary. Recomputed per batch, no state.
type Statistics struct {
	TotalTeams      int     `json:"total_teams"`
	TotalMembers    int     `json:"total_members"`
	KeywordCoverage float64 `json:"keyword_coverage"`
	AvgTeamSize     float64 `json:"avg_team_size"`
	AvgCompleteness float64 `json:"avg_completeness"`
}

// BatchResult is what one assemble-teams invocation returns.
type BatchResult struct {
	BatchID    string     `json:"batch_id"`
	Algorithm  string     `json:"algorithm"`
	Teams      []TeamView `json:"teams"`
	Message    string     `json:"message"`
	Statistics Statistics `json:"statistics"`
}
