package formation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// SplitSkills breaks a raw skill string into trimmed labels. Stored values
// mix comma and semicolon separators.
func SplitSkills(skills string) []string {
	fields := strings.FieldsFunc(skills, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// MatchingSkills returns the author's skill labels that contain any of the
// requested keywords, matched case-insensitively by substring. The labels
// themselves come back, not the keywords: the keyword "optimization" reports
// a stored "convex optimization" label.
func MatchingSkills(skills string, keywords []string) []string {
	var matched []string
	seen := make(map[string]struct{})
	for _, label := range SplitSkills(skills) {
		if _, ok := seen[label]; ok {
			continue
		}
		lower := strings.ToLower(label)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, label)
				seen[label] = struct{}{}
				break
			}
		}
	}
	return matched
}

// enrichTeams resolves the member IDs of each team into full member rows
// with a single batched lookup per team. A failed lookup degrades to
// placeholder rows so the batch keeps its shape.
func (e *Engine) enrichTeams(ctx context.Context, logger *slog.Logger, req Request, teams []types.Team) []types.TeamView {
	views := make([]types.TeamView, 0, len(teams))
	for i, team := range teams {
		details, err := e.memberDetails(ctx, team.MemberIDs)
		if err != nil {
			logger.Warn("member enrichment failed, using placeholder rows",
				"team", i+1, "error", err)
			details = nil
		}

		members := make([]types.TeamMember, 0, len(team.MemberIDs))
		covered := make(map[string]struct{})
		for _, id := range team.MemberIDs {
			m, ok := details[id]
			if !ok {
				m = types.TeamMember{AuthorID: id, Name: "Unknown (" + id + ")"}
			}
			m.AddedFor = team.AddedFor[id]
			m.MatchedSkills = MatchingSkills(m.Skills, req.Keywords)
			for _, s := range m.MatchedSkills {
				covered[s] = struct{}{}
			}
			members = append(members, m)
		}

		views = append(views, types.TeamView{
			Number:            i + 1,
			Name:              fmt.Sprintf("Team %d", i+1),
			Members:           members,
			SkillsCovered:     sortedKeys(covered),
			RequestedSkills:   req.Keywords,
			IntraTeamDistance: team.IntraTeamDistance,
			Completeness:      team.Status.Completeness(),
			Algorithm:         string(req.Algorithm),
			Status:            team.Status,
		})
	}
	return views
}

// memberDetails fetches enrichment rows for a set of authors, keyed by ID.
func (e *Engine) memberDetails(ctx context.Context, authorIDs []string) (map[string]types.TeamMember, error) {
	rows, err := e.q.ReadRows(ctx, queryMemberDetails, map[string]any{"author_ids": authorIDs})
	if err != nil {
		return nil, err
	}
	details := make(map[string]types.TeamMember, len(rows))
	for _, row := range rows {
		m := types.TeamMember{
			AuthorID:       driver.AsString(row["author_id"], ""),
			Name:           driver.AsString(row["author_name"], ""),
			Skills:         driver.AsString(row["skills"], ""),
			PaperCount:     driver.AsInt64(row["paper_count"], 0),
			Organizations:  driver.AsStringSlice(row["organizations"]),
			TotalCitations: driver.AsInt64(row["total_citations"], 0),
		}
		details[m.AuthorID] = m
	}
	return details, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
