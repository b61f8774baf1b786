package formation

import (
	"math"

	"github.com/scholargraph/teamgraph/pkg/types"
)

// Aggregate computes the batch summary from finalized team views. Keyword
// coverage is the mean completeness weight expressed as a percentage, so a
// batch of complete teams reports 100 and every incomplete team pulls it
// toward 70.
func Aggregate(teams []types.TeamView) types.Statistics {
	if len(teams) == 0 {
		return types.Statistics{}
	}

	var members int
	var completenessSum float64
	for _, t := range teams {
		members += len(t.Members)
		completenessSum += t.Completeness
	}

	n := float64(len(teams))
	return types.Statistics{
		TotalTeams:      len(teams),
		TotalMembers:    members,
		KeywordCoverage: round(completenessSum/n*100, 1),
		AvgTeamSize:     round(float64(members)/n, 2),
		AvgCompleteness: round(completenessSum/n, 2),
	}
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
