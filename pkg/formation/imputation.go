package formation

import "math/rand"

// NullYearsOption selects how unknown paper recency is imputed before
// ranking. The choice is deliberate policy, not a bug fix: the store
// conflates "unknown" and "very old", and each option resolves that
// differently.
type NullYearsOption int

const (
	// NullYearsTooOld treats unknown recency as just outside the threshold.
	NullYearsTooOld NullYearsOption = 1
	// NullYearsBorderline treats unknown recency as just inside the threshold.
	NullYearsBorderline NullYearsOption = 2
	// NullYearsRandom draws a uniform value in [0, 30]. Inherently
	// non-deterministic; callers that need reproducibility must seed the
	// batch explicitly.
	NullYearsRandom NullYearsOption = 3
)

// Replacement returns the effective years-passed value substituted for a
// missing recency attribute. rng is consulted only for NullYearsRandom and
// must not be nil in that case. Unrecognized options fall back to the
// too-old policy.
func (o NullYearsOption) Replacement(timeThreshold int, rng *rand.Rand) int {
	switch o {
	case NullYearsTooOld:
		return timeThreshold + 1
	case NullYearsBorderline:
		if timeThreshold < 1 {
			return 0
		}
		return timeThreshold - 1
	case NullYearsRandom:
		return rng.Intn(31)
	default:
		return timeThreshold + 1
	}
}

// SortOrder controls the ranking priority of the citation-optimized finder.
type SortOrder string

const (
	SortCitationFirst    SortOrder = "citation_first"
	SortRecencyFirst     SortOrder = "recency_first"
	SortDistanceCitation SortOrder = "distance_citation"
	SortDefault          SortOrder = "default"
)

// orderClause maps the sort order onto the finder's ORDER BY. Unknown values
// get the default ordering, mirroring the lenient handling of this knob.
func (s SortOrder) orderClause() string {
	switch s {
	case SortRecencyFirst:
		return "ORDER BY min_years_passed, citation_count DESC"
	case SortCitationFirst:
		return "ORDER BY citation_count DESC, min_years_passed"
	case SortDistanceCitation:
		return "ORDER BY min_distance, citation_count DESC, min_years_passed"
	default:
		return "ORDER BY min_distance, min_years_passed, citation_count DESC"
	}
}
