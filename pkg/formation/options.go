package formation

// Options carries the per-batch knobs for team assembly. Zero values are
// replaced by the documented defaults, so an empty Options is valid.
type Options struct {
	// MaxDistance bounds seed-filter traversals.
	MaxDistance int
	// InitialDistance is the radius at which member search starts.
	InitialDistance int
	// MaxIncrease is the radius ceiling of the widening search.
	MaxIncrease int
	// CohesionWeight and DistanceWeight blend the cohesion-optimized score.
	CohesionWeight float64
	DistanceWeight float64
	// TimeThreshold is the maximum years-passed a shared paper may have for
	// the temporal strategies.
	TimeThreshold int
	// NullYears selects the recency imputation policy.
	NullYears NullYearsOption
	// SortOrder controls citation-optimized ranking.
	SortOrder SortOrder
	// DisableOrgConnections turns off the organizational fallback the
	// temporal strategies run before widening. Off by default so the zero
	// Options keeps the fallback.
	DisableOrgConnections bool
	// ExcludedIDs seeds the batch exclusion set.
	ExcludedIDs []string
	// RandSeed seeds the random imputation policy. Zero means
	// time-seeded; tests that use NullYearsRandom must set it.
	RandSeed int64
	// MaxConcurrentScores bounds fanned-out scoring queries.
	MaxConcurrentScores int
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		MaxDistance:         3,
		InitialDistance:     2,
		MaxIncrease:         5,
		CohesionWeight:      0.7,
		DistanceWeight:      0.3,
		TimeThreshold:       5,
		NullYears:           NullYearsTooOld,
		SortOrder:           SortCitationFirst,
		MaxConcurrentScores: 10,
	}
}

// normalize fills unset fields with defaults.
func (o *Options) normalize() {
	d := DefaultOptions()
	if o.MaxDistance <= 0 {
		o.MaxDistance = d.MaxDistance
	}
	if o.InitialDistance <= 0 {
		o.InitialDistance = d.InitialDistance
	}
	if o.MaxIncrease <= 0 {
		o.MaxIncrease = d.MaxIncrease
	}
	if o.CohesionWeight == 0 && o.DistanceWeight == 0 {
		o.CohesionWeight = d.CohesionWeight
		o.DistanceWeight = d.DistanceWeight
	}
	if o.TimeThreshold <= 0 {
		o.TimeThreshold = d.TimeThreshold
	}
	if o.NullYears == 0 {
		o.NullYears = d.NullYears
	}
	if o.SortOrder == "" {
		o.SortOrder = d.SortOrder
	}
	if o.MaxConcurrentScores <= 0 {
		o.MaxConcurrentScores = d.MaxConcurrentScores
	}
}

// Request describes one assemble-teams invocation.
type Request struct {
	// Keywords is the ordered list of required skills. The first keyword
	// selects the seeds.
	Keywords []string
	// Algorithm selects the team formation strategy.
	Algorithm Algorithm
	// TeamCount is the number of disjoint teams requested.
	TeamCount int
	// Options holds the assembly knobs.
	Options Options
}
