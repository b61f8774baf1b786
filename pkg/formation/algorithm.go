package formation

import "strings"

// Algorithm identifies one of the seven team formation strategies. The set is
// closed: dispatch happens through an exhaustive switch, so an identifier
// outside this enum can never reach a query.
type Algorithm string

const (
	// ACET considers all connection types equally.
	ACET Algorithm = "ACET"
	// CAT builds teams using co-authorship relations only.
	CAT Algorithm = "CAT"
	// OAT builds teams using organizational affiliation relations only.
	OAT Algorithm = "OAT"
	// PRT prioritizes co-authorship over organizational relations.
	PRT Algorithm = "PRT"
	// COT maximizes cohesion between the candidate and the current team.
	COT Algorithm = "COT"
	// TAT prioritizes recent collaborations.
	TAT Algorithm = "TAT"
	// CIT optimizes for citation impact and collaboration recency.
	CIT Algorithm = "CIT"
)

// AlgorithmInfo describes one algorithm for catalogue listings.
type AlgorithmInfo struct {
	Code        Algorithm `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// algorithmOrder fixes catalogue and iteration order.
var algorithmOrder = []Algorithm{ACET, CAT, OAT, PRT, COT, TAT, CIT}

var algorithmCatalog = map[Algorithm]AlgorithmInfo{
	ACET: {ACET, "All-Connections-Equal Team Formation", "Considers all types of connections equally"},
	CAT:  {CAT, "Co-Authorship Team Formation", "Builds teams only using co-authorship relations"},
	OAT:  {OAT, "Organizational Affiliation Team Formation", "Builds teams only using co-working relations"},
	PRT:  {PRT, "Prioritized Relationship Team Formation", "Prioritizes co-authorship relations over organizational relations"},
	COT:  {COT, "Cohesion-Optimized Team Formation", "Maximizes team cohesion by selecting members with most connections to existing team"},
	TAT:  {TAT, "Time-Aware Team Formation", "Considers recency of collaborations in team formation"},
	CIT:  {CIT, "Citation-Optimized Team Formation", "Optimizes team formation based on citation impact and collaboration strength"},
}

// Algorithms returns the catalogue in stable order.
func Algorithms() []AlgorithmInfo {
	infos := make([]AlgorithmInfo, 0, len(algorithmOrder))
	for _, code := range algorithmOrder {
		infos = append(infos, algorithmCatalog[code])
	}
	return infos
}

// ParseAlgorithm validates an identifier against the closed set. The engine
// only accepts valid identifiers; a lenient caller that wants a fallback must
// apply it itself before calling in.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := algorithmCatalog[alg]; !ok {
		return "", &ValidationError{Field: "algorithm", Reason: "unknown algorithm identifier " + strings.TrimSpace(s)}
	}
	return alg, nil
}

// Info returns the catalogue entry for a.
func (a Algorithm) Info() AlgorithmInfo {
	return algorithmCatalog[a]
}

// Valid reports whether a is part of the closed algorithm set.
func (a Algorithm) Valid() bool {
	_, ok := algorithmCatalog[a]
	return ok
}
