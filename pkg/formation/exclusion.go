package formation

import "sync"

// ExclusionSet tracks the authors already committed to a team within one
// batch. It grows monotonically: members are appended when a team finalizes
// and never removed until the batch ends. The orchestrator is the single
// writer; the mutex exists so candidate generation fanned out across
// goroutines can take consistent snapshots.
type ExclusionSet struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
}

// NewExclusionSet creates a set seeded with the caller-provided exclusions.
func NewExclusionSet(ids ...string) *ExclusionSet {
	s := &ExclusionSet{ids: make(map[string]struct{}, len(ids))}
	s.Add(ids...)
	return s
}

// Add appends ids to the set, ignoring duplicates.
func (s *ExclusionSet) Add(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

// Contains reports whether id is already excluded.
func (s *ExclusionSet) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns a snapshot in insertion order, safe to hand to a query as a
// parameter while the set keeps growing.
func (s *ExclusionSet) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the current number of excluded authors.
func (s *ExclusionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
