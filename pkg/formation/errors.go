package formation

import (
	"errors"
	"fmt"
)

// Error taxonomy. Only validation errors abort a batch; a failed or timed-out
// graph query is recovered locally as "no candidate" so the widening loop can
// keep going, and an empty seed-candidate list is a reportable zero-team
// outcome rather than an error.

// ErrNoCandidates marks a batch that found no seed authors for the first
// keyword. It is carried in the BatchResult message, never returned as a
// batch failure.
var ErrNoCandidates = errors.New("no seed candidates found for the first keyword")

// ValidationError reports an invalid request: an unknown algorithm
// identifier, empty keywords, or a non-positive team count. Raised before any
// query is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
