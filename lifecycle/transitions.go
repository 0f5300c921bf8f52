// Package lifecycle governs application status changes.
//
// Valid status graph:
//
//	applied ──► reviewing ──► hired
//	    │            │
//	    ├────────────┴──► rejected
//	    └──► hired
//
// hired and rejected are terminal states. Re-applying the current status is
// a no-op success, not an error.
package lifecycle

import (
	"fmt"

	"github.com/hirematch/backend/models"
)

// validTransitions lists every allowed (from → to) pair. Self-transitions
// are handled separately as no-ops.
var validTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusApplied:   {models.StatusReviewing, models.StatusRejected, models.StatusHired},
	models.StatusReviewing: {models.StatusRejected, models.StatusHired},
	// hired and rejected are terminal — no outgoing transitions
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s models.ApplicationStatus) bool {
	return s == models.StatusHired || s == models.StatusRejected
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine. A transition into the current status is always allowed (it
// is applied as a no-op).
func IsTransitionAllowed(from, to models.ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError names the current and requested states of an
// illegal lifecycle transition.
type InvalidTransitionError struct {
	From models.ApplicationStatus
	To   models.ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed", e.From, e.To)
}
