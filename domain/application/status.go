package application

import "github.com/hackpass/portal-api/internal/models"

// allowedTransitions is the fixed edge table for application review. Accepted
// and rejected are terminal, nothing ever moves back to pending, and no
// status may transition to itself.
var allowedTransitions = map[string][]string{
	models.StatusPending:    {models.StatusWaitlisted, models.StatusAccepted, models.StatusRejected},
	models.StatusWaitlisted: {models.StatusAccepted, models.StatusRejected},
	models.StatusAccepted:   {},
	models.StatusRejected:   {},
}

// CanTransition reports whether an application may move from current to
// requested. It is a pure decision: the caller performs the write.
func CanTransition(current, requested string) bool {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}
