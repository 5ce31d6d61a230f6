package gig

import "stagelink/models"

// gigTransitions is the life-cycle state machine for a gig posting. A hired
// gig may still be closed later; closed and cancelled are final.
var gigTransitions = map[string][]string{
	models.GigStatusOpen: {
		models.GigStatusInReview,
		models.GigStatusHired,
		models.GigStatusClosed,
		models.GigStatusCancelled,
	},
	models.GigStatusInReview: {
		models.GigStatusHired,
		models.GigStatusClosed,
		models.GigStatusCancelled,
	},
	models.GigStatusHired: {
		models.GigStatusClosed,
	},
	models.GigStatusClosed:    {},
	models.GigStatusCancelled: {},
}

// applicationTransitions: pending is the only non-terminal state.
var applicationTransitions = map[string][]string{
	models.ApplicationStatusPending: {
		models.ApplicationStatusHired,
		models.ApplicationStatusRejected,
	},
	models.ApplicationStatusHired:    {},
	models.ApplicationStatusRejected: {},
}

// CanTransitionGig reports whether a gig may move from one status to another.
func CanTransitionGig(from, to string) bool {
	for _, allowed := range gigTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanTransitionApplication reports whether an application may move from one
// status to another.
func CanTransitionApplication(from, to string) bool {
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateGigTransition returns an InvalidTransition error when the move is
// not permitted by the state machine.
func ValidateGigTransition(from, to string) error {
	if !CanTransitionGig(from, to) {
		return NewInvalidTransitionError(from, to)
	}
	return nil
}

// AcceptsApplications reports whether a new application may be created for a
// gig in the given status.
func AcceptsApplications(status string) bool {
	return status == models.GigStatusOpen || status == models.GigStatusInReview
}
