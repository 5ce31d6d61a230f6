package gig

import "fmt"

// Error codes for hiring arbitration and life-cycle failures. Handlers map
// these onto HTTP responses so the caller can correct and retry.
const (
	CodeScheduleRequired  = "scheduleRequired"
	CodeInvalidSelection  = "invalidSelection"
	CodeFeeRequired       = "feeRequired"
	CodeBudgetExceeded    = "budgetExceeded"
	CodeInvalidTransition = "invalidTransition"
)

// GigError carries a stable code plus, for per-candidate failures, the
// offending application ID.
type GigError struct {
	Code          string
	Message       string
	ApplicationID string
}

func (e *GigError) Error() string {
	if e.ApplicationID != "" {
		return fmt.Sprintf("%s: %s (application %s)", e.Code, e.Message, e.ApplicationID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewScheduleRequiredError(msg string) error {
	return &GigError{Code: CodeScheduleRequired, Message: msg}
}

func NewInvalidSelectionError(msg string) error {
	return &GigError{Code: CodeInvalidSelection, Message: msg}
}

func NewFeeRequiredError(applicationID string) error {
	return &GigError{
		Code:          CodeFeeRequired,
		Message:       "selected application declares no fee but the gig has a budget",
		ApplicationID: applicationID,
	}
}

func NewBudgetExceededError(total, budget float64) error {
	return &GigError{
		Code:    CodeBudgetExceeded,
		Message: fmt.Sprintf("selected fees total %.2f which exceeds the budget %.2f", total, budget),
	}
}

func NewInvalidTransitionError(from, to string) error {
	return &GigError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("gig cannot transition from %s to %s", from, to),
	}
}
