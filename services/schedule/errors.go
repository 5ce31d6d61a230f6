package schedule

import "fmt"

// Error codes for schedule validation failures.
const (
	CodeInvalidDuration = "invalidDuration"
	CodeEmptyPattern    = "emptyPattern"
	CodeInvalidRange    = "invalidRange"
)

// ScheduleError carries a stable code so callers can surface the specific
// reason to the client.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidDurationError(msg string) error {
	return &ScheduleError{Code: CodeInvalidDuration, Message: msg}
}

func NewEmptyPatternError(msg string) error {
	return &ScheduleError{Code: CodeEmptyPattern, Message: msg}
}

func NewInvalidRangeError(msg string) error {
	return &ScheduleError{Code: CodeInvalidRange, Message: msg}
}
