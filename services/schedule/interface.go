package schedule

import (
	"context"

	"stagelink/config"
	calendarRepo "stagelink/database/repository/calendar"
	"stagelink/models"
)

// ScheduleService exposes the scheduling decision core to the API layer.
type ScheduleService interface {
	// CheckConflicts runs a buffered conflict query for a candidate interval
	// against the musician's committed calendar. It is a pure query.
	CheckConflicts(ctx context.Context, musicianID, date string, start, end int, excludeID string) (models.ConflictResult, error)
	// CreateEvent confirms a committed event, returning any conflicts found
	// as a warning alongside the saved record. Conflicts do not block saving.
	CreateEvent(ctx context.Context, interval models.CommittedInterval) (*models.CommittedInterval, models.ConflictResult, error)
	// CancelInterval removes a committed interval from the conflict universe.
	CancelInterval(ctx context.Context, musicianID, intervalID string) error
	// BulkCreateAvailability expands a weekly pattern and creates one
	// availability slot per date, tolerating per-date failures.
	BulkCreateAvailability(ctx context.Context, musicianID string, rule models.RecurrenceRule, start, end int, today string) (models.BulkCreateResult, error)
	// ListCalendar returns the musician's committed intervals in a date range.
	ListCalendar(ctx context.Context, musicianID, from, to string) ([]models.CommittedInterval, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	CalendarRepo calendarRepo.CalendarRepository
	// BufferMinutes overrides the configured conflict buffer when positive.
	BufferMinutes int
}

func (s *DefaultScheduleService) buffer() int {
	if s.BufferMinutes > 0 {
		return s.BufferMinutes
	}
	return config.BufferMinutes()
}
