package schedule

import (
	"context"

	"stagelink/models"
	"stagelink/utils"

	"go.uber.org/zap"
)

// BulkCreateAvailability expands the recurrence rule and submits one
// availability slot per date independently. A date that collides with an
// existing record counts as a failure without aborting the rest; the caller
// gets both counts.
func (s *DefaultScheduleService) BulkCreateAvailability(
	ctx context.Context,
	musicianID string,
	rule models.RecurrenceRule,
	start, end int,
	today string,
) (models.BulkCreateResult, error) {
	logger := utils.GetLogger()

	if _, _, err := NormalizeInterval(start, end); err != nil {
		return models.BulkCreateResult{}, err
	}

	dates, err := ExpandRecurrence(rule.Weekdays, rule.RangeStart, rule.RangeEnd, today)
	if err != nil {
		return models.BulkCreateResult{}, err
	}

	var result models.BulkCreateResult
	for _, date := range dates {
		slot := models.CommittedInterval{
			MusicianID: musicianID,
			Date:       date,
			Start:      start,
			End:        end,
			Kind:       models.IntervalKindAvailability,
		}
		if _, err := s.CalendarRepo.Create(ctx, slot); err != nil {
			logger.Warn("bulk availability: date failed",
				zap.String("musicianID", musicianID),
				zap.String("date", date),
				zap.Error(err))
			result.Failed++
			result.FailedDates = append(result.FailedDates, date)
			continue
		}
		result.Created++
	}

	logger.Info("bulk availability creation finished",
		zap.String("musicianID", musicianID),
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed))
	return result, nil
}
