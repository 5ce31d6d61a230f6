package schedule

import (
	"context"
	"fmt"

	"stagelink/models"
	"stagelink/utils"

	"go.uber.org/zap"
)

func (s *DefaultScheduleService) CheckConflicts(
	ctx context.Context,
	musicianID, date string,
	start, end int,
	excludeID string,
) (models.ConflictResult, error) {
	if _, _, err := NormalizeInterval(start, end); err != nil {
		return models.ConflictResult{}, err
	}

	// Buffered spans can spill past midnight, so the committed universe
	// spans the candidate date plus both adjacent dates.
	dates, err := AdjacentDates(date)
	if err != nil {
		return models.ConflictResult{}, err
	}

	committed, err := s.CalendarRepo.GetByMusicianAndDates(ctx, musicianID, dates)
	if err != nil {
		return models.ConflictResult{}, fmt.Errorf("failed to load committed intervals: %w", err)
	}

	return DetectConflicts(date, start, end, committed, excludeID, s.buffer())
}

func (s *DefaultScheduleService) CreateEvent(
	ctx context.Context,
	interval models.CommittedInterval,
) (*models.CommittedInterval, models.ConflictResult, error) {
	logger := utils.GetLogger()

	if _, _, err := NormalizeInterval(interval.Start, interval.End); err != nil {
		return nil, models.ConflictResult{}, err
	}
	if interval.Kind == "" {
		interval.Kind = models.IntervalKindEvent
	}

	// Conflicts are reported as a warning; whether they block saving is the
	// caller's policy, not the core's.
	conflicts, err := s.CheckConflicts(ctx, interval.MusicianID, interval.Date, interval.Start, interval.End, interval.ID)
	if err != nil {
		return nil, models.ConflictResult{}, err
	}
	if conflicts.HasConflicts {
		logger.Warn("creating event over conflicting intervals",
			zap.String("musicianID", interval.MusicianID),
			zap.String("date", interval.Date),
			zap.String("interval", utils.FormatIntervalLabel(interval.Start, interval.End)),
			zap.Int("conflicts", len(conflicts.Conflicts)))
	}

	id, err := s.CalendarRepo.Create(ctx, interval)
	if err != nil {
		return nil, conflicts, fmt.Errorf("failed to create event: %w", err)
	}
	interval.ID = id
	return &interval, conflicts, nil
}

func (s *DefaultScheduleService) CancelInterval(ctx context.Context, musicianID, intervalID string) error {
	if err := s.CalendarRepo.CancelByID(ctx, musicianID, intervalID); err != nil {
		return fmt.Errorf("failed to cancel interval %s: %w", intervalID, err)
	}
	return nil
}

func (s *DefaultScheduleService) ListCalendar(ctx context.Context, musicianID, from, to string) ([]models.CommittedInterval, error) {
	intervals, err := s.CalendarRepo.GetByMusicianAndRange(ctx, musicianID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar: %w", err)
	}
	return intervals, nil
}
