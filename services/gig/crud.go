package gig

import (
	"context"
	"fmt"
	"time"

	"stagelink/models"
	"stagelink/services/schedule"
	"stagelink/utils"

	"go.uber.org/zap"
)

func (s *DefaultGigService) CreateGig(ctx context.Context, g models.Gig) (*models.Gig, error) {
	if g.CompanyID == "" || g.Title == "" {
		return nil, fmt.Errorf("gig requires a company and a title")
	}

	// A partially specified schedule is an error; a fully absent one is fine.
	hasAny := g.EventDate != "" || g.StartMinute != nil || g.EndMinute != nil
	if hasAny && !g.HasSchedule() {
		return nil, fmt.Errorf("gig schedule requires date, start and end together")
	}
	if g.HasSchedule() {
		if _, err := time.Parse(utils.DateLayout, g.EventDate); err != nil {
			return nil, schedule.NewInvalidRangeError(fmt.Sprintf("invalid event date %q", g.EventDate))
		}
		if _, _, err := schedule.NormalizeInterval(*g.StartMinute, *g.EndMinute); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.CreateGig(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *DefaultGigService) GetGig(ctx context.Context, gigID string) (*models.Gig, []models.Application, error) {
	g, err := s.Repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, nil, err
	}
	apps, err := s.Repo.GetApplicationsByGig(ctx, gigID)
	if err != nil {
		return nil, nil, err
	}
	return g, apps, nil
}

func (s *DefaultGigService) ApplyToGig(
	ctx context.Context,
	gigID, musicianID string,
	fee *float64,
	message string,
) (*models.Application, error) {
	g, err := s.Repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if !AcceptsApplications(g.Status) {
		return nil, NewInvalidSelectionError(
			fmt.Sprintf("gig is %s and no longer accepts applications", g.Status))
	}

	existing, err := s.Repo.GetActiveApplication(ctx, gigID, musicianID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewInvalidSelectionError("musician already has an active application on this gig")
	}

	app := models.Application{
		GigID:      gigID,
		MusicianID: musicianID,
		Fee:        fee,
		Message:    message,
	}
	if err := s.Repo.CreateApplication(ctx, &app); err != nil {
		return nil, err
	}

	// First application moves an open gig into review. Losing the race to
	// another applicant is harmless.
	if g.Status == models.GigStatusOpen {
		if err := s.Repo.MarkGigInReview(ctx, gigID, g.Version); err != nil {
			utils.GetLogger().Warn("failed to mark gig in review",
				zap.String("gigID", gigID), zap.Error(err))
		}
	}
	return &app, nil
}

func (s *DefaultGigService) CloseGig(ctx context.Context, gigID, newStatus string) error {
	logger := utils.GetLogger()

	if newStatus != models.GigStatusClosed && newStatus != models.GigStatusCancelled {
		return NewInvalidTransitionError("?", newStatus)
	}

	g, err := s.Repo.GetGigByID(ctx, gigID)
	if err != nil {
		return err
	}
	if err := ValidateGigTransition(g.Status, newStatus); err != nil {
		return err
	}

	rejectedIDs, err := s.Repo.CloseGigWithRejections(ctx, gigID, newStatus, []string{g.Status}, g.Version)
	if err != nil {
		return err
	}

	logger.Info("gig closed",
		zap.String("gigID", gigID),
		zap.String("status", newStatus),
		zap.Int("rejected", len(rejectedIDs)))

	s.queueRejectionNotices(ctx, g, rejectedIDs)
	return nil
}

func (s *DefaultGigService) BrowseOpenGigs(ctx context.Context) ([]models.Gig, error) {
	gigs, err := s.Repo.ListGigsByStatus(ctx, []string{models.GigStatusOpen, models.GigStatusInReview})
	if err != nil {
		return nil, fmt.Errorf("failed to browse open gigs: %w", err)
	}
	return gigs, nil
}

func (s *DefaultGigService) ListGigs(ctx context.Context, companyID, view string) ([]models.Gig, error) {
	gigs, err := s.Repo.ListGigsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	window := s.windowDays()

	var out []models.Gig
	for _, g := range gigs {
		switch view {
		case ViewActive:
			if !g.IsTerminal() || g.Status == models.GigStatusHired {
				out = append(out, g)
			}
		case ViewHistory:
			if IsInHistoryWindow(g, now, window) {
				out = append(out, g)
			}
		default: // ViewAll
			out = append(out, g)
		}
	}
	return out, nil
}
