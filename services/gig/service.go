package gig

import (
	"context"
	"fmt"

	"stagelink/models"
	"stagelink/utils"

	"go.uber.org/zap"
)

func (s *DefaultGigService) EvaluateHire(ctx context.Context, gigID string, selectedIDs []string) (*models.HireResult, error) {
	logger := utils.GetLogger()

	g, err := s.Repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	apps, err := s.Repo.GetApplicationsByGig(ctx, gigID)
	if err != nil {
		return nil, err
	}

	decision, err := EvaluateHireDecision(*g, apps, selectedIDs)
	if err != nil {
		return nil, err
	}

	// Single transactional commit: selected hired, remaining pending
	// rejected, gig hired. A concurrent hire that won the race leaves the
	// guarded update with no match and this attempt fails cleanly.
	rejectedIDs, err := s.Repo.CommitHireDecision(ctx, gigID, g.Version, decision.Hired)
	if err != nil {
		return nil, NewInvalidSelectionError(fmt.Sprintf("hire could not be committed: %v", err))
	}

	logger.Info("hire committed",
		zap.String("gigID", gigID),
		zap.Int("hired", len(decision.Hired)),
		zap.Int("rejected", len(rejectedIDs)))

	s.queueHireNotices(ctx, *g, apps, decision.Hired, rejectedIDs)

	return &models.HireResult{
		GigID:       gigID,
		HiredIDs:    decision.Hired,
		RejectedIDs: rejectedIDs,
		TotalFees:   decision.TotalFees,
	}, nil
}

func (s *DefaultGigService) queueHireNotices(
	ctx context.Context,
	g models.Gig,
	apps []models.Application,
	hiredIDs, rejectedIDs []string,
) {
	if s.Notifier == nil {
		return
	}

	musicianByApp := make(map[string]string, len(apps))
	for _, app := range apps {
		musicianByApp[app.ID] = app.MusicianID
	}

	for _, id := range hiredIDs {
		s.queueNotice(ctx, models.NoticePayload{
			ID:     musicianByApp[id],
			GigID:  g.ID,
			Title:  "You're hired!",
			Body:   fmt.Sprintf("You have been hired for %q.", g.Title),
			Target: "musician",
		})
	}
	for _, id := range rejectedIDs {
		s.queueNotice(ctx, models.NoticePayload{
			ID:     musicianByApp[id],
			GigID:  g.ID,
			Title:  "Application update",
			Body:   fmt.Sprintf("The position for %q has been filled.", g.Title),
			Target: "musician",
		})
	}
}

func (s *DefaultGigService) queueRejectionNotices(ctx context.Context, g *models.Gig, rejectedIDs []string) {
	if s.Notifier == nil || len(rejectedIDs) == 0 {
		return
	}

	apps, err := s.Repo.GetApplicationsByGig(ctx, g.ID)
	if err != nil {
		utils.GetLogger().Warn("failed to load applications for notices",
			zap.String("gigID", g.ID), zap.Error(err))
		return
	}
	musicianByApp := make(map[string]string, len(apps))
	for _, app := range apps {
		musicianByApp[app.ID] = app.MusicianID
	}

	for _, id := range rejectedIDs {
		s.queueNotice(ctx, models.NoticePayload{
			ID:     musicianByApp[id],
			GigID:  g.ID,
			Title:  "Gig closed",
			Body:   fmt.Sprintf("The gig %q is no longer available.", g.Title),
			Target: "musician",
		})
	}
}

func (s *DefaultGigService) queueNotice(ctx context.Context, payload models.NoticePayload) {
	if payload.ID == "" {
		return
	}
	if err := s.Notifier.QueueNotice(ctx, payload); err != nil {
		utils.GetLogger().Warn("failed to queue notice",
			zap.String("gigID", payload.GigID), zap.Error(err))
	}
}
