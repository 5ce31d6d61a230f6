package gig

import (
	"context"

	"stagelink/config"
	gigRepo "stagelink/database/repository/gig"
	"stagelink/models"
	"stagelink/services/notification"
)

// Gig list views.
const (
	ViewActive  = "active"
	ViewHistory = "history"
	ViewAll     = "all"
)

// GigService exposes the gig life cycle and hiring arbitration to the API
// layer.
type GigService interface {
	CreateGig(ctx context.Context, g models.Gig) (*models.Gig, error)
	GetGig(ctx context.Context, gigID string) (*models.Gig, []models.Application, error)
	ApplyToGig(ctx context.Context, gigID, musicianID string, fee *float64, message string) (*models.Application, error)
	// EvaluateHire validates and atomically commits a hire decision for one
	// or more candidates; on failure nothing is mutated.
	EvaluateHire(ctx context.Context, gigID string, selectedIDs []string) (*models.HireResult, error)
	// CloseGig moves the gig to closed or cancelled, rejecting every pending
	// application in the same commit.
	CloseGig(ctx context.Context, gigID, newStatus string) error
	// ListGigs partitions a company's gigs into active, bounded recent
	// history, or everything.
	ListGigs(ctx context.Context, companyID, view string) ([]models.Gig, error)
	// BrowseOpenGigs lists the gigs currently accepting applications.
	BrowseOpenGigs(ctx context.Context) ([]models.Gig, error)
}

// DefaultGigService is the production implementation.
type DefaultGigService struct {
	Repo     gigRepo.GigRepository
	Notifier notification.NoticeService
	// WindowDays overrides the configured history window when positive.
	WindowDays int
}

func (s *DefaultGigService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return config.HistoryWindowDays()
}
