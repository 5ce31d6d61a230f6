// File: database/repository/gig/interface.go
package gigRepo

import (
	"context"

	"stagelink/database"
	"stagelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GigRepository persists gigs and their applications. The hire and close
// commits are transactional: the core's atomicity boundary (selected hired,
// remaining pending rejected, gig status advanced) is honored by a single
// mongo session transaction.
type GigRepository interface {
	CreateGig(ctx context.Context, gig *models.Gig) error
	GetGigByID(ctx context.Context, gigID string) (*models.Gig, error)
	ListGigsByCompany(ctx context.Context, companyID string) ([]models.Gig, error)
	ListGigsByStatus(ctx context.Context, statuses []string) ([]models.Gig, error)

	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplicationsByGig(ctx context.Context, gigID string) ([]models.Application, error)
	GetActiveApplication(ctx context.Context, gigID, musicianID string) (*models.Application, error)
	MarkGigInReview(ctx context.Context, gigID string, version int) error

	// CommitHireDecision atomically marks the selected applications hired,
	// every other pending application rejected, and the gig hired. The gig
	// update is guarded by status and version so a concurrent hire observes
	// a no-match and fails without double-committing. Returns the IDs of
	// the applications that were rejected.
	CommitHireDecision(ctx context.Context, gigID string, gigVersion int, hiredIDs []string) ([]string, error)

	// CloseGigWithRejections atomically moves the gig to newStatus (closed
	// or cancelled) from one of fromStatuses and rejects all pending
	// applications. Returns the IDs of the rejected applications.
	CloseGigWithRejections(ctx context.Context, gigID, newStatus string, fromStatuses []string, gigVersion int) ([]string, error)
}

type mongoGigRepo struct {
	gigColl *mongo.Collection
	appColl *mongo.Collection
}

// NewMongoGigRepo constructs a new MongoDB GigRepository.
func NewMongoGigRepo() GigRepository {
	db := database.MongoClient.Database("stagelink")
	return &mongoGigRepo{
		gigColl: db.Collection("gigs"),
		appColl: db.Collection("applications"),
	}
}
