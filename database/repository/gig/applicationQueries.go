// File: database/repository/gig/applicationQueries.go
package gigRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stagelink/models"
)

func (r *mongoGigRepo) CreateApplication(ctx context.Context, app *models.Application) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	app.Status = models.ApplicationStatusPending

	if _, err := r.appColl.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

func (r *mongoGigRepo) GetApplicationsByGig(ctx context.Context, gigID string) ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.appColl.Find(ctx, bson.M{"gigId": gigID})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for gig %s: %w", gigID, err)
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetActiveApplication returns the musician's pending or hired application on
// the gig, or nil when none exists. At most one can be active at a time.
func (r *mongoGigRepo) GetActiveApplication(ctx context.Context, gigID, musicianID string) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"gigId":      gigID,
		"musicianId": musicianID,
		"status":     bson.M{"$in": []string{models.ApplicationStatusPending, models.ApplicationStatusHired}},
	}
	var app models.Application
	err := r.appColl.FindOne(ctx, filter).Decode(&app)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active application: %w", err)
	}
	return &app, nil
}
