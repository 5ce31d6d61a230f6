// File: database/repository/gig/gigMongoCrud.go
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

func (r *mongoGigRepo) CreateGig(ctx context.Context, gig *models.Gig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if gig.ID == "" {
		gig.ID = uuid.New().String()
	}
	now := time.Now()
	gig.CreatedAt = now
	gig.UpdatedAt = now
	gig.Status = models.GigStatusOpen
	gig.Version = 1

	if _, err := r.gigColl.InsertOne(ctx, gig); err != nil {
		return fmt.Errorf("failed to insert gig: %w", err)
	}
	return nil
}

func (r *mongoGigRepo) GetGigByID(ctx context.Context, gigID string) (*models.Gig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var gig models.Gig
	if err := r.gigColl.FindOne(ctx, bson.M{"id": gigID}).Decode(&gig); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("gig %s not found", gigID)
		}
		return nil, fmt.Errorf("failed to fetch gig %s: %w", gigID, err)
	}
	return &gig, nil
}

func (r *mongoGigRepo) ListGigsByCompany(ctx context.Context, companyID string) ([]models.Gig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.gigColl.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs for company %s: %w", companyID, err)
	}
	defer cursor.Close(ctx)

	var gigs []models.Gig
	if err := cursor.All(ctx, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *mongoGigRepo) ListGigsByStatus(ctx context.Context, statuses []string) ([]models.Gig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.gigColl.Find(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs by status: %w", err)
	}
	defer cursor.Close(ctx)

	var gigs []models.Gig
	if err := cursor.All(ctx, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *mongoGigRepo) MarkGigInReview(ctx context.Context, gigID string, version int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": gigID, "status": models.GigStatusOpen, "version": version}
	update := bson.M{
		"$set": bson.M{"status": models.GigStatusInReview, "updatedAt": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	// A no-match is fine: another application already moved the gig along.
	if _, err := r.gigColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark gig %s in review: %w", gigID, err)
	}
	return nil
}
