// File: database/repository/calendar/crud.go
package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stagelink/models"
)

func (r *mongoCalendarRepo) Create(ctx context.Context, interval models.CommittedInterval) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if interval.ID == "" {
		interval.ID = uuid.New().String()
	}

	// Reject an exact duplicate slot for the same musician and date. Bulk
	// availability creation relies on this to count a collided date as a
	// per-date failure instead of failing the whole batch.
	dupFilter := bson.M{
		"musicianId": interval.MusicianID,
		"date":       interval.Date,
		"start":      interval.Start,
		"end":        interval.End,
		"kind":       interval.Kind,
		"cancelled":  false,
	}
	count, err := r.coll.CountDocuments(ctx, dupFilter)
	if err != nil {
		return "", fmt.Errorf("failed to check for duplicate interval: %w", err)
	}
	if count > 0 {
		return "", fmt.Errorf("interval already exists for %s on %s", interval.MusicianID, interval.Date)
	}

	if _, err := r.coll.InsertOne(ctx, interval); err != nil {
		return "", fmt.Errorf("failed to insert committed interval: %w", err)
	}
	return interval.ID, nil
}

func (r *mongoCalendarRepo) GetByMusicianAndDates(ctx context.Context, musicianID string, dates []string) ([]models.CommittedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"musicianId": musicianID,
		"date":       bson.M{"$in": dates},
		"cancelled":  false,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query committed intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.CommittedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *mongoCalendarRepo) GetByMusicianAndRange(ctx context.Context, musicianID, from, to string) ([]models.CommittedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"musicianId": musicianID,
		"date":       bson.M{"$gte": from, "$lte": to},
		"cancelled":  false,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query committed intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.CommittedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *mongoCalendarRepo) CancelByID(ctx context.Context, musicianID, intervalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": intervalID, "musicianId": musicianID}
	update := bson.M{"$set": bson.M{"cancelled": true}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel interval: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
