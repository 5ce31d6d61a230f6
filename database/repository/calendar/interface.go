// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"

	"stagelink/database"
	"stagelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CalendarRepository persists a musician's committed intervals: confirmed
// events and availability slots.
type CalendarRepository interface {
	Create(ctx context.Context, interval models.CommittedInterval) (string, error)
	GetByMusicianAndDates(ctx context.Context, musicianID string, dates []string) ([]models.CommittedInterval, error)
	GetByMusicianAndRange(ctx context.Context, musicianID, from, to string) ([]models.CommittedInterval, error)
	CancelByID(ctx context.Context, musicianID, intervalID string) error
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new MongoDB CalendarRepository.
func NewMongoCalendarRepo() CalendarRepository {
	db := database.MongoClient.Database("stagelink")
	coll := db.Collection("calendar")
	EnsureCalendarIndexes(coll)
	return &mongoCalendarRepo{
		coll: coll,
	}
}
