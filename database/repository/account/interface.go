// File: database/repository/account/interface.go
package accountRepo

import (
	"context"

	"stagelink/database"
	"stagelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository persists musician and company accounts.
type AccountRepository interface {
	Create(ctx context.Context, acct *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

type mongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo constructs a new MongoDB AccountRepository.
func NewMongoAccountRepo() AccountRepository {
	db := database.MongoClient.Database("stagelink")
	return &mongoAccountRepo{
		coll: db.Collection("accounts"),
	}
}
