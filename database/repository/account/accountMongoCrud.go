// File: database/repository/account/accountMongoCrud.go
package accountRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stagelink/models"
)

func (r *mongoAccountRepo) Create(ctx context.Context, acct *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if acct.ID == "" {
		acct.ID = uuid.New().String()
	}
	acct.CreatedAt = time.Now()

	count, err := r.coll.CountDocuments(ctx, bson.M{"email": acct.Email})
	if err != nil {
		return fmt.Errorf("failed to check for existing account: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("an account with email %s already exists", acct.Email)
	}

	if _, err := r.coll.InsertOne(ctx, acct); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *mongoAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("account not found")
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &acct, nil
}

func (r *mongoAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("account not found")
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &acct, nil
}
