// File: database/repository/gig/transaction.go
package gigRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stagelink/models"
)

// collectPendingIDs returns the IDs of pending applications on the gig,
// excluding the given set.
func collectPendingIDs(sc mongo.SessionContext, appColl *mongo.Collection, gigID string, exclude []string) ([]string, error) {
	filter := bson.M{
		"gigId":  gigID,
		"status": models.ApplicationStatusPending,
	}
	if len(exclude) > 0 {
		filter["id"] = bson.M{"$nin": exclude}
	}
	cursor, err := appColl.Find(sc, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending applications: %w", err)
	}
	defer cursor.Close(sc)

	var apps []models.Application
	if err := cursor.All(sc, &apps); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (r *mongoGigRepo) CommitHireDecision(
	ctx context.Context,
	gigID string,
	gigVersion int,
	hiredIDs []string,
) ([]string, error) {
	client := r.gigColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var rejectedIDs []string
	now := time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		// Guarded gig update: status and version in the filter serialize
		// concurrent hire attempts. A second committer matches nothing.
		gigFilter := bson.M{
			"id":      gigID,
			"status":  bson.M{"$in": []string{models.GigStatusOpen, models.GigStatusInReview}},
			"version": gigVersion,
		}
		gigUpdate := bson.M{
			"$set": bson.M{"status": models.GigStatusHired, "updatedAt": now},
			"$inc": bson.M{"version": 1},
		}
		res, err := r.gigColl.UpdateOne(sc, gigFilter, gigUpdate)
		if err != nil {
			return fmt.Errorf("gig update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("gig %s is no longer open for hiring", gigID)
		}

		hireFilter := bson.M{
			"gigId":  gigID,
			"id":     bson.M{"$in": hiredIDs},
			"status": models.ApplicationStatusPending,
		}
		hireUpdate := bson.M{
			"$set": bson.M{"status": models.ApplicationStatusHired, "updatedAt": now},
		}
		hireRes, err := r.appColl.UpdateMany(sc, hireFilter, hireUpdate)
		if err != nil {
			return fmt.Errorf("hired applications update failed: %w", err)
		}
		if int(hireRes.ModifiedCount) != len(hiredIDs) {
			return fmt.Errorf("expected to hire %d applications, matched %d", len(hiredIDs), hireRes.ModifiedCount)
		}

		rejectedIDs, err = collectPendingIDs(sc, r.appColl, gigID, hiredIDs)
		if err != nil {
			return err
		}
		if len(rejectedIDs) > 0 {
			rejectFilter := bson.M{
				"gigId":  gigID,
				"id":     bson.M{"$in": rejectedIDs},
				"status": models.ApplicationStatusPending,
			}
			rejectUpdate := bson.M{
				"$set": bson.M{"status": models.ApplicationStatusRejected, "updatedAt": now},
			}
			if _, err := r.appColl.UpdateMany(sc, rejectFilter, rejectUpdate); err != nil {
				return fmt.Errorf("rejected applications update failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("hire transaction failed: %w", err)
	}

	return rejectedIDs, nil
}

func (r *mongoGigRepo) CloseGigWithRejections(
	ctx context.Context,
	gigID, newStatus string,
	fromStatuses []string,
	gigVersion int,
) ([]string, error) {
	client := r.gigColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var rejectedIDs []string
	now := time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		gigFilter := bson.M{
			"id":      gigID,
			"status":  bson.M{"$in": fromStatuses},
			"version": gigVersion,
		}
		gigUpdate := bson.M{
			"$set": bson.M{"status": newStatus, "updatedAt": now},
			"$inc": bson.M{"version": 1},
		}
		res, err := r.gigColl.UpdateOne(sc, gigFilter, gigUpdate)
		if err != nil {
			return fmt.Errorf("gig update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("gig %s cannot transition to %s", gigID, newStatus)
		}

		rejectedIDs, err = collectPendingIDs(sc, r.appColl, gigID, nil)
		if err != nil {
			return err
		}
		if len(rejectedIDs) > 0 {
			rejectFilter := bson.M{
				"gigId":  gigID,
				"status": models.ApplicationStatusPending,
			}
			rejectUpdate := bson.M{
				"$set": bson.M{"status": models.ApplicationStatusRejected, "updatedAt": now},
			}
			if _, err := r.appColl.UpdateMany(sc, rejectFilter, rejectUpdate); err != nil {
				return fmt.Errorf("rejected applications update failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("close transaction failed: %w", err)
	}

	return rejectedIDs, nil
}
