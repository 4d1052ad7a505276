package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes that back every Conflict in the
// API. Concurrent creates race at the store, not in application code: the
// duplicate-key error from these indexes is what the repositories translate
// into domain conflicts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		accountCollection: {
			{Keys: bson.D{{Key: "account_name", Value: 1}}, Options: unique},
		},
		userCollection: {
			{Keys: bson.D{{Key: "user_name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "email", Value: 1}}, Options: unique},
		},
		sessionCollection: {
			{Keys: bson.D{{Key: "token_value", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "user_id", Value: 1}}},
		},
		expenseTypeCollection: {
			{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "expense_type", Value: 1}}, Options: unique},
		},
		incomeCollection: {
			{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "user_id", Value: 1}}},
		},
		expenditureCollection: {
			{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "user_id", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
