// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateMany is a no-op for indexes that already exist with the same spec).
Errors are aggregated so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureParties(ctx, db); err != nil {
		problems = append(problems, "parties: "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, "members: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("collection indexes ensured")
	return nil
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("groups").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "guild_id", Value: 1}, {Key: "activity_type", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "guild_id", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func ensureParties(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("parties").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "guild_id", Value: 1}, {Key: "activity_type", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "guild_id", Value: 1}, {Key: "group_id", Value: 1}},
		},
		// Slot lookups scan per guild+activity; no per-slot index is kept
		// because the engine always loads the full party list anyway.
	})
	return err
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("members").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "guild_id", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
