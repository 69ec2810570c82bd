package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating roster test data directly
// in the collections, bypassing the service layer.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroup inserts a group with no parties and returns it.
func (f *Fixtures) CreateGroup(ctx context.Context, guildID primitive.ObjectID, name string, activity models.ActivityType) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:           primitive.NewObjectID(),
		GuildID:      guildID,
		Name:         name,
		NameCI:       text.Fold(name),
		ActivityType: activity,
		PartyIDs:     []primitive.ObjectID{},
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("insert fixture group: %v", err)
	}
	return g
}

// CreateParty inserts an empty party attached to group and returns it. The
// group's party_ids list is updated to match.
func (f *Fixtures) CreateParty(ctx context.Context, group models.Group, name string) models.Party {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Party{
		ID:           primitive.NewObjectID(),
		GuildID:      group.GuildID,
		GroupID:      group.ID,
		Name:         name,
		NameCI:       text.Fold(name),
		ActivityType: group.ActivityType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("parties").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("insert fixture party: %v", err)
	}
	res := f.db.Collection("groups").FindOneAndUpdate(ctx,
		map[string]any{"_id": group.ID},
		map[string]any{"$push": map[string]any{"party_ids": p.ID}})
	if res.Err() != nil {
		f.t.Fatalf("attach fixture party to group: %v", res.Err())
	}
	return p
}

// CreateMember inserts a member with no assignments and returns it.
func (f *Fixtures) CreateMember(ctx context.Context, guildID primitive.ObjectID, name string) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:        primitive.NewObjectID(),
		GuildID:   guildID,
		Name:      name,
		NameCI:    text.Fold(name),
		Class:     "warrior",
		Level:     60,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("insert fixture member: %v", err)
	}
	return m
}
