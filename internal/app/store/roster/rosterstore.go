// internal/app/store/roster/rosterstore.go
package rosterstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the MongoDB implementation of roster.Store. One store spans the
// three roster collections; every query is scoped by guild_id.
//
// Whole-list saves replace the guild's documents (delete then insert).
// That matches the engine's unit of work: it always writes back the full
// mutated list it loaded. The delete and insert are not transactional, so
// a crash between them can lose the guild's list until the next save;
// the engine's per-guild lock keeps in-process writers from interleaving.
type Store struct {
	groups  *mongo.Collection
	parties *mongo.Collection
	members *mongo.Collection
}

var ErrDuplicateMemberName = errors.New("a member with this name already exists in the guild")

// New builds a Store over the roster collections of db.
func New(db *mongo.Database) *Store {
	return &Store{
		groups:  db.Collection("groups"),
		parties: db.Collection("parties"),
		members: db.Collection("members"),
	}
}

var _ roster.Store = (*Store)(nil)

func (s *Store) LoadGroups(ctx context.Context, guildID primitive.ObjectID) ([]models.Group, error) {
	return loadAll[models.Group](ctx, s.groups, guildID)
}

func (s *Store) SaveGroups(ctx context.Context, guildID primitive.ObjectID, groups []models.Group) error {
	return saveAll(ctx, s.groups, guildID, groups)
}

func (s *Store) LoadParties(ctx context.Context, guildID primitive.ObjectID) ([]models.Party, error) {
	return loadAll[models.Party](ctx, s.parties, guildID)
}

func (s *Store) SaveParties(ctx context.Context, guildID primitive.ObjectID, parties []models.Party) error {
	return saveAll(ctx, s.parties, guildID, parties)
}

func (s *Store) LoadMembers(ctx context.Context, guildID primitive.ObjectID) ([]models.Member, error) {
	return loadAll[models.Member](ctx, s.members, guildID)
}

// SaveMember applies a field-mask patch to one member and returns the
// updated document, or roster.ErrNotFound when the member does not exist
// for the guild.
func (s *Store) SaveMember(ctx context.Context, guildID, memberID primitive.ObjectID, patch roster.MemberPatch) (models.Member, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
		set["name_ci"] = text.Fold(*patch.Name)
	}
	if patch.Class != nil {
		set["class"] = *patch.Class
	}
	if patch.Level != nil {
		set["level"] = *patch.Level
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Assignments != nil {
		set["assignments"] = *patch.Assignments
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Member
	err := s.members.FindOneAndUpdate(ctx,
		bson.M{"_id": memberID, "guild_id": guildID},
		bson.M{"$set": set},
		opts,
	).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.Member{}, roster.ErrNotFound
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicateMemberName
		}
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) InsertMember(ctx context.Context, m models.Member) error {
	_, err := s.members.InsertOne(ctx, m)
	if err != nil && wafflemongo.IsDup(err) {
		return ErrDuplicateMemberName
	}
	return err
}

func (s *Store) DeleteMember(ctx context.Context, guildID, memberID primitive.ObjectID) error {
	res, err := s.members.DeleteOne(ctx, bson.M{"_id": memberID, "guild_id": guildID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return roster.ErrNotFound
	}
	return nil
}

func loadAll[T any](ctx context.Context, c *mongo.Collection, guildID primitive.ObjectID) ([]T, error) {
	cur, err := c.Find(ctx, bson.M{"guild_id": guildID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func saveAll[T any](ctx context.Context, c *mongo.Collection, guildID primitive.ObjectID, docs []T) error {
	if _, err := c.DeleteMany(ctx, bson.M{"guild_id": guildID}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	payload := make([]interface{}, len(docs))
	for i := range docs {
		payload[i] = docs[i]
	}
	_, err := c.InsertMany(ctx, payload)
	return err
}
