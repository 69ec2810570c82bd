// internal/app/roster/store.go
package roster

import (
	"context"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence boundary for one guild's roster. It carries no
// business rules: whole-list loads and saves for groups and parties, plus
// member-level access for the member directory.
//
// Implementations: the Mongo store in internal/app/store/roster and the
// in-memory store in internal/app/store/rostermem.
type Store interface {
	LoadGroups(ctx context.Context, guildID primitive.ObjectID) ([]models.Group, error)
	SaveGroups(ctx context.Context, guildID primitive.ObjectID, groups []models.Group) error

	LoadParties(ctx context.Context, guildID primitive.ObjectID) ([]models.Party, error)
	SaveParties(ctx context.Context, guildID primitive.ObjectID, parties []models.Party) error

	LoadMembers(ctx context.Context, guildID primitive.ObjectID) ([]models.Member, error)
	// SaveMember applies a partial update to one member and returns the
	// updated record. Implementations return ErrNotFound when the member
	// does not exist for the guild.
	SaveMember(ctx context.Context, guildID, memberID primitive.ObjectID, patch MemberPatch) (models.Member, error)

	// InsertMember and DeleteMember exist for the member directory, which
	// owns member identity; the assignment engine itself never creates or
	// destroys members.
	InsertMember(ctx context.Context, m models.Member) error
	DeleteMember(ctx context.Context, guildID, memberID primitive.ObjectID) error
}

// MemberPatch is a field mask for SaveMember. Nil fields are left untouched.
// Assignments replaces the whole map when set (a pointer to an empty map
// clears every assignment entry); the engine always rewrites the full map
// so the slot-array view and the member-centric view cannot diverge.
type MemberPatch struct {
	Name  *string
	Class *string
	Level *int
	Notes *string

	Assignments *map[models.ActivityType]models.Assignment
}
