// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a guild member known to the member directory.
//
// Assignments is the denormalized per-activity-type back-reference onto the
// party slot arrays: it is present for an activity type iff the member
// occupies a slot in exactly one party of that type. Slot arrays are the
// source of truth; the assignment engine rewrites this map after every slot
// mutation so the two views never diverge under independent reads.
type Member struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	GuildID primitive.ObjectID `bson:"guild_id" json:"guild_id"`
	Name    string             `bson:"name" json:"name"`
	NameCI  string             `bson:"name_ci" json:"name_ci"`
	Class   string             `bson:"class,omitempty" json:"class,omitempty"`
	Level   int                `bson:"level,omitempty" json:"level,omitempty"`
	Notes   string             `bson:"notes,omitempty" json:"notes,omitempty"`

	Assignments map[ActivityType]Assignment `bson:"assignments,omitempty" json:"assignments,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Assignment records which party a member currently occupies for one
// activity type, and whether they hold the leader slot there.
type Assignment struct {
	PartyID  primitive.ObjectID `bson:"party_id" json:"party_id"`
	IsLeader bool               `bson:"is_leader" json:"is_leader"`
}
