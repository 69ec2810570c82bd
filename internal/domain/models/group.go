// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPartiesPerGroup caps how many parties a group may own.
const MaxPartiesPerGroup = 5

// Group is a named collection of up to five parties of one activity type.
//
// NOTE:
//   - PartyIDs is an ordered, owning list: deleting a group deletes the
//     referenced parties first (cascading slot clears into the member
//     directory).
//   - Status is a first-class field on the group document (e.g., "active").
type Group struct {
	ID           primitive.ObjectID   `bson:"_id" json:"id"`
	GuildID      primitive.ObjectID   `bson:"guild_id" json:"guild_id"`
	Name         string               `bson:"name" json:"name"`
	NameCI       string               `bson:"name_ci" json:"name_ci"`
	Description  string               `bson:"description" json:"description"`
	ActivityType ActivityType         `bson:"activity_type" json:"activity_type"`
	PartyIDs     []primitive.ObjectID `bson:"party_ids" json:"party_ids"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasParty reports whether the group owns the given party.
func (g *Group) HasParty(partyID primitive.ObjectID) bool {
	for _, id := range g.PartyIDs {
		if id == partyID {
			return true
		}
	}
	return false
}
