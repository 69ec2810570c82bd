// internal/domain/models/party.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartySlotCount is the fixed size of every party's slot array. The slot
// array is always persisted at exactly this length; an empty slot holds
// primitive.NilObjectID.
const PartySlotCount = 5

// LeaderSlot is the slot index that conventionally holds the party leader.
const LeaderSlot = 0

// Party is a fixed five-slot roster scoped to one activity type.
//
// LeaderID is denormalized from Slots[0]: it is recomputed from slot-0
// occupancy after every mutation and never trusted as input. GroupID is
// zero when the party is not owned by any group.
type Party struct {
	ID           primitive.ObjectID               `bson:"_id" json:"id"`
	GuildID      primitive.ObjectID               `bson:"guild_id" json:"guild_id"`
	GroupID      primitive.ObjectID               `bson:"group_id,omitempty" json:"group_id,omitempty"`
	Name         string                           `bson:"name" json:"name"`
	NameCI       string                           `bson:"name_ci" json:"name_ci"`
	ActivityType ActivityType                     `bson:"activity_type" json:"activity_type"`
	LeaderID     primitive.ObjectID               `bson:"leader_id,omitempty" json:"leader_id,omitempty"`
	Slots        [PartySlotCount]primitive.ObjectID `bson:"slots" json:"slots"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SlotOf returns the slot index holding memberID, or -1 if the member does
// not occupy any slot in this party.
func (p *Party) SlotOf(memberID primitive.ObjectID) int {
	for i, id := range p.Slots {
		if id == memberID && id != primitive.NilObjectID {
			return i
		}
	}
	return -1
}

// FirstOpenSlot returns the lowest empty non-leader slot index (> 0), or -1
// when every non-leader slot is occupied.
func (p *Party) FirstOpenSlot() int {
	for i := LeaderSlot + 1; i < PartySlotCount; i++ {
		if p.Slots[i] == primitive.NilObjectID {
			return i
		}
	}
	return -1
}

// OccupiedCount returns the number of non-empty slots.
func (p *Party) OccupiedCount() int {
	n := 0
	for _, id := range p.Slots {
		if id != primitive.NilObjectID {
			n++
		}
	}
	return n
}
