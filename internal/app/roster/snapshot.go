// internal/app/roster/snapshot.go
package roster

import (
	"context"
	"fmt"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot is the complete in-memory roster state for one guild: every
// group, party, and member, loaded fresh at the start of an operation.
//
// It is request-scoped and explicitly threaded through each operation.
// Nothing in this package holds roster state between calls, so concurrent
// requests for different guilds never observe each other's snapshots.
type Snapshot struct {
	GuildID primitive.ObjectID
	Groups  []models.Group
	Parties []models.Party
	Members []models.Member
}

// loadSnapshot reads the full roster for a guild from the store.
func loadSnapshot(ctx context.Context, store Store, guildID primitive.ObjectID) (*Snapshot, error) {
	groups, err := store.LoadGroups(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	parties, err := store.LoadParties(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load parties: %w", err)
	}
	members, err := store.LoadMembers(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return &Snapshot{
		GuildID: guildID,
		Groups:  groups,
		Parties: parties,
		Members: members,
	}, nil
}

// Group returns a pointer into the snapshot's group list, or nil.
func (s *Snapshot) Group(id primitive.ObjectID) *models.Group {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// Party returns a pointer into the snapshot's party list, or nil.
func (s *Snapshot) Party(id primitive.ObjectID) *models.Party {
	for i := range s.Parties {
		if s.Parties[i].ID == id {
			return &s.Parties[i]
		}
	}
	return nil
}

// Member returns a pointer into the snapshot's member list, or nil.
func (s *Snapshot) Member(id primitive.ObjectID) *models.Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

// PartiesOf returns pointers to every party of the given activity type.
func (s *Snapshot) PartiesOf(t models.ActivityType) []*models.Party {
	var out []*models.Party
	for i := range s.Parties {
		if s.Parties[i].ActivityType == t {
			out = append(out, &s.Parties[i])
		}
	}
	return out
}

// Locate scans every party of the given activity type for the member and
// returns the party and slot index actually holding them. The scan is the
// source of truth; member back-references are never consulted here.
func (s *Snapshot) Locate(memberID primitive.ObjectID, t models.ActivityType) (*models.Party, int) {
	for _, p := range s.PartiesOf(t) {
		if slot := p.SlotOf(memberID); slot >= 0 {
			return p, slot
		}
	}
	return nil, -1
}
