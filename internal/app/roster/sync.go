// internal/app/roster/sync.go
package roster

import (
	"time"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Back-reference synchronization (the standing contract of the engine):
// slot arrays are the source of truth, member assignment entries and party
// leader ids are derived from them, recomputed after every slot mutation
// within the same unit of work.

// normalizeLeader derives the party's leader id from slot-0 occupancy.
// Leadership is never carried independently of the slot array.
func normalizeLeader(p *models.Party) {
	p.LeaderID = p.Slots[models.LeaderSlot]
	p.UpdatedAt = time.Now().UTC()
}

// rebuildAssignment recomputes one member's assignment entry for one
// activity type from the slot arrays. The entry is set when the member
// occupies a slot in a party of that type and deleted otherwise.
func (s *Snapshot) rebuildAssignment(memberID primitive.ObjectID, t models.ActivityType) {
	m := s.Member(memberID)
	if m == nil {
		return
	}
	party, slot := s.Locate(memberID, t)
	if party == nil {
		delete(m.Assignments, t)
		return
	}
	if m.Assignments == nil {
		m.Assignments = make(map[models.ActivityType]models.Assignment, 1)
	}
	m.Assignments[t] = models.Assignment{
		PartyID:  party.ID,
		IsLeader: slot == models.LeaderSlot,
	}
	m.UpdatedAt = time.Now().UTC()
}

// dropAssignments removes the assignment entry for one activity type from
// every member currently referencing one of the given parties. Used by
// cascading deletes and ClearAll, where whole parties vanish at once.
// Returns the ids of the members that were changed.
func (s *Snapshot) dropAssignments(t models.ActivityType, partyIDs map[primitive.ObjectID]bool) []primitive.ObjectID {
	var changed []primitive.ObjectID
	for i := range s.Members {
		m := &s.Members[i]
		asn, ok := m.Assignments[t]
		if !ok {
			continue
		}
		if partyIDs != nil && !partyIDs[asn.PartyID] {
			continue
		}
		delete(m.Assignments, t)
		m.UpdatedAt = time.Now().UTC()
		changed = append(changed, m.ID)
	}
	return changed
}

// removeFromOtherParties zeroes every slot holding memberID across parties
// of the given activity type, except the party named by keepID. This is
// what keeps a member in at most one slot per activity type.
func (s *Snapshot) removeFromOtherParties(memberID primitive.ObjectID, t models.ActivityType, keepID primitive.ObjectID) {
	for _, p := range s.PartiesOf(t) {
		if p.ID == keepID {
			continue
		}
		if slot := p.SlotOf(memberID); slot >= 0 {
			p.Slots[slot] = primitive.NilObjectID
			normalizeLeader(p)
		}
	}
}
