// internal/app/roster/engine.go
package roster

import (
	"context"
	"fmt"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Assignment engine: places, removes, and swaps members across party slots
// while keeping the leader and uniqueness rules intact and rewriting member
// back-references in the same unit of work.

// AssignParams are the inputs for Assign. SlotIndex -1 lets the engine pick
// the slot: 0 when IsLeader is set, otherwise the first open non-leader
// slot. An explicit SlotIndex wins over IsLeader; leadership always follows
// slot-0 occupancy.
type AssignParams struct {
	GuildID      primitive.ObjectID
	MemberID     primitive.ObjectID
	PartyID      primitive.ObjectID
	ActivityType models.ActivityType
	SlotIndex    int
	IsLeader     bool
}

// AssignResult reports where the member landed. DisplacedMemberID names the
// previous occupant of the slot when the placement overwrote one, so the
// caller can tell the difference between a clean placement and a silent
// unassignment; it is zero otherwise.
type AssignResult struct {
	Party             models.Party
	Member            models.Member
	SlotIndex         int
	DisplacedMemberID primitive.ObjectID
}

// Assign places a member into a party slot.
//
// The member is first pulled out of every other party of the same activity
// type. If the target slot is occupied by a different member, that member
// is displaced (a successful outcome, not an error): their slot is taken
// and their assignment entry for this activity type is cleared. Afterward
// the target party's leader id and both members' back-references are
// recomputed from the slot arrays and persisted as one unit.
func (s *Service) Assign(ctx context.Context, p AssignParams) (AssignResult, error) {
	if !p.ActivityType.Valid() {
		return AssignResult{}, fmt.Errorf("%w: activity type %q", ErrNotFound, p.ActivityType)
	}
	if p.SlotIndex < -1 || p.SlotIndex >= models.PartySlotCount {
		return AssignResult{}, ErrInvalidSlotIndex
	}
	unlock := s.lockGuild(p.GuildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, p.GuildID)
	if err != nil {
		return AssignResult{}, err
	}
	if snap.Member(p.MemberID) == nil {
		return AssignResult{}, ErrNotFound
	}
	target := snap.Party(p.PartyID)
	if target == nil {
		return AssignResult{}, ErrNotFound
	}
	if target.ActivityType != p.ActivityType {
		return AssignResult{}, ErrActivityMismatch
	}

	// One slot per activity type: zero the member out of every other party.
	snap.removeFromOtherParties(p.MemberID, p.ActivityType, target.ID)

	// Pick the target slot before touching the member's current position in
	// this party, so "first open slot" is judged against the live state.
	slot := p.SlotIndex
	switch {
	case slot >= 0:
		// explicit
	case p.IsLeader:
		slot = models.LeaderSlot
	default:
		slot = target.FirstOpenSlot()
		if slot < 0 {
			return AssignResult{}, ErrPartyFull
		}
	}

	// Moving within the same party clears the old slot first.
	if old := target.SlotOf(p.MemberID); old >= 0 && old != slot {
		target.Slots[old] = primitive.NilObjectID
	}

	displaced := target.Slots[slot]
	if displaced == p.MemberID {
		displaced = primitive.NilObjectID
	}

	target.Slots[slot] = p.MemberID
	normalizeLeader(target)

	snap.rebuildAssignment(p.MemberID, p.ActivityType)
	if displaced != primitive.NilObjectID {
		snap.rebuildAssignment(displaced, p.ActivityType)
	}

	if err := s.store.SaveParties(ctx, p.GuildID, snap.Parties); err != nil {
		return AssignResult{}, fmt.Errorf("save parties: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, p.MemberID, displaced); err != nil {
		return AssignResult{}, err
	}

	s.log.Debug("member assigned",
		zap.String("guild_id", p.GuildID.Hex()),
		zap.String("member_id", p.MemberID.Hex()),
		zap.String("party_id", p.PartyID.Hex()),
		zap.Int("slot", slot),
		zap.Bool("displaced", displaced != primitive.NilObjectID))

	return AssignResult{
		Party:             *target,
		Member:            *snap.Member(p.MemberID),
		SlotIndex:         slot,
		DisplacedMemberID: displaced,
	}, nil
}

// Remove clears the slot holding the member in the given party, clears the
// leader id if it matched, and deletes the member's assignment entry for
// the activity type. Returns ErrNotFound when the party is unknown or the
// member does not occupy a slot in it.
func (s *Service) Remove(ctx context.Context, guildID, memberID, partyID primitive.ObjectID, t models.ActivityType) (models.Party, error) {
	if !t.Valid() {
		return models.Party{}, fmt.Errorf("%w: activity type %q", ErrNotFound, t)
	}
	unlock := s.lockGuild(guildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return models.Party{}, err
	}
	party := snap.Party(partyID)
	if party == nil {
		return models.Party{}, ErrNotFound
	}
	slot := party.SlotOf(memberID)
	if slot < 0 {
		return models.Party{}, ErrNotFound
	}

	party.Slots[slot] = primitive.NilObjectID
	normalizeLeader(party)
	snap.rebuildAssignment(memberID, t)

	if err := s.store.SaveParties(ctx, guildID, snap.Parties); err != nil {
		return models.Party{}, fmt.Errorf("save parties: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, memberID); err != nil {
		return models.Party{}, err
	}
	return *party, nil
}

// SwapParams are the inputs for Swap. DeclaredSlot1/2 are the caller's
// belief about where each member currently sits; -1 skips the check for
// that member. A declared slot that disagrees with the member's discovered
// position fails with ErrPositionMismatch rather than being silently
// reinterpreted.
type SwapParams struct {
	GuildID       primitive.ObjectID
	Member1ID     primitive.ObjectID
	Member2ID     primitive.ObjectID
	DeclaredSlot1 int
	DeclaredSlot2 int
	ActivityType  models.ActivityType
}

// SwapResult reports both parties after the exchange. Party1 is the party
// member1 came from (now holding member2) and vice versa; for a swap within
// one party both fields carry the same final state.
type SwapResult struct {
	Party1 models.Party
	Party2 models.Party
}

// Swap exchanges the slot positions of two members. Each member's actual
// position is discovered by scanning every party of the activity type; both
// parties' leader ids are then derived purely from final slot-0 occupancy,
// and both members' back-references are rewritten. Fails with ErrNotFound
// when either member cannot be located in any party of the activity type.
func (s *Service) Swap(ctx context.Context, p SwapParams) (SwapResult, error) {
	if !p.ActivityType.Valid() {
		return SwapResult{}, fmt.Errorf("%w: activity type %q", ErrNotFound, p.ActivityType)
	}
	unlock := s.lockGuild(p.GuildID)
	defer unlock()

	// Always a fresh snapshot: stale in-memory state from a prior call path
	// cannot leak into the exchange.
	snap, err := loadSnapshot(ctx, s.store, p.GuildID)
	if err != nil {
		return SwapResult{}, err
	}

	party1, slot1 := snap.Locate(p.Member1ID, p.ActivityType)
	party2, slot2 := snap.Locate(p.Member2ID, p.ActivityType)
	if party1 == nil || party2 == nil {
		return SwapResult{}, ErrNotFound
	}
	if p.DeclaredSlot1 >= 0 && p.DeclaredSlot1 != slot1 {
		return SwapResult{}, fmt.Errorf("%w: member %s declared slot %d, found %d",
			ErrPositionMismatch, p.Member1ID.Hex(), p.DeclaredSlot1, slot1)
	}
	if p.DeclaredSlot2 >= 0 && p.DeclaredSlot2 != slot2 {
		return SwapResult{}, fmt.Errorf("%w: member %s declared slot %d, found %d",
			ErrPositionMismatch, p.Member2ID.Hex(), p.DeclaredSlot2, slot2)
	}

	party1.Slots[slot1] = p.Member2ID
	party2.Slots[slot2] = p.Member1ID
	normalizeLeader(party1)
	if party2 != party1 {
		normalizeLeader(party2)
	}

	snap.rebuildAssignment(p.Member1ID, p.ActivityType)
	snap.rebuildAssignment(p.Member2ID, p.ActivityType)

	if err := s.store.SaveParties(ctx, p.GuildID, snap.Parties); err != nil {
		return SwapResult{}, fmt.Errorf("save parties: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, p.Member1ID, p.Member2ID); err != nil {
		return SwapResult{}, err
	}

	s.log.Debug("members swapped",
		zap.String("guild_id", p.GuildID.Hex()),
		zap.String("member1_id", p.Member1ID.Hex()),
		zap.String("member2_id", p.Member2ID.Hex()),
		zap.String("activity", string(p.ActivityType)))

	return SwapResult{Party1: *party1, Party2: *party2}, nil
}

// ClearAll zeroes every slot and leader id for every party of the activity
// type and removes the matching assignment entry from every member.
func (s *Service) ClearAll(ctx context.Context, guildID primitive.ObjectID, t models.ActivityType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: activity type %q", ErrNotFound, t)
	}
	unlock := s.lockGuild(guildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return err
	}
	for _, party := range snap.PartiesOf(t) {
		party.Slots = [models.PartySlotCount]primitive.ObjectID{}
		normalizeLeader(party)
	}
	changed := snap.dropAssignments(t, nil)

	if err := s.store.SaveParties(ctx, guildID, snap.Parties); err != nil {
		return fmt.Errorf("save parties: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, changed...); err != nil {
		return err
	}

	s.log.Info("rosters cleared",
		zap.String("guild_id", guildID.Hex()),
		zap.String("activity", string(t)),
		zap.Int("members_cleared", len(changed)))
	return nil
}
