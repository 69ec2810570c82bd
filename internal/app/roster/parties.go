// internal/app/roster/parties.go
package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Party Registry: CRUD over fixed five-slot rosters.

// CreatePartyParams are the inputs for CreateParty. GroupID is optional
// (zero means the party is unowned). Slots may hold up to five member ids;
// shorter arrays are padded with empty slots.
type CreatePartyParams struct {
	GuildID      primitive.ObjectID
	Name         string
	ActivityType models.ActivityType
	GroupID      primitive.ObjectID
	Slots        []primitive.ObjectID
}

// CreateParty creates a party. It fails with ErrGroupFull when the owning
// group already holds five parties, ErrInvalidSlotCount when more than five
// slots are supplied, and ErrActivityMismatch when the party's activity
// type differs from the owning group's.
//
// Members named in the supplied slots are pulled out of any other party of
// the same activity type, and their directory back-references are rewritten,
// so the one-slot-per-activity-type rule holds from the moment the party
// exists. Ids absent from the member directory fail with ErrNotFound; an id
// repeated within the array keeps only its first slot.
func (s *Service) CreateParty(ctx context.Context, p CreatePartyParams) (models.Party, error) {
	if !p.ActivityType.Valid() {
		return models.Party{}, fmt.Errorf("%w: activity type %q", ErrNotFound, p.ActivityType)
	}
	if strings.TrimSpace(p.Name) == "" {
		return models.Party{}, fmt.Errorf("party name is required")
	}
	if len(p.Slots) > models.PartySlotCount {
		return models.Party{}, ErrInvalidSlotCount
	}
	unlock := s.lockGuild(p.GuildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, p.GuildID)
	if err != nil {
		return models.Party{}, err
	}

	var group *models.Group
	if p.GroupID != primitive.NilObjectID {
		group = snap.Group(p.GroupID)
		if group == nil {
			return models.Party{}, ErrNotFound
		}
		if group.ActivityType != p.ActivityType {
			return models.Party{}, ErrActivityMismatch
		}
		if len(group.PartyIDs) >= models.MaxPartiesPerGroup {
			return models.Party{}, ErrGroupFull
		}
	}

	now := time.Now().UTC()
	party := models.Party{
		ID:           primitive.NewObjectID(),
		GuildID:      p.GuildID,
		GroupID:      p.GroupID,
		Name:         p.Name,
		NameCI:       text.Fold(p.Name),
		ActivityType: p.ActivityType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	copy(party.Slots[:], p.Slots)
	if err := normalizeSlots(snap, &party.Slots); err != nil {
		return models.Party{}, err
	}

	// Enforce slot uniqueness before the new party joins the snapshot.
	var occupants []primitive.ObjectID
	for _, id := range party.Slots {
		if id != primitive.NilObjectID {
			snap.removeFromOtherParties(id, p.ActivityType, party.ID)
			occupants = append(occupants, id)
		}
	}

	snap.Parties = append(snap.Parties, party)
	normalizeLeader(snap.Party(party.ID))
	if group != nil {
		group.PartyIDs = append(group.PartyIDs, party.ID)
		group.UpdatedAt = now
	}
	for _, id := range occupants {
		snap.rebuildAssignment(id, p.ActivityType)
	}

	if err := s.store.SaveParties(ctx, p.GuildID, snap.Parties); err != nil {
		return models.Party{}, fmt.Errorf("save parties: %w", err)
	}
	if group != nil {
		if err := s.store.SaveGroups(ctx, p.GuildID, snap.Groups); err != nil {
			return models.Party{}, fmt.Errorf("save groups: %w", err)
		}
	}
	if err := s.saveMemberAssignments(ctx, snap, occupants...); err != nil {
		return models.Party{}, err
	}
	return *snap.Party(party.ID), nil
}

// normalizeSlots vets a registry-supplied slot array: every named member
// must exist in the directory, and an id repeated within the array keeps
// only its first slot.
func normalizeSlots(snap *Snapshot, slots *[models.PartySlotCount]primitive.ObjectID) error {
	seen := make(map[primitive.ObjectID]bool, models.PartySlotCount)
	for i, id := range slots {
		if id == primitive.NilObjectID {
			continue
		}
		if snap.Member(id) == nil {
			return fmt.Errorf("%w: member %s", ErrNotFound, id.Hex())
		}
		if seen[id] {
			slots[i] = primitive.NilObjectID
			continue
		}
		seen[id] = true
	}
	return nil
}

// GetParty returns one party or ErrNotFound.
func (s *Service) GetParty(ctx context.Context, guildID, partyID primitive.ObjectID) (models.Party, error) {
	parties, err := s.store.LoadParties(ctx, guildID)
	if err != nil {
		return models.Party{}, fmt.Errorf("load parties: %w", err)
	}
	for _, p := range parties {
		if p.ID == partyID {
			return p, nil
		}
	}
	return models.Party{}, ErrNotFound
}

// ListParties returns the guild's parties, optionally filtered by activity
// type (nil means all).
func (s *Service) ListParties(ctx context.Context, guildID primitive.ObjectID, t *models.ActivityType) ([]models.Party, error) {
	parties, err := s.store.LoadParties(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load parties: %w", err)
	}
	if t == nil {
		return parties, nil
	}
	out := parties[:0:0]
	for _, p := range parties {
		if p.ActivityType == *t {
			out = append(out, p)
		}
	}
	return out, nil
}

// PartyPatch is a partial update for UpdateParty. A non-nil Slots replaces
// the whole slot array (padded to five; more than five is rejected).
type PartyPatch struct {
	Name  *string
	Slots *[]primitive.ObjectID
}

// UpdateParty applies the patch and returns the updated party.
func (s *Service) UpdateParty(ctx context.Context, guildID, partyID primitive.ObjectID, patch PartyPatch) (models.Party, error) {
	if patch.Slots != nil && len(*patch.Slots) > models.PartySlotCount {
		return models.Party{}, ErrInvalidSlotCount
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

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		party.Name = *patch.Name
		party.NameCI = text.Fold(*patch.Name)
	}

	var changed []primitive.ObjectID
	if patch.Slots != nil {
		// Members leaving the party need their back-references cleared,
		// members arriving need theirs rewritten.
		for _, id := range party.Slots {
			if id != primitive.NilObjectID {
				changed = append(changed, id)
			}
		}
		var slots [models.PartySlotCount]primitive.ObjectID
		copy(slots[:], *patch.Slots)
		if err := normalizeSlots(snap, &slots); err != nil {
			return models.Party{}, err
		}
		party.Slots = slots
		for _, id := range slots {
			if id != primitive.NilObjectID {
				snap.removeFromOtherParties(id, party.ActivityType, party.ID)
				changed = append(changed, id)
			}
		}
	}
	normalizeLeader(party)
	for _, id := range changed {
		snap.rebuildAssignment(id, party.ActivityType)
	}

	if err := s.store.SaveParties(ctx, guildID, snap.Parties); err != nil {
		return models.Party{}, fmt.Errorf("save parties: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, changed...); err != nil {
		return models.Party{}, err
	}
	return *snap.Party(partyID), nil
}

// DeleteParty unlinks the party from its owning group, clears every
// occupant's assignment entry for the party's activity type, and removes
// the party. Returns ErrNotFound when the id is unknown for the guild.
func (s *Service) DeleteParty(ctx context.Context, guildID, partyID primitive.ObjectID) error {
	unlock := s.lockGuild(guildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return err
	}
	party := snap.Party(partyID)
	if party == nil {
		return ErrNotFound
	}
	activity := party.ActivityType

	changed := snap.dropAssignments(activity, map[primitive.ObjectID]bool{partyID: true})

	groupsChanged := false
	for i := range snap.Groups {
		g := &snap.Groups[i]
		if !g.HasParty(partyID) {
			continue
		}
		ids := g.PartyIDs[:0:0]
		for _, id := range g.PartyIDs {
			if id != partyID {
				ids = append(ids, id)
			}
		}
		g.PartyIDs = ids
		g.UpdatedAt = time.Now().UTC()
		groupsChanged = true
	}

	parties := snap.Parties[:0:0]
	for _, p := range snap.Parties {
		if p.ID != partyID {
			parties = append(parties, p)
		}
	}
	snap.Parties = parties

	if err := s.store.SaveParties(ctx, guildID, snap.Parties); err != nil {
		return fmt.Errorf("save parties: %w", err)
	}
	if groupsChanged {
		if err := s.store.SaveGroups(ctx, guildID, snap.Groups); err != nil {
			return fmt.Errorf("save groups: %w", err)
		}
	}
	if err := s.saveMemberAssignments(ctx, snap, changed...); err != nil {
		return err
	}

	s.log.Info("party deleted",
		zap.String("guild_id", guildID.Hex()),
		zap.String("party_id", partyID.Hex()),
		zap.Int("members_cleared", len(changed)))
	return nil
}

// PartyWithMembers is a party with its occupied slots and leader resolved
// to full member records. Members is indexed by slot; empty slots are nil.
type PartyWithMembers struct {
	Party   models.Party
	Members [models.PartySlotCount]*models.Member
	Leader  *models.Member
}

// GetPartyWithMembers resolves all occupied slots and the leader reference
// to full member records.
func (s *Service) GetPartyWithMembers(ctx context.Context, guildID, partyID primitive.ObjectID) (PartyWithMembers, error) {
	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return PartyWithMembers{}, err
	}
	party := snap.Party(partyID)
	if party == nil {
		return PartyWithMembers{}, ErrNotFound
	}
	out := PartyWithMembers{Party: *party}
	for i, id := range party.Slots {
		if id == primitive.NilObjectID {
			continue
		}
		out.Members[i] = snap.Member(id)
	}
	if party.LeaderID != primitive.NilObjectID {
		out.Leader = snap.Member(party.LeaderID)
	}
	return out, nil
}
