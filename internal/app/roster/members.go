// internal/app/roster/members.go
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

// Member directory: owns member identity. Assignment back-references on the
// member record are written only by the engine; directory updates cannot
// touch them.

// CreateMemberParams are the inputs for CreateMember.
type CreateMemberParams struct {
	GuildID primitive.ObjectID
	Name    string
	Class   string
	Level   int
	Notes   string
}

// CreateMember registers a new member with no assignments.
func (s *Service) CreateMember(ctx context.Context, p CreateMemberParams) (models.Member, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.Member{}, fmt.Errorf("member name is required")
	}
	now := time.Now().UTC()
	m := models.Member{
		ID:        primitive.NewObjectID(),
		GuildID:   p.GuildID,
		Name:      p.Name,
		NameCI:    text.Fold(p.Name),
		Class:     p.Class,
		Level:     p.Level,
		Notes:     p.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.InsertMember(ctx, m); err != nil {
		return models.Member{}, fmt.Errorf("insert member: %w", err)
	}
	return m, nil
}

// GetMember returns one member or ErrNotFound.
func (s *Service) GetMember(ctx context.Context, guildID, memberID primitive.ObjectID) (models.Member, error) {
	members, err := s.store.LoadMembers(ctx, guildID)
	if err != nil {
		return models.Member{}, fmt.Errorf("load members: %w", err)
	}
	for _, m := range members {
		if m.ID == memberID {
			return m, nil
		}
	}
	return models.Member{}, ErrNotFound
}

// ListMembers returns every member of the guild.
func (s *Service) ListMembers(ctx context.Context, guildID primitive.ObjectID) ([]models.Member, error) {
	members, err := s.store.LoadMembers(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return members, nil
}

// UpdateMember applies an identity patch (name, class, level, notes) and
// returns the updated member. Any Assignments field on the patch is
// discarded; back-references belong to the engine.
func (s *Service) UpdateMember(ctx context.Context, guildID, memberID primitive.ObjectID, patch MemberPatch) (models.Member, error) {
	patch.Assignments = nil
	m, err := s.store.SaveMember(ctx, guildID, memberID, patch)
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// DeleteMember removes a member from the directory after clearing every
// slot they occupy across both activity types.
func (s *Service) DeleteMember(ctx context.Context, guildID, memberID primitive.ObjectID) error {
	unlock := s.lockGuild(guildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return err
	}
	if snap.Member(memberID) == nil {
		return ErrNotFound
	}

	cleared := 0
	for _, t := range models.ActivityTypes() {
		if party, slot := snap.Locate(memberID, t); party != nil {
			party.Slots[slot] = primitive.NilObjectID
			normalizeLeader(party)
			cleared++
		}
	}
	if cleared > 0 {
		if err := s.store.SaveParties(ctx, guildID, snap.Parties); err != nil {
			return fmt.Errorf("save parties: %w", err)
		}
	}
	if err := s.store.DeleteMember(ctx, guildID, memberID); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	s.log.Info("member deleted",
		zap.String("guild_id", guildID.Hex()),
		zap.String("member_id", memberID.Hex()),
		zap.Int("slots_cleared", cleared))
	return nil
}
