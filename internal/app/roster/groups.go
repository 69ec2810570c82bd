// internal/app/roster/groups.go
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

// Group Registry: CRUD over named collections of up to five parties.

// CreateGroupParams are the inputs for CreateGroup.
type CreateGroupParams struct {
	GuildID      primitive.ObjectID
	Name         string
	ActivityType models.ActivityType
	Description  string
}

// CreateGroup creates a group with an empty party list.
func (s *Service) CreateGroup(ctx context.Context, p CreateGroupParams) (models.Group, error) {
	if !p.ActivityType.Valid() {
		return models.Group{}, fmt.Errorf("%w: activity type %q", ErrNotFound, p.ActivityType)
	}
	if strings.TrimSpace(p.Name) == "" {
		return models.Group{}, fmt.Errorf("group name is required")
	}
	unlock := s.lockGuild(p.GuildID)
	defer unlock()

	groups, err := s.store.LoadGroups(ctx, p.GuildID)
	if err != nil {
		return models.Group{}, fmt.Errorf("load groups: %w", err)
	}

	now := time.Now().UTC()
	g := models.Group{
		ID:           primitive.NewObjectID(),
		GuildID:      p.GuildID,
		Name:         p.Name,
		NameCI:       text.Fold(p.Name),
		Description:  p.Description,
		ActivityType: p.ActivityType,
		PartyIDs:     []primitive.ObjectID{},
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	groups = append(groups, g)
	if err := s.store.SaveGroups(ctx, p.GuildID, groups); err != nil {
		return models.Group{}, fmt.Errorf("save groups: %w", err)
	}
	return g, nil
}

// GetGroup returns one group or ErrNotFound.
func (s *Service) GetGroup(ctx context.Context, guildID, groupID primitive.ObjectID) (models.Group, error) {
	groups, err := s.store.LoadGroups(ctx, guildID)
	if err != nil {
		return models.Group{}, fmt.Errorf("load groups: %w", err)
	}
	for _, g := range groups {
		if g.ID == groupID {
			return g, nil
		}
	}
	return models.Group{}, ErrNotFound
}

// ListGroups returns the guild's groups, optionally filtered by activity
// type (nil means all).
func (s *Service) ListGroups(ctx context.Context, guildID primitive.ObjectID, t *models.ActivityType) ([]models.Group, error) {
	groups, err := s.store.LoadGroups(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	if t == nil {
		return groups, nil
	}
	out := groups[:0:0]
	for _, g := range groups {
		if g.ActivityType == *t {
			out = append(out, g)
		}
	}
	return out, nil
}

// GroupPatch is a partial update for UpdateGroup. Nil fields are untouched.
type GroupPatch struct {
	Name        *string
	Description *string
}

// UpdateGroup applies the patch and returns the updated group, or
// ErrNotFound when the id is unknown for the guild.
func (s *Service) UpdateGroup(ctx context.Context, guildID, groupID primitive.ObjectID, patch GroupPatch) (models.Group, error) {
	unlock := s.lockGuild(guildID)
	defer unlock()

	groups, err := s.store.LoadGroups(ctx, guildID)
	if err != nil {
		return models.Group{}, fmt.Errorf("load groups: %w", err)
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		g := &groups[i]
		if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
			g.Name = *patch.Name
			g.NameCI = text.Fold(*patch.Name)
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		g.UpdatedAt = time.Now().UTC()
		if err := s.store.SaveGroups(ctx, guildID, groups); err != nil {
			return models.Group{}, fmt.Errorf("save groups: %w", err)
		}
		return *g, nil
	}
	return models.Group{}, ErrNotFound
}

// DeleteGroup removes a group and cascades: every contained party is
// deleted first, clearing the assignment entries of its occupants. Returns
// ErrNotFound when the id is unknown for the guild.
func (s *Service) DeleteGroup(ctx context.Context, guildID, groupID primitive.ObjectID) error {
	unlock := s.lockGuild(guildID)
	defer unlock()

	snap, err := loadSnapshot(ctx, s.store, guildID)
	if err != nil {
		return err
	}
	group := snap.Group(groupID)
	if group == nil {
		return ErrNotFound
	}

	owned := make(map[primitive.ObjectID]bool, len(group.PartyIDs))
	for _, pid := range group.PartyIDs {
		owned[pid] = true
	}

	// Clear member back-references before the parties disappear.
	changed := snap.dropAssignments(group.ActivityType, owned)

	parties := snap.Parties[:0:0]
	for _, p := range snap.Parties {
		if !owned[p.ID] {
			parties = append(parties, p)
		}
	}
	groups := snap.Groups[:0:0]
	for _, g := range snap.Groups {
		if g.ID != groupID {
			groups = append(groups, g)
		}
	}

	if err := s.store.SaveParties(ctx, guildID, parties); err != nil {
		return fmt.Errorf("save parties: %w", err)
	}
	if err := s.store.SaveGroups(ctx, guildID, groups); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}
	if err := s.saveMemberAssignments(ctx, snap, changed...); err != nil {
		return err
	}

	s.log.Info("group deleted",
		zap.String("guild_id", guildID.Hex()),
		zap.String("group_id", groupID.Hex()),
		zap.Int("parties_removed", len(owned)),
		zap.Int("members_cleared", len(changed)))
	return nil
}
