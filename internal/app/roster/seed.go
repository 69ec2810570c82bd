// internal/app/roster/seed.go
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Default bootstrap shape: four groups of five parties per activity type,
// forty parties per guild in total.
const (
	seedGroupsPerActivity = 4
	seedPartiesPerGroup   = models.MaxPartiesPerGroup
)

// seedLabels maps activity types to display names used in seeded rosters.
var seedLabels = map[models.ActivityType]string{
	models.ActivityRaid:     "Raid",
	models.ActivityConquest: "Conquest",
}

// SeedDefaults creates the default empty roster layout for a guild. It is
// idempotent: a guild that already has any group is left untouched.
func (s *Service) SeedDefaults(ctx context.Context, guildID primitive.ObjectID) error {
	unlock := s.lockGuild(guildID)
	defer unlock()

	groups, err := s.store.LoadGroups(ctx, guildID)
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}
	if len(groups) > 0 {
		return nil
	}
	parties, err := s.store.LoadParties(ctx, guildID)
	if err != nil {
		return fmt.Errorf("load parties: %w", err)
	}

	now := time.Now().UTC()
	for _, t := range models.ActivityTypes() {
		label := seedLabels[t]
		for gi := 1; gi <= seedGroupsPerActivity; gi++ {
			g := models.Group{
				ID:           primitive.NewObjectID(),
				GuildID:      guildID,
				Name:         fmt.Sprintf("%s Group %d", label, gi),
				ActivityType: t,
				PartyIDs:     []primitive.ObjectID{},
				Status:       "active",
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			g.NameCI = text.Fold(g.Name)
			for pi := 1; pi <= seedPartiesPerGroup; pi++ {
				p := models.Party{
					ID:           primitive.NewObjectID(),
					GuildID:      guildID,
					GroupID:      g.ID,
					Name:         fmt.Sprintf("%s Party %d-%d", label, gi, pi),
					ActivityType: t,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				p.NameCI = text.Fold(p.Name)
				g.PartyIDs = append(g.PartyIDs, p.ID)
				parties = append(parties, p)
			}
			groups = append(groups, g)
		}
	}

	if err := s.store.SaveGroups(ctx, guildID, groups); err != nil {
		return fmt.Errorf("save groups: %w", err)
	}
	if err := s.store.SaveParties(ctx, guildID, parties); err != nil {
		return fmt.Errorf("save parties: %w", err)
	}

	s.log.Info("seeded default rosters",
		zap.String("guild_id", guildID.Hex()),
		zap.Int("groups", len(groups)),
		zap.Int("parties", len(parties)))
	return nil
}
