package roster_test

import (
	"context"
	"testing"

	"github.com/dalemusser/guildroster/internal/domain/models"
)

func TestSeedDefaults(t *testing.T) {
	svc, guildID := newTestService(t)

	if err := svc.SeedDefaults(context.Background(), guildID); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	groups, err := svc.ListGroups(context.Background(), guildID, nil)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 8 {
		t.Fatalf("expected 8 seeded groups, got %d", len(groups))
	}

	perType := map[models.ActivityType]int{}
	for _, g := range groups {
		perType[g.ActivityType]++
		if len(g.PartyIDs) != models.MaxPartiesPerGroup {
			t.Errorf("group %s owns %d parties, want %d", g.Name, len(g.PartyIDs), models.MaxPartiesPerGroup)
		}
	}
	if perType[models.ActivityRaid] != 4 || perType[models.ActivityConquest] != 4 {
		t.Errorf("expected 4 groups per activity type, got %v", perType)
	}

	parties, err := svc.ListParties(context.Background(), guildID, nil)
	if err != nil {
		t.Fatalf("ListParties failed: %v", err)
	}
	if len(parties) != 40 {
		t.Fatalf("expected 40 seeded parties, got %d", len(parties))
	}
	for _, p := range parties {
		if p.OccupiedCount() != 0 {
			t.Errorf("seeded party %s should be empty", p.Name)
		}
	}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	svc, guildID := newTestService(t)

	if err := svc.SeedDefaults(context.Background(), guildID); err != nil {
		t.Fatalf("first SeedDefaults failed: %v", err)
	}
	if err := svc.SeedDefaults(context.Background(), guildID); err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}

	groups, err := svc.ListGroups(context.Background(), guildID, nil)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 8 {
		t.Errorf("reseeding must not duplicate groups, got %d", len(groups))
	}
}
