package rosterstore_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/guildroster/internal/app/roster"
	rosterstore "github.com/dalemusser/guildroster/internal/app/store/roster"
	"github.com/dalemusser/guildroster/internal/app/system/indexes"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/guildroster/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestStore_SaveLoadGroups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	guildID := primitive.NewObjectID()
	fx := testutil.NewFixtures(t, db)
	fx.CreateGroup(ctx, guildID, "Raid Group 1", models.ActivityRaid)
	fx.CreateGroup(ctx, guildID, "Raid Group 2", models.ActivityRaid)
	fx.CreateGroup(ctx, primitive.NewObjectID(), "Other Guild Group", models.ActivityRaid)

	groups, err := store.LoadGroups(ctx, guildID)
	if err != nil {
		t.Fatalf("LoadGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for the guild, got %d", len(groups))
	}
}

func TestStore_SaveGroupsReplacesList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	guildID := primitive.NewObjectID()
	fx := testutil.NewFixtures(t, db)
	old := fx.CreateGroup(ctx, guildID, "Raid Group 1", models.ActivityRaid)

	replacement := old
	replacement.ID = primitive.NewObjectID()
	replacement.Name = "Raid Group 2"
	if err := store.SaveGroups(ctx, guildID, []models.Group{replacement}); err != nil {
		t.Fatalf("SaveGroups failed: %v", err)
	}

	groups, err := store.LoadGroups(ctx, guildID)
	if err != nil {
		t.Fatalf("LoadGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group after replacement, got %d", len(groups))
	}
	if groups[0].ID != replacement.ID {
		t.Error("old list should be fully replaced")
	}
}

func TestStore_SavePartiesPreservesSlots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	guildID := primitive.NewObjectID()
	memberID := primitive.NewObjectID()

	party := models.Party{
		ID:           primitive.NewObjectID(),
		GuildID:      guildID,
		Name:         "Raid Party 1",
		ActivityType: models.ActivityRaid,
		LeaderID:     memberID,
	}
	party.Slots[0] = memberID
	if err := store.SaveParties(ctx, guildID, []models.Party{party}); err != nil {
		t.Fatalf("SaveParties failed: %v", err)
	}

	parties, err := store.LoadParties(ctx, guildID)
	if err != nil {
		t.Fatalf("LoadParties failed: %v", err)
	}
	if len(parties) != 1 {
		t.Fatalf("expected 1 party, got %d", len(parties))
	}
	if parties[0].Slots[0] != memberID {
		t.Error("slot array did not survive the round trip")
	}
	for i := 1; i < models.PartySlotCount; i++ {
		if parties[0].Slots[i] != primitive.NilObjectID {
			t.Errorf("slot %d should be empty", i)
		}
	}
}

func TestStore_SaveMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	guildID := primitive.NewObjectID()
	fx := testutil.NewFixtures(t, db)
	m := fx.CreateMember(ctx, guildID, "Thrain")

	name := "Thrain the Bold"
	asn := map[models.ActivityType]models.Assignment{
		models.ActivityRaid: {PartyID: primitive.NewObjectID(), IsLeader: true},
	}
	got, err := store.SaveMember(ctx, guildID, m.ID, roster.MemberPatch{
		Name:        &name,
		Assignments: &asn,
	})
	if err != nil {
		t.Fatalf("SaveMember failed: %v", err)
	}
	if got.Name != name {
		t.Errorf("name = %q, want %q", got.Name, name)
	}
	if !got.Assignments[models.ActivityRaid].IsLeader {
		t.Error("assignments patch was not applied")
	}
	if got.Class != m.Class {
		t.Error("unpatched fields must be preserved")
	}
}

func TestStore_SaveMember_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "Ghost"
	_, err := store.SaveMember(ctx, primitive.NewObjectID(), primitive.NewObjectID(), roster.MemberPatch{Name: &name})
	if !errors.Is(err, roster.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_InsertMember_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	guildID := primitive.NewObjectID()
	fx := testutil.NewFixtures(t, db)
	first := fx.CreateMember(ctx, guildID, "Thrain")

	dup := first
	dup.ID = primitive.NewObjectID()
	err := store.InsertMember(ctx, dup)
	if !errors.Is(err, rosterstore.ErrDuplicateMemberName) {
		t.Fatalf("expected ErrDuplicateMemberName, got %v", err)
	}

	// Same name in another guild is fine.
	other := first
	other.ID = primitive.NewObjectID()
	other.GuildID = primitive.NewObjectID()
	if err := store.InsertMember(ctx, other); err != nil {
		t.Fatalf("insert into another guild failed: %v", err)
	}
}

func TestStore_DeleteMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	guildID := primitive.NewObjectID()
	fx := testutil.NewFixtures(t, db)
	m := fx.CreateMember(ctx, guildID, "Thrain")

	if err := store.DeleteMember(ctx, guildID, m.ID); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}
	if err := store.DeleteMember(ctx, guildID, m.ID); !errors.Is(err, roster.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
