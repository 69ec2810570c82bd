package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateMember(t *testing.T) {
	svc, guildID := newTestService(t)

	m, err := svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: guildID,
		Name:    "Thrain",
		Class:   "paladin",
		Level:   58,
		Notes:   "mains a healer offspec",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	if m.ID.IsZero() {
		t.Error("expected a generated id")
	}
	if len(m.Assignments) != 0 {
		t.Error("new member should have no assignments")
	}
}

func TestCreateMember_RequiresName(t *testing.T) {
	svc, guildID := newTestService(t)

	_, err := svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: guildID,
		Name:    "   ",
	})
	if err == nil {
		t.Fatal("expected an error for a blank name")
	}
}

func TestUpdateMember_CannotTouchAssignments(t *testing.T) {
	svc, guildID := newTestService(t)
	group := mustCreateGroup(t, svc, guildID, "Raid Group 1", models.ActivityRaid)
	party := mustCreateParty(t, svc, guildID, group, "Raid Party 1")
	member := mustCreateMember(t, svc, guildID, "Thrain")

	mustAssign(t, svc, roster.AssignParams{
		GuildID: guildID, MemberID: member.ID, PartyID: party.ID,
		ActivityType: models.ActivityRaid, SlotIndex: -1,
	})

	name := "Thrain the Bold"
	level := 60
	forged := map[models.ActivityType]models.Assignment{}
	updated, err := svc.UpdateMember(context.Background(), guildID, member.ID, roster.MemberPatch{
		Name:        &name,
		Level:       &level,
		Assignments: &forged,
	})
	if err != nil {
		t.Fatalf("UpdateMember failed: %v", err)
	}

	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	if updated.Level != level {
		t.Errorf("level = %d, want %d", updated.Level, level)
	}
	// The forged assignments map must have been discarded.
	if _, ok := updated.Assignments[models.ActivityRaid]; !ok {
		t.Error("directory update must not clear engine-owned assignments")
	}
}

func TestUpdateMember_NotFound(t *testing.T) {
	svc, guildID := newTestService(t)

	name := "Ghost"
	_, err := svc.UpdateMember(context.Background(), guildID, primitive.NewObjectID(), roster.MemberPatch{Name: &name})
	if !errors.Is(err, roster.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMember_ClearsSlotsInBothActivities(t *testing.T) {
	svc, guildID := newTestService(t)
	raidGroup := mustCreateGroup(t, svc, guildID, "Raid Group 1", models.ActivityRaid)
	conqGroup := mustCreateGroup(t, svc, guildID, "Conquest Group 1", models.ActivityConquest)
	raidParty := mustCreateParty(t, svc, guildID, raidGroup, "Raid Party 1")
	conqParty := mustCreateParty(t, svc, guildID, conqGroup, "Conquest Party 1")
	member := mustCreateMember(t, svc, guildID, "Thrain")

	mustAssign(t, svc, roster.AssignParams{
		GuildID: guildID, MemberID: member.ID, PartyID: raidParty.ID,
		ActivityType: models.ActivityRaid, SlotIndex: -1, IsLeader: true,
	})
	mustAssign(t, svc, roster.AssignParams{
		GuildID: guildID, MemberID: member.ID, PartyID: conqParty.ID,
		ActivityType: models.ActivityConquest, SlotIndex: 2,
	})

	if err := svc.DeleteMember(context.Background(), guildID, member.ID); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}

	if _, err := svc.GetMember(context.Background(), guildID, member.ID); !errors.Is(err, roster.ErrNotFound) {
		t.Error("deleted member should be gone from the directory")
	}

	rp := getParty(t, svc, guildID, raidParty.ID)
	if rp.SlotOf(member.ID) >= 0 {
		t.Error("raid slot should be cleared")
	}
	if rp.LeaderID != primitive.NilObjectID {
		t.Error("raid leadership should be cleared")
	}
	cp := getParty(t, svc, guildID, conqParty.ID)
	if cp.SlotOf(member.ID) >= 0 {
		t.Error("conquest slot should be cleared")
	}
}

func TestDeleteMember_NotFound(t *testing.T) {
	svc, guildID := newTestService(t)

	err := svc.DeleteMember(context.Background(), guildID, primitive.NewObjectID())
	if !errors.Is(err, roster.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMembers_ScopedToGuild(t *testing.T) {
	svc, guildID := newTestService(t)
	otherGuild := primitive.NewObjectID()
	mustCreateMember(t, svc, guildID, "Thrain")
	mustCreateMember(t, svc, guildID, "Sylvara")
	mustCreateMember(t, svc, otherGuild, "Outsider")

	got, err := svc.ListMembers(context.Background(), guildID)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 members, got %d", len(got))
	}
}
