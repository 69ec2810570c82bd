package roster_test

import (
	"context"
	"testing"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/store/rostermem"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*roster.Service, primitive.ObjectID) {
	t.Helper()
	return roster.New(rostermem.New(), zap.NewNop()), primitive.NewObjectID()
}

func mustCreateGroup(t *testing.T, svc *roster.Service, guildID primitive.ObjectID, name string, activity models.ActivityType) models.Group {
	t.Helper()
	g, err := svc.CreateGroup(context.Background(), roster.CreateGroupParams{
		GuildID:      guildID,
		Name:         name,
		ActivityType: activity,
	})
	if err != nil {
		t.Fatalf("CreateGroup(%s) failed: %v", name, err)
	}
	return g
}

func mustCreateParty(t *testing.T, svc *roster.Service, guildID primitive.ObjectID, group models.Group, name string) models.Party {
	t.Helper()
	p, err := svc.CreateParty(context.Background(), roster.CreatePartyParams{
		GuildID:      guildID,
		Name:         name,
		ActivityType: group.ActivityType,
		GroupID:      group.ID,
	})
	if err != nil {
		t.Fatalf("CreateParty(%s) failed: %v", name, err)
	}
	return p
}

func mustCreateMember(t *testing.T, svc *roster.Service, guildID primitive.ObjectID, name string) models.Member {
	t.Helper()
	m, err := svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: guildID,
		Name:    name,
		Class:   "warrior",
		Level:   60,
	})
	if err != nil {
		t.Fatalf("CreateMember(%s) failed: %v", name, err)
	}
	return m
}

func mustAssign(t *testing.T, svc *roster.Service, p roster.AssignParams) roster.AssignResult {
	t.Helper()
	res, err := svc.Assign(context.Background(), p)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	return res
}

func getParty(t *testing.T, svc *roster.Service, guildID, partyID primitive.ObjectID) models.Party {
	t.Helper()
	p, err := svc.GetParty(context.Background(), guildID, partyID)
	if err != nil {
		t.Fatalf("GetParty failed: %v", err)
	}
	return p
}

func getMember(t *testing.T, svc *roster.Service, guildID, memberID primitive.ObjectID) models.Member {
	t.Helper()
	m, err := svc.GetMember(context.Background(), guildID, memberID)
	if err != nil {
		t.Fatalf("GetMember failed: %v", err)
	}
	return m
}
