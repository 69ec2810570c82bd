package assignments_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/guildroster/internal/app/features/assignments"
	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/store/rostermem"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testEnv struct {
	router  http.Handler
	svc     *roster.Service
	guildID primitive.ObjectID
	party   models.Party
	member  models.Member
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	svc := roster.New(rostermem.New(), zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/guilds/{guildID}/assignments", assignments.Routes(assignments.NewHandler(svc, zap.NewNop())))

	guildID := primitive.NewObjectID()
	ctx := context.Background()
	group, err := svc.CreateGroup(ctx, roster.CreateGroupParams{
		GuildID: guildID, Name: "Raid Group 1", ActivityType: models.ActivityRaid,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	party, err := svc.CreateParty(ctx, roster.CreatePartyParams{
		GuildID: guildID, Name: "Raid Party 1", ActivityType: models.ActivityRaid, GroupID: group.ID,
	})
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	member, err := svc.CreateMember(ctx, roster.CreateMemberParams{
		GuildID: guildID, Name: "Thrain",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	return &testEnv{router: r, svc: svc, guildID: guildID, party: party, member: member}
}

func (e *testEnv) post(t *testing.T, path string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", "/guilds/"+e.guildID.Hex()+"/assignments"+path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleAssign(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
		"is_leader":     true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		SlotIndex         int          `json:"slot_index"`
		Party             models.Party `json:"party"`
		DisplacedMemberID string       `json:"displaced_member_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SlotIndex != 0 {
		t.Errorf("slot_index = %d, want 0 for a leader", resp.SlotIndex)
	}
	if resp.Party.LeaderID != env.member.ID {
		t.Error("party leader should be the assigned member")
	}
	if resp.DisplacedMemberID != "" {
		t.Error("no displacement expected on an empty party")
	}
}

func TestHandleAssign_ReportsDisplacement(t *testing.T) {
	env := newTestEnv(t)
	other, err := env.svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: env.guildID, Name: "Sylvara",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	env.post(t, "", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
		"slot_index":    2,
	})
	rec := env.post(t, "", map[string]any{
		"member_id":     other.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
		"slot_index":    2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		DisplacedMemberID string `json:"displaced_member_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DisplacedMemberID != env.member.ID.Hex() {
		t.Errorf("displaced_member_id = %q, want %q", resp.DisplacedMemberID, env.member.ID.Hex())
	}
}

func TestHandleAssign_UnknownParty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      primitive.NewObjectID().Hex(),
		"activity_type": "raid",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleRemove(t *testing.T) {
	env := newTestEnv(t)

	env.post(t, "", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
	})
	rec := env.post(t, "/remove", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var party models.Party
	if err := json.Unmarshal(rec.Body.Bytes(), &party); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if party.SlotOf(env.member.ID) >= 0 {
		t.Error("member should no longer occupy a slot")
	}
}

func TestHandleRemove_NotAssigned(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/remove", map[string]any{
		"member_id":     env.member.ID.Hex(),
		"party_id":      env.party.ID.Hex(),
		"activity_type": "raid",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleSwap_PositionMismatch(t *testing.T) {
	env := newTestEnv(t)
	other, err := env.svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: env.guildID, Name: "Sylvara",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	env.post(t, "", map[string]any{
		"member_id": env.member.ID.Hex(), "party_id": env.party.ID.Hex(),
		"activity_type": "raid", "slot_index": 1,
	})
	env.post(t, "", map[string]any{
		"member_id": other.ID.Hex(), "party_id": env.party.ID.Hex(),
		"activity_type": "raid", "slot_index": 2,
	})

	rec := env.post(t, "/swap", map[string]any{
		"member1_id":    env.member.ID.Hex(),
		"member2_id":    other.ID.Hex(),
		"slot1":         4, // stale
		"activity_type": "raid",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

func TestHandleSwap(t *testing.T) {
	env := newTestEnv(t)
	other, err := env.svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: env.guildID, Name: "Sylvara",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	env.post(t, "", map[string]any{
		"member_id": env.member.ID.Hex(), "party_id": env.party.ID.Hex(),
		"activity_type": "raid", "is_leader": true,
	})
	env.post(t, "", map[string]any{
		"member_id": other.ID.Hex(), "party_id": env.party.ID.Hex(),
		"activity_type": "raid", "slot_index": 3,
	})

	rec := env.post(t, "/swap", map[string]any{
		"member1_id":    env.member.ID.Hex(),
		"member2_id":    other.ID.Hex(),
		"activity_type": "raid",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Party1 models.Party `json:"party1"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Party1.LeaderID != other.ID {
		t.Error("leadership should follow the member who landed in slot 0")
	}
}

func TestHandleClearAll(t *testing.T) {
	env := newTestEnv(t)

	env.post(t, "", map[string]any{
		"member_id": env.member.ID.Hex(), "party_id": env.party.ID.Hex(),
		"activity_type": "raid", "is_leader": true,
	})

	rec := env.post(t, "/clear-all", map[string]any{"activity_type": "raid"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	party, err := env.svc.GetParty(context.Background(), env.guildID, env.party.ID)
	if err != nil {
		t.Fatalf("GetParty failed: %v", err)
	}
	if party.OccupiedCount() != 0 {
		t.Error("party should be empty after clear-all")
	}
}

func TestHandleAssign_BadBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/guilds/"+env.guildID.Hex()+"/assignments", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
