package members_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/guildroster/internal/app/features/members"
	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/store/rostermem"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/guildroster/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *roster.Service) {
	t.Helper()
	svc := roster.New(rostermem.New(), zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/guilds/{guildID}/members", members.Routes(members.NewHandler(svc, zap.NewNop())))
	return r, svc
}

func TestHandleCreateAndList(t *testing.T) {
	router, _ := newTestRouter(t)
	guildID := primitive.NewObjectID()

	body, _ := json.Marshal(map[string]any{
		"name":  "Thrain",
		"class": "paladin",
		"level": 58,
	})
	req := httptest.NewRequest("POST", "/guilds/"+guildID.Hex()+"/members", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	listReq := httptest.NewRequest("GET", "/guilds/"+guildID.Hex()+"/members", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	var got []models.Member
	if err := json.Unmarshal(listRec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Thrain" {
		t.Errorf("expected one member named Thrain, got %v", got)
	}
}

func TestHandleCreate_BlankName(t *testing.T) {
	router, _ := newTestRouter(t)
	guildID := primitive.NewObjectID()

	body, _ := json.Marshal(map[string]any{"name": "  "})
	req := httptest.NewRequest("POST", "/guilds/"+guildID.Hex()+"/members", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code == http.StatusCreated {
		t.Fatal("blank name should be rejected")
	}
}

func TestHandleView_DirectInvocation(t *testing.T) {
	svc := roster.New(rostermem.New(), zap.NewNop())
	handler := members.NewHandler(svc, zap.NewNop())
	guildID := primitive.NewObjectID()

	m, err := svc.CreateMember(context.Background(), roster.CreateMemberParams{
		GuildID: guildID, Name: "Thrain",
	})
	if err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/guilds/"+guildID.Hex()+"/members/"+m.ID.Hex(), nil)
	req = testutil.WithChiURLParams(req, map[string]string{
		"guildID":  guildID.Hex(),
		"memberID": m.ID.Hex(),
	})
	rec := httptest.NewRecorder()
	handler.HandleView(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var got models.Member
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != m.ID {
		t.Error("view should return the requested member")
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	guildID := primitive.NewObjectID()

	req := httptest.NewRequest("DELETE", "/guilds/"+guildID.Hex()+"/members/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
