// internal/app/features/assignments/swap.go
package assignments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// swapResponse is the POST /swap reply. Party2 repeats Party1 when both
// members sat in the same party.
type swapResponse struct {
	Party1 models.Party `json:"party1"`
	Party2 models.Party `json:"party2"`
}

// HandleSwap serves POST /guilds/{guildID}/assignments/swap.
func (h *Handler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}
	member1ID, err := primitive.ObjectIDFromHex(req.Member1ID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad member1 id")
		return
	}
	member2ID, err := primitive.ObjectIDFromHex(req.Member2ID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad member2 id")
		return
	}
	activity, err := models.ParseActivityType(req.ActivityType)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	slot1, slot2 := -1, -1
	if req.Slot1 != nil {
		slot1 = *req.Slot1
	}
	if req.Slot2 != nil {
		slot2 = *req.Slot2
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, err := h.Svc.Swap(ctx, roster.SwapParams{
		GuildID:       guildID,
		Member1ID:     member1ID,
		Member2ID:     member2ID,
		DeclaredSlot1: slot1,
		DeclaredSlot2: slot2,
		ActivityType:  activity,
	})
	if err != nil {
		h.Log.Warn("swap failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, swapResponse{
		Party1: res.Party1,
		Party2: res.Party2,
	})
}
