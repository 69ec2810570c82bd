// internal/app/features/assignments/assign.go
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

// assignResponse is the POST / reply. DisplacedMemberID is present only
// when the placement pushed another member out of the slot.
type assignResponse struct {
	Party             models.Party  `json:"party"`
	Member            models.Member `json:"member"`
	SlotIndex         int           `json:"slot_index"`
	DisplacedMemberID string        `json:"displaced_member_id,omitempty"`
}

// HandleAssign serves POST /guilds/{guildID}/assignments.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}
	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad member id")
		return
	}
	partyID, err := primitive.ObjectIDFromHex(req.PartyID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad party id")
		return
	}
	activity, err := models.ParseActivityType(req.ActivityType)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	slotIndex := -1
	if req.SlotIndex != nil {
		slotIndex = *req.SlotIndex
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, err := h.Svc.Assign(ctx, roster.AssignParams{
		GuildID:      guildID,
		MemberID:     memberID,
		PartyID:      partyID,
		ActivityType: activity,
		SlotIndex:    slotIndex,
		IsLeader:     req.IsLeader,
	})
	if err != nil {
		h.Log.Warn("assign failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}

	resp := assignResponse{
		Party:     res.Party,
		Member:    res.Member,
		SlotIndex: res.SlotIndex,
	}
	if !res.DisplacedMemberID.IsZero() {
		resp.DisplacedMemberID = res.DisplacedMemberID.Hex()
	}
	httpjson.Write(w, http.StatusOK, resp)
}
