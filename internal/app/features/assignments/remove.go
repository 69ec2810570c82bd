// internal/app/features/assignments/remove.go
package assignments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleRemove serves POST /guilds/{guildID}/assignments/remove.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var req removeRequest
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	party, err := h.Svc.Remove(ctx, guildID, memberID, partyID, activity)
	if err != nil {
		h.Log.Warn("remove assignment failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, party)
}
