// internal/app/features/parties/edit.go
package parties

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleEdit serves PATCH /guilds/{guildID}/parties/{partyID}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}
	partyID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "partyID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad party id")
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}

	patch := roster.PartyPatch{Name: req.Name}
	if req.Slots != nil {
		slots, ok := parseSlots(*req.Slots)
		if !ok {
			httpjson.Error(w, http.StatusBadRequest, "bad slot member id")
			return
		}
		patch.Slots = &slots
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	party, err := h.Svc.UpdateParty(ctx, guildID, partyID, patch)
	if err != nil {
		h.Log.Warn("update party failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, party)
}
