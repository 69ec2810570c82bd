// internal/app/features/parties/view.go
package parties

import (
	"context"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleView serves GET /guilds/{guildID}/parties/{partyID}.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	party, err := h.Svc.GetParty(ctx, guildID, partyID)
	if err != nil {
		h.Log.Warn("get party failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, party)
}

// HandleViewWithMembers serves GET /guilds/{guildID}/parties/{partyID}/members:
// the party with every occupied slot and the leader resolved to full member
// records.
func (h *Handler) HandleViewWithMembers(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	resolved, err := h.Svc.GetPartyWithMembers(ctx, guildID, partyID)
	if err != nil {
		h.Log.Warn("get party with members failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}

	resp := withMembersResponse{
		Party:  resolved.Party,
		Leader: resolved.Leader,
	}
	for slot, m := range resolved.Members {
		if m != nil {
			resp.Members = append(resp.Members, memberView{Slot: slot, Member: m})
		}
	}
	httpjson.Write(w, http.StatusOK, resp)
}
