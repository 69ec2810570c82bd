// internal/app/features/parties/delete.go
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

// HandleDelete serves DELETE /guilds/{guildID}/parties/{partyID}. Clears
// every occupant's assignment entry for the party's activity type and
// unlinks the party from its owning group.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.DeleteParty(ctx, guildID, partyID); err != nil {
		h.Log.Warn("delete party failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
