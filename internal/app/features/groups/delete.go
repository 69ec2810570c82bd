// internal/app/features/groups/delete.go
package groups

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

// HandleDelete serves DELETE /guilds/{guildID}/groups/{groupID}. The
// group's parties are deleted first, clearing their occupants' assignment
// entries, before the group itself is removed.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad group id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.DeleteGroup(ctx, guildID, groupID); err != nil {
		h.Log.Warn("delete group failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
