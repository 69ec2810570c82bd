// internal/app/features/members/delete.go
package members

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

// HandleDelete serves DELETE /guilds/{guildID}/members/{memberID}. The
// member is removed from any party slot they occupy before the directory
// record is deleted.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}
	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "memberID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad member id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.DeleteMember(ctx, guildID, memberID); err != nil {
		h.Log.Warn("delete member failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
