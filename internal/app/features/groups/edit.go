// internal/app/features/groups/edit.go
package groups

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

// HandleEdit serves PATCH /guilds/{guildID}/groups/{groupID}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
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

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Svc.UpdateGroup(ctx, guildID, groupID, roster.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.Log.Warn("update group failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, group)
}
