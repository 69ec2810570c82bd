// internal/app/features/assignments/clearall.go
package assignments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.uber.org/zap"
)

// HandleClearAll serves POST /guilds/{guildID}/assignments/clear-all. It
// empties every party slot of the given activity type across the guild.
func (h *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var req clearAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}
	activity, err := models.ParseActivityType(req.ActivityType)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.ClearAll(ctx, guildID, activity); err != nil {
		h.Log.Warn("clear all assignments failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
