// internal/app/features/groups/create.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate serves POST /guilds/{guildID}/groups.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	activity, err := models.ParseActivityType(req.ActivityType)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Svc.CreateGroup(ctx, roster.CreateGroupParams{
		GuildID:      guildID,
		Name:         req.Name,
		ActivityType: activity,
		Description:  req.Description,
	})
	if err != nil {
		h.Log.Warn("create group failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, group)
}

// HandleSeedDefaults serves POST /guilds/{guildID}/groups/seed-defaults:
// the one-time default roster bootstrap for a fresh guild. Idempotent; a
// guild that already has groups is left untouched.
func (h *Handler) HandleSeedDefaults(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.SeedDefaults(ctx, guildID); err != nil {
		h.Log.Warn("seed defaults failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
