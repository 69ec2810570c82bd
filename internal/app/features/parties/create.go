// internal/app/features/parties/create.go
package parties

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate serves POST /guilds/{guildID}/parties.
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

	groupID := primitive.NilObjectID
	if req.GroupID != "" {
		groupID, err = primitive.ObjectIDFromHex(req.GroupID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "bad group id")
			return
		}
	}
	slots, ok := parseSlots(req.Slots)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad slot member id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	party, err := h.Svc.CreateParty(ctx, roster.CreatePartyParams{
		GuildID:      guildID,
		Name:         req.Name,
		ActivityType: activity,
		GroupID:      groupID,
		Slots:        slots,
	})
	if err != nil {
		h.Log.Warn("create party failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, party)
}
