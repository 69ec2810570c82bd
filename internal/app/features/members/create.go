// internal/app/features/members/create.go
package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/guildroster/internal/app/roster"
	rosterstore "github.com/dalemusser/guildroster/internal/app/store/roster"
	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate serves POST /guilds/{guildID}/members.
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Svc.CreateMember(ctx, roster.CreateMemberParams{
		GuildID: guildID,
		Name:    req.Name,
		Class:   req.Class,
		Level:   req.Level,
		Notes:   req.Notes,
	})
	if err != nil {
		if errors.Is(err, rosterstore.ErrDuplicateMemberName) {
			httpjson.Error(w, http.StatusConflict, "a member with that name already exists")
			return
		}
		h.Log.Warn("create member failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, member)
}
