// internal/app/features/members/edit.go
package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/roster"
	rosterstore "github.com/dalemusser/guildroster/internal/app/store/roster"
	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleEdit serves PATCH /guilds/{guildID}/members/{memberID}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
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

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Svc.UpdateMember(ctx, guildID, memberID, roster.MemberPatch{
		Name:  req.Name,
		Class: req.Class,
		Level: req.Level,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, rosterstore.ErrDuplicateMemberName) {
			httpjson.Error(w, http.StatusConflict, "a member with that name already exists")
			return
		}
		h.Log.Warn("update member failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, member)
}
