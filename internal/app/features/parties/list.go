// internal/app/features/parties/list.go
package parties

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/guildroster/internal/app/system/guildparam"
	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/dalemusser/guildroster/internal/app/system/timeouts"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList serves GET /guilds/{guildID}/parties, optionally filtered by
// ?activity=raid|conquest.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildparam.FromRequest(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "bad guild id")
		return
	}

	var filter *models.ActivityType
	if raw := strings.TrimSpace(r.URL.Query().Get("activity")); raw != "" {
		t, err := models.ParseActivityType(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		filter = &t
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	parties, err := h.Svc.ListParties(ctx, guildID, filter)
	if err != nil {
		h.Log.Warn("list parties failed", zap.Error(err))
		httpjson.WriteRosterError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, parties)
}
