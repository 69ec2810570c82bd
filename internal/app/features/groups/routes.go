// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the group registry subrouter. It is mounted under
// /guilds/{guildID}/groups.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	// One-time default roster layout for a fresh guild.
	r.Post("/seed-defaults", h.HandleSeedDefaults)

	r.Get("/{groupID}", h.HandleView)
	r.Patch("/{groupID}", h.HandleEdit)
	r.Delete("/{groupID}", h.HandleDelete)

	return r
}
