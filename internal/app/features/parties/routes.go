// internal/app/features/parties/routes.go
package parties

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the party registry subrouter. It is mounted under
// /guilds/{guildID}/parties.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Get("/{partyID}", h.HandleView)
	r.Get("/{partyID}/members", h.HandleViewWithMembers)
	r.Patch("/{partyID}", h.HandleEdit)
	r.Delete("/{partyID}", h.HandleDelete)

	return r
}
