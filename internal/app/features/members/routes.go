// internal/app/features/members/routes.go
package members

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the member directory subrouter. It is mounted under
// /guilds/{guildID}/members.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Get("/{memberID}", h.HandleView)
	r.Patch("/{memberID}", h.HandleEdit)
	r.Delete("/{memberID}", h.HandleDelete)

	return r
}
