// internal/app/features/assignments/routes.go
package assignments

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the assignment engine subrouter. It is mounted under
// /guilds/{guildID}/assignments.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleAssign)
	r.Post("/remove", h.HandleRemove)
	r.Post("/swap", h.HandleSwap)
	r.Post("/clear-all", h.HandleClearAll)

	return r
}
