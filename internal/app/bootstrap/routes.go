// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	assignmentsfeature "github.com/dalemusser/guildroster/internal/app/features/assignments"
	groupsfeature "github.com/dalemusser/guildroster/internal/app/features/groups"
	healthfeature "github.com/dalemusser/guildroster/internal/app/features/health"
	membersfeature "github.com/dalemusser/guildroster/internal/app/features/members"
	partiesfeature "github.com/dalemusser/guildroster/internal/app/features/parties"
	"github.com/dalemusser/guildroster/internal/app/roster"
	rosterstore "github.com/dalemusser/guildroster/internal/app/store/roster"
	"github.com/dalemusser/guildroster/internal/app/system/ratelimit"
	"github.com/dalemusser/guildroster/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. GuildRoster mounts a JSON API: the
// health endpoint plus the roster feature routers, all scoped by guild id.
//
// Authentication and per-resource permission checks belong to the layer in
// front of this service and are intentionally absent here.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := rosterstore.New(deps.GuildRosterMongoDatabase)
	svc := roster.New(store, logger)

	r := chi.NewRouter()

	// Correlation id for every request, logged by the feature handlers.
	r.Use(requestid.Middleware)

	// Roster mutations are bursty when guild officers reshuffle; cap per
	// client rather than per guild so one busy guild cannot starve another.
	r.Use(ratelimit.Middleware(ratelimit.New(300, time.Minute)))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.GuildRosterMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Group registry
	groupsHandler := groupsfeature.NewHandler(svc, logger)
	r.Mount("/guilds/{guildID}/groups", groupsfeature.Routes(groupsHandler))

	// Party registry
	partiesHandler := partiesfeature.NewHandler(svc, logger)
	r.Mount("/guilds/{guildID}/parties", partiesfeature.Routes(partiesHandler))

	// Member directory
	membersHandler := membersfeature.NewHandler(svc, logger)
	r.Mount("/guilds/{guildID}/members", membersfeature.Routes(membersHandler))

	// Assignment engine
	assignHandler := assignmentsfeature.NewHandler(svc, logger)
	r.Mount("/guilds/{guildID}/assignments", assignmentsfeature.Routes(assignHandler))

	return r, nil
}
