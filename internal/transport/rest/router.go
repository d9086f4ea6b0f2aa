package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/transport/middleware"
)

// authenticator resolves a bearer token to its user.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Handlers groups every REST handler mounted by the router.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Item       *ItemHandler
	Collection *CollectionHandler
	Insight    *InsightHandler
	User       *UserHandler
	Export     *ExportHandler
}

// NewRouter builds the HTTP handler: probes at the root and the JSON API under /api.
func NewRouter(logger *slog.Logger, cfg config.Config, auth authenticator, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	if cfg.Server.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(chimw.RequestSize(cfg.Server.MaxBodyBytes))
	r.Use(middleware.RateLimitByIP(cfg.RateLimit.PerIP))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Health.Root)
		r.Get("/health", h.Health.Health)
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(
				middleware.Auth(auth, logger),
				middleware.RateLimitByUser(cfg.RateLimit),
			))

			r.Get("/auth/me", h.Auth.Me)
			r.Post("/extract-metadata", h.Item.ExtractMetadata)

			r.Route("/items", func(r chi.Router) {
				r.Post("/", h.Item.Create)
				r.Get("/", h.Item.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Item.Get)
					r.Put("/", h.Item.Update)
					r.Delete("/", h.Item.Delete)

					r.Post("/ai-summary", h.Insight.Summarize)
					r.Post("/extract-ideas", h.Insight.ExtractIdeas)
					r.Post("/smart-tags", h.Insight.SmartTags)
					r.Post("/apply-smart-tag", h.Insight.ApplySmartTag)
					r.Post("/action-items", h.Insight.ActionItems)
					r.Put("/action-items/{idx}/toggle", h.Insight.ToggleActionItem)
					r.Get("/suggest-collection", h.Insight.SuggestCollection)
				})
			})

			r.Get("/search", h.Item.Search)
			r.Get("/search/advanced", h.Item.AdvancedSearch)
			r.Get("/tags", h.Item.Tags)

			r.Route("/collections", func(r chi.Router) {
				r.Post("/", h.Collection.Create)
				r.Get("/", h.Collection.List)
				r.Put("/{id}", h.Collection.Rename)
				r.Delete("/{id}", h.Collection.Delete)
			})

			r.Get("/insights", h.Insight.Overview)
			r.Get("/resurfaced", h.Insight.Resurfaced)
			r.Get("/reminders", h.Insight.Reminders)

			r.Route("/users", func(r chi.Router) {
				r.Get("/preferences", h.User.Preferences)
				r.Put("/preferences", h.User.UpdatePreferences)
				r.Get("/plan", h.User.Plan)
				r.Post("/upgrade-pro", h.User.UpgradePro)
				r.Post("/cancel-pro", h.User.CancelPro)
			})

			r.Get("/export/vault", h.Export.Vault)
		})
	})

	return r
}
