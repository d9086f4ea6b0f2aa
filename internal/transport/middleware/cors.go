package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/stash-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing
// for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
