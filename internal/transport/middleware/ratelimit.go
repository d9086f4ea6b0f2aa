package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/pkg/ctxutil"
)

// RateLimitByIP limits requests per client IP per minute. A limit of 0 or
// less disables limiting.
func RateLimitByIP(perMinute int) Middleware {
	if perMinute <= 0 {
		return passthrough
	}
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(tooManyRequests),
	)
}

// RateLimitByUser limits requests per authenticated user with separate
// budgets for free and pro plans. Must run after Auth; requests without a
// user fall back to the client IP.
func RateLimitByUser(cfg config.RateLimitConfig) Middleware {
	free := userLimiter(cfg.PerUserFree)
	pro := userLimiter(cfg.PerUserPro)

	return func(next http.Handler) http.Handler {
		freeNext, proNext := next, next
		if free != nil {
			freeNext = free.Handler(next)
		}
		if pro != nil {
			proNext = pro.Handler(next)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctxutil.IsProCtx(r.Context()) {
				proNext.ServeHTTP(w, r)
				return
			}
			freeNext.ServeHTTP(w, r)
		})
	}
}

func userLimiter(perMinute int) *httprate.RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return httprate.NewRateLimiter(perMinute, time.Minute,
		httprate.WithKeyFuncs(keyByUser),
		httprate.WithLimitHandler(tooManyRequests),
	)
}

func keyByUser(r *http.Request) (string, error) {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String(), nil
	}
	return httprate.KeyByIP(r)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusTooManyRequests, "Too many requests")
}

func passthrough(next http.Handler) http.Handler { return next }
