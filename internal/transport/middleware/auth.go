package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type userKey struct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	ctx = ctxutil.WithUserID(ctx, u.ID)
	ctx = ctxutil.WithPro(ctx, u.HasPro())
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromCtx returns the user stored by Auth.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)
	return u, ok && u != nil
}

// Auth requires a valid bearer token and resolves it to the current user.
func Auth(a authenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := a.Authenticate(r.Context(), token)
			if err != nil {
				status, msg := authFailure(err)
				if status == http.StatusInternalServerError {
					logger.ErrorContext(r.Context(), "authenticate", slog.String("error", err.Error()))
				}
				writeDetail(w, status, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, domain.ErrUserGone):
		return http.StatusUnauthorized, "User not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid token"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
