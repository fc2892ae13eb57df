package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/logger"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/response"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/session"
)

type userKey struct{}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// RequireUser rejects requests without a valid session cookie with 401
func RequireUser(auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := auth.Authenticate(ctx, session.FromRequest(r))
			if err != nil {
				if errors.Is(err, entity.ErrUnauthenticated) || errors.Is(err, entity.ErrInvalidSession) {
					ctxzap.Debug(ctx, "request rejected", zap.Error(err))
					response.Error(w, http.StatusUnauthorized, "authentication required")
					return
				}
				ctxzap.Error(ctx, "failed to resolve session", zap.Error(err))
				response.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx = logger.AddFields(ctx, zap.String("user_id", user.ID))
			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by RequireUser
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey{}).(*entity.User)
	return user, ok && user != nil
}
