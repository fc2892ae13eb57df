package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apidocs "github.com/leandroquiroga/interview-platform-ai/docs"
	authapi "github.com/leandroquiroga/interview-platform-ai/internal/api/auth"
	"github.com/leandroquiroga/interview-platform-ai/internal/api/docs"
	interviewapi "github.com/leandroquiroga/interview-platform-ai/internal/api/interview"
	"github.com/leandroquiroga/interview-platform-ai/internal/api/middleware"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/metrics"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/response"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	cfg RouterConfig,
	interviewHandler *interviewapi.Handler,
	authHandler *authapi.Handler,
	authenticator middleware.Authenticator,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(m.Middleware)
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, http.StatusOK, "healthy")
	})
	r.Handle("/metrics", m.Handler())

	docs.NewHandler(apidocs.SwaggerYAML).RegisterRoutes(r)

	requireUser := middleware.RequireUser(authenticator)
	interviewapi.RegisterRoutes(r, interviewHandler, requireUser)
	authapi.RegisterRoutes(r, authHandler, requireUser)

	return r
}
