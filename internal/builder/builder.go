package builder

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unidoc/unioffice/common/license"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/api"
	authapi "github.com/leandroquiroga/interview-platform-ai/internal/api/auth"
	interviewapi "github.com/leandroquiroga/interview-platform-ai/internal/api/interview"
	"github.com/leandroquiroga/interview-platform-ai/internal/config"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/cover"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/formatter"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/logger"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/metrics"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/session"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/validator"
	"github.com/leandroquiroga/interview-platform-ai/internal/repository"
	"github.com/leandroquiroga/interview-platform-ai/internal/usecase/auth"
	"github.com/leandroquiroga/interview-platform-ai/internal/usecase/interview"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("llm_provider", cfg.LLMProvider()),
	)

	if cfg.UnidocLicenseKey != "" {
		if err := license.SetMeteredKey(cfg.UnidocLicenseKey); err != nil {
			log.Warn("DOCX export license rejected", zap.Error(err))
		}
	} else {
		log.Warn("UNIDOC_LICENSE_KEY is not set, DOCX export will fail")
	}

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	log.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Database migrations completed successfully")

	interviewRepo := repository.NewInterviewPostgres(db)
	questionSetRepo := repository.NewQuestionSetPostgres(db)
	userRepo := repository.NewUserPostgres(db)
	log.Info("Repositories initialized")

	generator, err := setupGenerator(ctx, cfg, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup generator: %w", err)
	}

	sessions, err := session.NewCodec(cfg.SessionCfg.Secret, cfg.SessionCfg.TTL, cfg.SessionCfg.SecureCookie)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup sessions: %w", err)
	}

	m := metrics.New()
	v := validator.New()

	interviewUC := interview.NewUsecase(
		interviewRepo,
		questionSetRepo,
		generator,
		cover.NewRandomPicker(),
		formatter.NewFactory(),
		v,
		interview.WithMetrics(m),
	)
	authUC := auth.NewUsecase(userRepo, sessions, v, cfg.UserCacheTTL)
	log.Info("Use cases initialized")

	router := api.SetupRouter(
		api.RouterConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		},
		interviewapi.NewHandler(interviewUC),
		authapi.NewHandler(authUC, sessions),
		authUC,
		m,
		log,
	)
	log.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	app := &App{
		server: server,
		logger: log,
	}
	app.onClose("database pool", db.Close)

	return app, nil
}
