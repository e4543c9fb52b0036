package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/core/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/handlers"
	"github.com/SscSPs/municipal_approval_app/internal/middleware"
	"github.com/SscSPs/municipal_approval_app/internal/notifications"
	"github.com/SscSPs/municipal_approval_app/internal/observability"
	"github.com/SscSPs/municipal_approval_app/internal/platform/config"
	"github.com/SscSPs/municipal_approval_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/municipal_approval_app/internal/repositories/memory"
	"github.com/SscSPs/municipal_approval_app/internal/utils"
	"github.com/SscSPs/municipal_approval_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Municipal Approval API
// @version 1.0
// @description Approval workflow for municipal administrations joining the programme.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  "municipal-approval-backend",
		Environment:  environment(cfg),
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	composer, err := notifications.NewComposer(notifications.Signature{
		Name:         cfg.EmailSignatureName,
		ContactPhone: cfg.EmailContactPhone,
		ContactEmail: cfg.EmailFrom,
	})
	if err != nil {
		logger.Error("Failed to load email templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(repos, services.Collaborators{
		Notifier: setupNotifier(cfg, logger),
		Composer: composer,
		Config:   cfg,
		Tracker:  posthogClient,
	})

	if err := dto.RegisterValidations(); err != nil {
		logger.Error("Failed to register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	limiterInstance, err := middleware.NewLimiter(cfg.RateLimit, setupRedis(cfg, logger))
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.TracingMiddleware(),
		middleware.MetricsMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "X-Coordinator-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(limiterInstance),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Failed to flush traces", slog.String("error", err.Error()))
	}
}

// setupRepositories connects to PostgreSQL and migrates it. Without a
// database URL the in-memory store is used instead.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL is empty, using the in-memory store. Data will not survive a restart.")
		return memory.NewStore().Provider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
	if err != nil {
		database.ClosePgxPool(dbPool)
		return repositories.RepositoryProvider{}, nil, err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func setupNotifier(cfg *config.Config, logger *slog.Logger) portssvc.Notifier {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP_HOST is empty, emails will only be logged.")
		return notifications.LogSender{}
	}
	return notifications.NewSMTPSender(notifications.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})
}

// setupRedis returns nil when no Redis is configured so the limiter keeps its
// counters in process.
func setupRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("Invalid REDIS_URL, falling back to in-process rate limiting", slog.String("error", err.Error()))
		return nil
	}
	return redis.NewClient(opts)
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func environment(cfg *config.Config) string {
	if cfg.IsProduction {
		return "production"
	}
	return "development"
}
