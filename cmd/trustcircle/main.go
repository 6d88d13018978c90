package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/core/services"
	"github.com/tallmate/trust-circle/internal/handlers"
	"github.com/tallmate/trust-circle/internal/metrics"
	"github.com/tallmate/trust-circle/internal/middleware"
	"github.com/tallmate/trust-circle/internal/platform/auditing"
	"github.com/tallmate/trust-circle/internal/platform/config"
	"github.com/tallmate/trust-circle/internal/repositories/database/gormdb"
	"github.com/tallmate/trust-circle/internal/repositories/database/lifecycle"
	"github.com/tallmate/trust-circle/internal/repositories/database/pgsql"
	"github.com/tallmate/trust-circle/pkg/database"
	"github.com/ulule/limiter/v3"
)

// @title Trust Circle API
// @version 1.0
// @description Trust circle backend with automatic creation and update timestamps.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics(nil)
	activator := auditing.NewActivator(auditing.WithLogger(logger), auditing.WithRecorder(appMetrics))

	repos, closeDB, err := openRepositories(cfg, activator, logger)
	if err != nil {
		logger.Error("Failed to initialize persistence", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	var rateLimiter *limiter.Limiter
	if cfg.RateLimit != "" {
		rateLimiter, err = middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(repos), rateLimiter, appMetrics)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("db_driver", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		closeDB()
		os.Exit(1)
	}
}

// openRepositories connects the configured persistence layer and enables
// timestamp auditing on it before any repository is handed out.
func openRepositories(cfg *config.Config, activator *auditing.Activator, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DBDriver == config.DriverGorm {
		db, err := gormdb.Open(cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		registrar := gormdb.NewRegistrar(db, logger)
		activator.Enable(registrar)
		if err := registrar.Err(); err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("enable auditing: %w", err)
		}

		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return gormdb.NewRepositoryProvider(db), closeDB, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	hooks := lifecycle.New()
	activator.Enable(hooks)

	return pgsql.NewRepositoryProvider(dbPool, hooks), func() { database.ClosePgxPool(dbPool) }, nil
}
