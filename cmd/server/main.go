package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/fdahk/Tjlogs/internal/config"
	"github.com/fdahk/Tjlogs/internal/infrastructure/database"
	"github.com/fdahk/Tjlogs/internal/logger"
	"github.com/fdahk/Tjlogs/internal/metrics"
	"github.com/fdahk/Tjlogs/internal/middleware"
	"github.com/fdahk/Tjlogs/internal/query"
	"github.com/fdahk/Tjlogs/internal/repository"
	"github.com/fdahk/Tjlogs/internal/service"
	"github.com/fdahk/Tjlogs/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	if err := logger.Configure(os.Stdout, cfg.Log.Format, cfg.Log.Level); err != nil {
		logger.Fatal("Failed to configure logger",
			slog.String("error", err.Error()))
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database.DatabaseURL(), cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(cfg.Metrics.PoolStatsInterval)
	defer poolStatsCollector.Stop()

	articleService := service.NewArticleService(
		repository.NewPostgresArticleRepository(pool),
		validator.NewValidator(),
		query.NewPager(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit),
	)

	if middleware.AllowsAllOrigins(cfg.Server.CORSOrigins) {
		logger.Warn("CORS accepts requests from every origin",
			slog.Any("cors_origins", cfg.Server.CORSOrigins))
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(cfg.Server, pool, articleService)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("prefix", cfg.Server.RoutePrefix),
			slog.String("version", cfg.Server.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
