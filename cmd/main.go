package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adboard/internal/adapter/memstore"
	"adboard/internal/adapter/postgres"
	"adboard/internal/adapter/redisstore"
	"adboard/internal/adapter/usecase"
	"adboard/internal/config"
	"adboard/internal/core/port"
	"adboard/internal/db"
	"adboard/internal/jobs"

	httpadapter "adboard/internal/adapter/http"
)

// main is the entry point of the adboard service. It loads configuration,
// optionally runs database migrations and seeds demo data, initializes the
// database pool, snapshot store and usecases, then starts the HTTP server
// and the periodic stats refresher. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	// The snapshot store prefers Redis; when it is unreachable the
	// dashboard still works, it just loses its change baseline on restart.
	var snapshots port.SnapshotStore
	if client, err := db.NewRedisClient(ctx, cfg.Redis); err != nil {
		logger.Warn("redis not available, using in-memory snapshot store", slog.Any("error", err))
		snapshots = memstore.New()
	} else {
		defer client.Close()
		snapshots = redisstore.New(client)
	}

	repo := postgres.NewCampaignRepository(pool)
	stats := usecase.NewStatsService(repo, snapshots, logger)
	reports := usecase.NewReportService(repo)
	campaigns := usecase.NewCampaignService(repo)

	if cfg.Refresh.Enabled {
		refresher := jobs.NewRefresher(stats, logger, cfg.Refresh.Interval)
		if err = refresher.Start(); err != nil {
			logger.Error("failed to start stats refresher", slog.Any("error", err))
			os.Exit(1)
		}
		defer refresher.Stop()
	}

	handler := httpadapter.NewHandler(stats, reports, campaigns, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
