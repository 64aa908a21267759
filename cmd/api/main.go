// Package main is the entrypoint for the Ticklist API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ticklist/ticklist/internal/audit"
	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/credential"
	"github.com/ticklist/ticklist/internal/handler"
	"github.com/ticklist/ticklist/internal/metrics"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/router"
	"github.com/ticklist/ticklist/internal/server"
)

func main() {
	ctx := context.Background()

	// A local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Persistent todo store, provisioned on first run
	repo, err := repository.New(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("error", err.Error()),
			slog.String("database_path", cfg.DatabasePath),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("database ready", "path", cfg.DatabasePath)

	metricsRecorder := metrics.NewInMemory()

	// Audit log writer (append-only, drained on shutdown)
	auditWriter, err := audit.NewWriter(cfg.AuditLogPath, logger, metricsRecorder)
	if err != nil {
		logger.Error("failed to open audit log",
			slog.String("error", err.Error()),
			slog.String("audit_log_path", cfg.AuditLogPath),
		)
		os.Exit(1)
	}
	logger.Info("audit log ready", "path", cfg.AuditLogPath)

	// In-memory credential store, optionally seeded from config
	creds := credential.NewStore()
	if username, password, ok := cfg.GetSeedUser(); ok {
		if err := creds.Create(username, password); err != nil {
			logger.Error("failed to seed user", "error", err)
			os.Exit(1)
		}
		logger.Info("seeded user", "username", username)
	}

	tokens := auth.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)

	r := router.New(router.Deps{
		Base:   handler.New(),
		Auth:   handler.NewAuthHandler(creds, tokens, logger, metricsRecorder),
		Todos:  handler.NewTodoHandler(repo, logger, metricsRecorder),
		Health: handler.NewHealthHandler(repo),
		Audit:  auditWriter,
		Tokens: tokens,
		Config: cfg,
		Logger: logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("audit writer", func(ctx context.Context) error {
		return auditWriter.Close()
	})
	srv.OnShutdown("todo store", func(ctx context.Context) error {
		return repo.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
