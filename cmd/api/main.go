package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/probox/probox-api/internal/config"
	"github.com/probox/probox-api/internal/crypto"
	"github.com/probox/probox-api/internal/handler"
	"github.com/probox/probox-api/internal/repository"
	"github.com/probox/probox-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.SecretIsDefault() {
		slog.Warn("JWT_SECRET is not set, tokens are signed with the built-in fallback secret", "env", cfg.Env)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, repository.Options{
		Driver:      cfg.StoreDriver,
		DSN:         cfg.DatabaseDSN,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
		Timeout:     cfg.StoreTimeout,
		AutoMigrate: cfg.AutoMigrate,
	})
	if err != nil {
		slog.Error("store initialization failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens, err := crypto.NewTokenService(cfg.JWTSecret)
	if err != nil {
		slog.Error("token service initialization failed", "error", err)
		os.Exit(1)
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(store, tokens))
	sensorHandler := handler.NewSensorHandler(service.NewSensorService(store))

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(ctx, handler.RouterConfig{
			Auth:           authHandler,
			Sensor:         sensorHandler,
			Verifier:       tokens,
			AuthRequired:   cfg.AuthRequired,
			LoginRateLimit: cfg.LoginRateLimit,
			LoginRateBurst: cfg.LoginRateBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"store", cfg.StoreDriver,
			"auth_required", cfg.AuthRequired,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
