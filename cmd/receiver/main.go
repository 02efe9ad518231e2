package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/optouthub/optouthub-go/internal/config"
	xredis "github.com/optouthub/optouthub-go/internal/redis"
	"github.com/optouthub/optouthub-go/internal/server/handler"
	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/internal/xhttp/middleware"
	"github.com/optouthub/optouthub-go/internal/xslog"
	"github.com/optouthub/optouthub-go/webhook"
)

const keyPort = "port"

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	store, err := initStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize delivery store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close delivery store", xslog.Error(err))
		}
	}()

	verifier := webhook.New(cfg.Webhook.Secret, webhook.WithMaxAge(cfg.Webhook.MaxAge))

	webhookHandler := handler.NewWebhook(verifier, store)
	deliveriesHandler := handler.NewDeliveries(store)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhooks/optouthub", webhookHandler.HandleWebhook)
	mux.HandleFunc("GET /deliveries", deliveriesHandler.HandleRecent)
	mux.HandleFunc("GET /health", handler.HandleHealth)

	wrapped := middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Logging,
		middleware.SecurityHeaders,
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting receiver",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage.DeliveryStore, error) {
	switch {
	case cfg.Postgres.URL != "":
		logger.InfoContext(ctx, "initializing postgres delivery store")
		pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		return storage.NewPostgresDeliveryStore(ctx, pool)
	case cfg.Redis.URL != "":
		logger.InfoContext(ctx, "initializing redis delivery store")
		client, err := xredis.New(ctx, xredis.Config{URL: cfg.Redis.URL})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisDeliveryStore(client), nil
	default:
		logger.WarnContext(ctx, "no delivery store configured, deliveries will not survive restarts")
		return storage.NewMemoryDeliveryStore(), nil
	}
}
