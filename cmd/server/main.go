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

	"carrierid/internal/config"
	"carrierid/internal/domain/carrier"
	"carrierid/internal/infra/cache"
	"carrierid/internal/infra/queue"
	"carrierid/internal/infra/ratelimit"
	"carrierid/internal/infra/store"
	"carrierid/internal/router"

	"github.com/hibiken/asynq"
)

// queueEnqueuer adapts the asynq client to the carrier.Enqueuer interface.
type queueEnqueuer struct {
	client   *asynq.Client
	maxRetry int
}

func (q *queueEnqueuer) EnqueueIdentifyBatch(batchID string) error {
	return queue.EnqueueIdentifyBatch(q.client, batchID, q.maxRetry)
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	// ==========================================
	// Dependency Injection (Manual Wiring)
	// ==========================================

	// Carrier registry — every provider, built once, read-only afterwards
	registry := carrier.NewDefaultRegistry()
	slog.Info("carrier registry built", "providers", registry.Len())

	// Supabase batch job store
	batchStore, err := store.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	if err != nil {
		slog.Error("failed to initialize supabase store", "error", err)
		os.Exit(1)
	}
	slog.Info("supabase store initialized")

	// Asynq client (for enqueuing batch tasks)
	asynqClient := queue.NewClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	defer asynqClient.Close()
	slog.Info("asynq client initialized", "redis", cfg.Redis.Address)

	// Match cache (optional)
	var matchCache carrier.MatchCache
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedisMatchCache(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
		)
		defer redisCache.Close()
		matchCache = redisCache
		slog.Info("match cache initialized", "ttl_sec", cfg.Cache.TTLSec)
	}

	// Per-client batch quota
	clientQuota := ratelimit.NewRedisClientQuota(
		cfg.Redis.Address,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Quota.MaxBatchesPerDay,
	)
	defer clientQuota.Close()
	slog.Info("client quota initialized", "max_batches_per_day", cfg.Quota.MaxBatchesPerDay)

	// Enqueuer adapter
	enqueuer := &queueEnqueuer{
		client:   asynqClient,
		maxRetry: cfg.Queue.MaxRetry,
	}

	// Service
	carrierService := carrier.NewService(registry, batchStore, enqueuer, matchCache, clientQuota, cfg.Batch.MaxItems)

	// Handler
	carrierHandler := carrier.NewHandler(carrierService)

	// Router
	r := router.New(cfg, carrierHandler)

	// ==========================================
	// HTTP Server with Graceful Shutdown
	// ==========================================

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
