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

	"github.com/redis/go-redis/v9"

	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/common/otel"
	"journalflow.app/editorial/core/config"
	"journalflow.app/editorial/core/db"
	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/metrics"
	"journalflow.app/editorial/internal/queue"
	"journalflow.app/editorial/internal/store"
	"journalflow.app/editorial/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Setup(cfg)

	slog.InfoContext(ctx, "editorial worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Redis.Group,
		"consumer_name", cfg.Redis.Consumer)

	// Node id differs from the server so ids minted here never collide
	if err := id.Init(id.NodeWorker); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

	consumer, err := queue.NewRedisConsumer(ctx, redisClient, queue.ConsumerConfig{
		Stream:       cfg.Redis.Stream,
		Group:        cfg.Redis.Group,
		Consumer:     cfg.Redis.Consumer,
		DLQStream:    cfg.Redis.DLQStream,
		BatchSize:    cfg.Worker.BatchSize,
		Block:        cfg.Worker.Block,
		RequeueDelay: cfg.Worker.RequeueDelay,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	txRunner := &workerTxRunnerAdapter{db: database}

	w := worker.New(consumer, txRunner, worker.NewProcessor(), m, worker.Config{
		MaxAttempts: cfg.Worker.MaxAttempts,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Redis.Stream,
		Group:     cfg.Redis.Group,
		Consumer:  cfg.Redis.Consumer + "-reclaimer",
		MinIdle:   cfg.Worker.ReclaimMinIdle,
		Interval:  cfg.Worker.ReclaimInterval,
		BatchSize: cfg.Worker.BatchSize,
	}, consumer, w.ProcessMessage)

	metricsServer := &http.Server{
		Addr:              cfg.Worker.MetricsAddr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.InfoContext(ctx, "metrics server starting", "addr", cfg.Worker.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "metrics server error", "error", err)
		}
	}()

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop reclaimer first (quick)
	reclaimer.Stop()

	// Stop worker (may be processing)
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "metrics server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

// workerTxRunnerAdapter bridges db.DB to worker.TxRunner.
type workerTxRunnerAdapter struct {
	db *db.DB
}

func (a *workerTxRunnerAdapter) WithTx(ctx context.Context, fn func(stores worker.StoreProvider) error) error {
	return a.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

const banner = `
 ___    _ _ _           _       _
| __|__| (_) |_ ___ _ _(_)__ _ | |
| _|/ _' | |  _/ _ \ '_| / _' || |
|___\__,_|_|\__\___/_| |_\__,_||_|  worker
`
