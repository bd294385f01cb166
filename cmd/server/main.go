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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/common/otel"
	"journalflow.app/editorial/core/config"
	"journalflow.app/editorial/core/db"
	"journalflow.app/editorial/internal/cache"
	"journalflow.app/editorial/internal/http/middleware"
	httprouter "journalflow.app/editorial/internal/http/router"
	"journalflow.app/editorial/internal/metrics"
	"journalflow.app/editorial/internal/queue"
	"journalflow.app/editorial/internal/service"
	"journalflow.app/editorial/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "editorial server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(id.NodeServer); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
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
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

	eventProducer := queue.NewRedisProducer(redisClient, cfg.Redis.Stream, slog.Default())
	defer eventProducer.Close()

	m := metrics.New()

	services := service.NewServices(service.ServicesDeps{
		Stores:    store.NewStores(database.Queries()),
		TxRunner:  service.NewTxRunner(database),
		Cache:     cache.NewRedisCache(redisClient),
		Publisher: eventProducer,
		Recorder:  m,
		Config:    cfg,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, m)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DashboardURL:   cfg.DashboardURL,
		IsProduction:   cfg.IsProduction(),
		MetricsHandler: m.Handler(),
	})

	return router
}

const banner = `
 ___    _ _ _           _       _
| __|__| (_) |_ ___ _ _(_)__ _ | |
| _|/ _' | |  _/ _ \ '_| / _' || |
|___\__,_|_|\__\___/_| |_\__,_||_|  server
`
