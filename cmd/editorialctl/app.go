package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/core/config"
	"journalflow.app/editorial/core/db"
	"journalflow.app/editorial/internal/cache"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
	"journalflow.app/editorial/internal/store"
)

// operator is the caller identity used for role changes made from the CLI.
var operator = model.Caller{Name: appName, SiteAdmin: true}

type app struct {
	db       *db.DB
	stores   *store.Stores
	services *service.Services
}

// withApp connects to the database and, when reachable, Redis so that role
// changes also invalidate the cached journal directory.
func withApp(ctx context.Context, fn func(a *app) error) error {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(id.NodeCLI); err != nil {
		return fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	a := &app{
		db:     database,
		stores: store.NewStores(database.Queries()),
	}

	var directoryCache cache.Cache
	if opts, err := redis.ParseURL(cfg.Redis.URL); err == nil {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			directoryCache = cache.NewRedisCache(client)
			defer client.Close()
		} else {
			slog.WarnContext(ctx, "redis unavailable, directory cache will not be invalidated", "error", err)
			_ = client.Close()
		}
	}

	a.services = service.NewServices(service.ServicesDeps{
		Stores:   a.stores,
		TxRunner: service.NewTxRunner(database),
		Cache:    directoryCache,
		Config:   cfg,
	})

	return fn(a)
}
