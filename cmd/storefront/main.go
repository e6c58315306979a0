package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/saklain-s/Ecommerce/internal/api"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
	"github.com/saklain-s/Ecommerce/internal/core/service"
	"github.com/saklain-s/Ecommerce/internal/infrastructure/config"
	"github.com/saklain-s/Ecommerce/internal/infrastructure/storage"
	"github.com/saklain-s/Ecommerce/internal/infrastructure/storage/memory"
	storagemongo "github.com/saklain-s/Ecommerce/internal/infrastructure/storage/mongo"
	storageredis "github.com/saklain-s/Ecommerce/internal/infrastructure/storage/redis"
	storagesqlite "github.com/saklain-s/Ecommerce/internal/infrastructure/storage/sqlite"
	"github.com/saklain-s/Ecommerce/internal/infrastructure/upstream"
	"github.com/saklain-s/Ecommerce/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to open storage backend")
	}
	defer closeStore()

	// --- Stores: one session and one cart per running client ---
	session := service.NewSessionService(ctx, storage.NewTokenRepository(store), log)
	cart := service.NewCartService(session, storage.NewCartRepository(store), log)

	// --- Upstream clients ---
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	catalog := upstream.NewCatalog(cfg.Upstream.BaseURL, httpClient, log)
	orders := upstream.NewOrders(cfg.Upstream.BaseURL, httpClient, log)
	auth := upstream.NewAuth(cfg.Upstream.BaseURL, httpClient, log)

	storefront := service.NewStorefrontService(session, cart, auth, orders, log)
	storefront.Resume(ctx)

	e := api.NewRouter(api.Dependencies{
		Storefront: storefront,
		Session:    session,
		Cart:       cart,
		Catalog:    catalog,
		Store:      store,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Backend).Msg("storefront gateway started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore builds the configured KeyValueStore backend. The returned
// close function releases any underlying connections.
func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		return memory.New(), func() {}, nil

	case "sqlite":
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := storagesqlite.Open(storagesqlite.Config{Path: cfg.Storage.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case "redis":
		client, err := storageredis.Connect(ctx, storageredis.Config{
			Addr: cfg.Storage.Redis.Addr,
			DB:   cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return storageredis.NewStore(client, cfg.Storage.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := storagemongo.Connect(ctx, storagemongo.Config{
			URI:      cfg.Storage.Mongo.URI,
			Database: cfg.Storage.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return storagemongo.NewStore(db), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
