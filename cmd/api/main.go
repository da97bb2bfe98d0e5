package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/techmart-labs/techmart-backend/api/controllers"
	"github.com/techmart-labs/techmart-backend/api/routes"
	authsvc "github.com/techmart-labs/techmart-backend/internal/auth"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	checkoutsvc "github.com/techmart-labs/techmart-backend/internal/checkout"
	productsvc "github.com/techmart-labs/techmart-backend/internal/products"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	"github.com/techmart-labs/techmart-backend/pkg/db"
	"github.com/techmart-labs/techmart-backend/pkg/env"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"github.com/techmart-labs/techmart-backend/pkg/metrics"
	"github.com/techmart-labs/techmart-backend/pkg/migrate"
	"github.com/techmart-labs/techmart-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	snapshots, backend, closeBackend, err := buildSnapshotBackend(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap snapshot backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logg.Error(ctx, "error closing snapshot backend", err)
		}
	}()

	cat := catalog.Default()

	store, err := session.NewStore(ctx, session.StoreParams{
		Snapshots: snapshots,
		Catalog:   cat,
		Logger:    logg,
		Metrics:   storeMetrics,
		AuthDelay: cfg.Sim.AuthDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to build state store", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		Store:  store,
		JWT:    cfg.JWT,
		Logger: logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create auth service", err)
		os.Exit(1)
	}

	productService, err := productsvc.NewService(productsvc.ServiceParams{Catalog: cat})
	if err != nil {
		logg.Error(ctx, "failed to create products service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Store:   store,
		Pricing: cfg.Checkout,
		Logger:  logg,
		Delay:   cfg.Sim.PaymentDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to create checkout service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Store.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:      cfg,
			Logger:      logg,
			Catalog:     cat,
			Store:       store,
			Backend:     backend,
			Auth:        authService,
			Products:    productService,
			Checkout:    checkoutService,
			HTTPMetrics: httpMetrics,
			Registry:    registry,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// buildSnapshotBackend wires the configured persistence backend behind the
// SnapshotStore interface and hands back its readiness pinger plus a closer.
func buildSnapshotBackend(ctx context.Context, cfg *config.Config, logg *logger.Logger) (session.SnapshotStore, controllers.Pinger, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		dbClient, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		closer := dbClient.Close

		if cfg.Store.AutoMigrate {
			sqlDB, err := dbClient.SQL()
			if err != nil {
				return nil, nil, closer, multierr.Append(err, closer())
			}
			if err := migrate.Up(ctx, sqlDB); err != nil {
				return nil, nil, closer, multierr.Append(err, closer())
			}
		}

		snapshots, err := session.NewSQLiteSnapshots(dbClient.DB(), cfg.Store.SnapshotKey, logg)
		if err != nil {
			return nil, nil, closer, multierr.Append(err, closer())
		}
		return snapshots, dbClient, closer, nil

	case config.StoreBackendRedis:
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		closer := redisClient.Close

		snapshots, err := session.NewRedisSnapshots(redisClient, cfg.Store.SnapshotKey, logg)
		if err != nil {
			return nil, nil, closer, multierr.Append(err, closer())
		}
		return snapshots, redisClient, closer, nil

	case config.StoreBackendMemory:
		return session.NewMemorySnapshots(), nil, noop, nil
	}

	return nil, nil, noop, errors.New("unknown store backend " + cfg.Store.Backend)
}
