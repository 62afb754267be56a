package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"wedify/internal/catalog"
	"wedify/internal/hostrouter"
	"wedify/internal/platform/config"
	"wedify/internal/platform/httpserver"
	"wedify/internal/platform/logger"
	"wedify/internal/platform/metrics"
	platformredis "wedify/internal/platform/redis"
	"wedify/internal/render"
	httptransport "wedify/internal/transport/http"
	"wedify/internal/wedding/store/cache"
	"wedify/internal/wedding/store/memory"
	"wedify/internal/wedding/store/postgres"

	weddingservice "wedify/internal/wedding/service"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Configuration invariants (catalog consistency, variant coverage) are
// verified here so violations abort boot instead of degrading per-request.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	registry, err := catalog.LoadFrom(cfg.TemplatesFile)
	if err != nil {
		fatal(log, "failed to load template catalog", err)
	}
	if err := registry.Verify(render.RegisteredVariants()); err != nil {
		fatal(log, "template catalog failed verification", err)
	}

	m := metrics.New()
	dispatcher := render.NewDispatcher(registry, render.WithLogger(log), render.WithMetrics(m))

	ctx := context.Background()
	store, cleanup, err := buildStore(ctx, cfg, log, m)
	if err != nil {
		fatal(log, "failed to initialize wedding store", err)
	}
	defer cleanup()

	svc := weddingservice.New(store, dispatcher, weddingservice.WithLogger(log))
	resolver := hostrouter.NewResolver(cfg.Domain, cfg.DevHost, cfg.ReservedSubdomains)
	handler := httptransport.NewHandler(svc, registry, dispatcher, log)
	router := httptransport.NewRouter(handler, resolver, log, m)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting wedify edge",
		"addr", cfg.Addr,
		"domain", cfg.Domain,
		"templates", len(registry.List()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case <-quit:
		case <-gctx.Done():
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fatal(log, "server error", err)
	}
}

// buildStore picks the wedding store implementation: postgres when
// DATABASE_URL is set, seeded memory otherwise, with an optional Redis
// cache-aside layer in front.
func buildStore(ctx context.Context, cfg config.Server, log *slog.Logger, m *metrics.Metrics) (weddingservice.Store, func(), error) {
	cleanup := func() {}

	var store weddingservice.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, cleanup, err
		}
		pg := postgres.New(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, cleanup, err
		}
		store = pg
		cleanup = func() { db.Close() }
		log.Info("wedding store: postgres")
	} else {
		mem := memory.New()
		if err := memory.Seed(ctx, mem); err != nil {
			return nil, cleanup, err
		}
		store = mem
		log.Info("wedding store: in-memory (seeded demo data)")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, cleanup, err
	}
	if redisClient != nil {
		prev := cleanup
		cleanup = func() {
			redisClient.Close()
			prev()
		}
		store = cache.New(store, redisClient, cfg.Redis.CacheTTL, log, m)
		log.Info("wedding cache: redis", "ttl", cfg.Redis.CacheTTL)
	}

	return store, cleanup, nil
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
