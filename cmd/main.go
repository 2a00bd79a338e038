package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/cinematch/internal/cache/memory"
	"github.com/davidbz/cinematch/internal/cache/redis"
	"github.com/davidbz/cinematch/internal/config"
	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/http"
	"github.com/davidbz/cinematch/internal/http/middleware"
	"github.com/davidbz/cinematch/internal/observability"
	"github.com/davidbz/cinematch/internal/provider/static"
	"github.com/davidbz/cinematch/internal/provider/tmdb"
)

const redisPingTimeout = 2 * time.Second

func main() {
	container := buildContainer()

	if err := container.Invoke(run); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests.
func run(logger *zap.Logger, server *http.Server, cfg *config.ServerConfig) error {
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(func(cfg *config.LogConfig) (*zap.Logger, error) {
		return observability.InitLogger(cfg.Level)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Cache
	if err := container.Provide(provideCacheStore); err != nil {
		log.Fatalf("Failed to provide cache store: %v", err)
	}

	// Movie source
	if err := container.Provide(provideMovieSource); err != nil {
		log.Fatalf("Failed to provide movie source: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewCatalogService, dig.As(new(domain.Catalog))); err != nil {
		log.Fatalf("Failed to provide catalog service: %v", err)
	}
	if err := container.Provide(domain.NewRecommendationService, dig.As(new(domain.Recommender))); err != nil {
		log.Fatalf("Failed to provide recommendation service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// provideCacheStore selects the CacheStore backend. An unreachable Redis is
// logged but not fatal: the store degrades to cache misses.
func provideCacheStore(cfg *config.Config, _ *zap.Logger) domain.CacheStore {
	logger := observability.FromContext(context.Background())

	if cfg.Cache.Backend != config.CacheRedis {
		logger.Info("using in-memory cache")
		return memory.NewStore()
	}

	store := redis.NewStore(redis.NewClient(cfg.Redis), cfg.Redis.KeyPrefix)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		logger.Warn("redis unreachable at startup, continuing with cache misses",
			observability.String("addr", cfg.Redis.Addr),
			observability.Error(err))
	} else {
		logger.Info("using redis cache", observability.String("addr", cfg.Redis.Addr))
	}

	return store
}

func provideMovieSource(cfg *config.Config, _ *zap.Logger) (domain.MovieSource, error) {
	logger := observability.FromContext(context.Background())

	switch cfg.Catalog.Source {
	case config.SourceStatic:
		source, err := static.New(cfg.Static)
		if err != nil {
			return nil, fmt.Errorf("failed to load static catalog: %w", err)
		}
		logger.Info("using static catalog", observability.Int("movies", source.Len()))
		return source, nil
	default:
		source, err := tmdb.New(cfg.TMDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create TMDb source: %w", err)
		}
		logger.Info("using TMDb catalog", observability.String("base_url", cfg.TMDB.BaseURL))
		return source, nil
	}
}
