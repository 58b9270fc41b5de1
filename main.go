package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"loan-amortizer/config"
	httpLayer "loan-amortizer/http"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	cfg.ConfigureLogging()

	loanRepo := repository.NewLoanRepositoryMemory()
	cache := newCache(cfg)

	loanService := service.NewLoanService(loanRepo, cache)
	loanHandler := httpLayer.NewLoanHandler(loanService, cfg.Export.Precision)

	comparisonService := service.NewComparisonService(loanService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(loanHandler, comparisonHandler, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("amortization API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("error starting server")
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.WithError(err).Warn("error closing cache")
		}
	}

	log.Info("server exited")
}

// newCache returns the redis cache when enabled and reachable, and an
// in-process cache otherwise.
func newCache(cfg *config.Config) repository.CacheRepository {
	if !cfg.Redis.Enabled {
		return repository.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	cache := repository.NewRedisCache(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Redis.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		log.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("redis unavailable, using in-process cache")
		_ = cache.Close()
		return repository.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	log.WithField("addr", cfg.Redis.Addr).Info("using redis cache")
	return cache
}
