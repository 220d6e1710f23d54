package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/adapter/catalogapi"
	"github.com/user/catalog-service/internal/adapter/chromedp_fetcher"
	"github.com/user/catalog-service/internal/adapter/httpfetch"
	"github.com/user/catalog-service/internal/adapter/postgres"
	redis_adapter "github.com/user/catalog-service/internal/adapter/redis"
	"github.com/user/catalog-service/internal/delivery/http/handler"
	"github.com/user/catalog-service/internal/delivery/http/router"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/internal/usecase"
	"github.com/user/catalog-service/pkg/config"
	"github.com/user/catalog-service/pkg/logger"
	"github.com/user/catalog-service/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()
	log.Info("Logger initialized", zap.String("level", cfg.LogLevel))

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctx := context.Background()
	checks := map[string]handler.Pinger{}

	// --- Redis (optional response cache) ---
	var (
		rdb   *redis.Client
		cache repository.CacheRepository
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		cacheRepo := redis_adapter.NewCacheRepo(rdb)
		if err := cacheRepo.Ping(ctx); err != nil {
			log.Warn("Redis is unreachable, requests will bypass the cache until it recovers", zap.Error(err))
		} else {
			log.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
		}
		cache = cacheRepo
		checks["redis"] = cacheRepo
	} else {
		log.Info("REDIS_ADDR is empty, response caching disabled")
	}

	// --- PostgreSQL (optional fetch-failure log) ---
	var failures repository.FetchFailureRepository
	if cfg.PostgresURL != "" {
		dbpool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal("Unable to connect to database", zap.Error(err))
		}
		defer dbpool.Close()

		failureRepo := postgres.NewFetchFailureRepo(dbpool)
		if err := failureRepo.EnsureSchema(ctx); err != nil {
			log.Fatal("Unable to prepare database schema", zap.Error(err))
		}
		log.Info("PostgreSQL connection pool established")
		failures = failureRepo
		checks["postgres"] = failureRepo
	} else {
		log.Info("POSTGRES_URL is empty, fetch-failure log disabled")
	}

	// --- Fetchers ---
	var fetcher repository.PageFetcher
	switch cfg.FetchMode {
	case "browser":
		browser, err := chromedp_fetcher.NewChromedpFetcher(cfg.UserAgent, cfg.FetchTimeout(), m, log)
		if err != nil {
			log.Fatal("Unable to start headless browser", zap.Error(err))
		}
		defer browser.Close()
		fetcher = browser
	case "http":
		fetcher = httpfetch.NewFetcher(cfg.UserAgent, cfg.FetchTimeout(), cfg.FetchRatePerSecond, m, log)
	default:
		log.Fatal("Unknown FETCH_MODE, expected http or browser", zap.String("fetch_mode", cfg.FetchMode))
	}
	log.Info("Page fetcher ready", zap.String("mode", cfg.FetchMode))

	apiClient := catalogapi.NewClient(cfg.APIBaseURL, cfg.FetchTimeout(), m, log)
	if cfg.APIBaseURL == "" {
		log.Warn("API_BASE_URL is empty, catalog relay endpoints will fail")
	}

	// --- Use Cases ---
	catalog, err := usecase.NewCatalogUseCase(fetcher, cache, failures, m, log, cfg.SiteBaseURL, cfg.CacheTTL())
	if err != nil {
		log.Fatal("Invalid SITE_BASE_URL", zap.Error(err))
	}
	relay := usecase.NewRelayUseCase(apiClient, cache, m, log, cfg.CatalogCacheTTL())

	// --- Cache Warmer (needs Redis for the shared queue) ---
	var warmer usecase.Warmer
	var warmerPool *usecase.WarmerPool
	var warmSchedule *usecase.WarmSchedule
	if rdb != nil {
		warmer = usecase.NewWarmerUseCase(redis_adapter.NewQueueRepo(rdb), catalog, m, log)
		warmerPool = usecase.NewWarmerPool(warmer, cfg.WarmWorkers, log)
		warmerPool.Start()

		if cfg.WarmOnStart {
			go func() {
				if _, err := warmer.Submit(ctx, nil); err != nil {
					log.Warn("Initial cache warm failed", zap.Error(err))
				}
			}()
		}

		if cfg.WarmSchedule != "" {
			warmSchedule, err = usecase.NewWarmSchedule(warmer, cfg.WarmSchedule, log)
			if err != nil {
				log.Fatal("Invalid WARM_SCHEDULE", zap.Error(err))
			}
			warmSchedule.Start()
		}
	} else if cfg.WarmOnStart || cfg.WarmSchedule != "" {
		log.Warn("Cache warming is configured but REDIS_ADDR is empty, ignoring")
	}

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(catalog, relay, warmer, failures, checks, log)
	httpRouter := router.New(apiHandler, m, reg, log)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Could not listen on port", zap.String("port", cfg.ServerPort), zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", cfg.ServerPort), zap.String("site", cfg.SiteBaseURL))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if warmSchedule != nil {
		warmSchedule.Stop()
	}
	if warmerPool != nil {
		warmerPool.Stop()
	}

	log.Info("Server exiting")
}
