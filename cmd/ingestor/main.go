package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"event_hotels/internal/adapters/catalog"
	"event_hotels/internal/adapters/observability"
	redisad "event_hotels/internal/adapters/redis"
	"event_hotels/internal/app"
	"event_hotels/internal/domain"
	"event_hotels/internal/shared"
	mysqlrepo "event_hotels/internal/storage/mysql"
	"event_hotels/migrations"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	log.Logger = observability.NewLogger(cfg.AppEnv, "ingestor", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(cfg.IngestIDs) == 0 {
		log.Warn().Msg("INGEST_HOTEL_IDS is empty, nothing to do")
		return
	}
	workers := cfg.IngestWorkers
	if workers <= 0 {
		workers = 1
	}

	log.Info().
		Str("base", cfg.CatalogBase).
		Int("workers", workers).
		Int("hotels", len(cfg.IngestIDs)).
		Msg("ingestor starting")

	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN, mysqlrepo.PoolOptions{
		MaxOpenConns:    cfg.MySQLMaxOpenConns,
		MaxIdleConns:    cfg.MySQLMaxIdleConns,
		ConnMaxLifetime: cfg.MySQLConnMaxLife,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("db ping ok")

	if cfg.RunMigrations {
		if err := migrations.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	repo := mysqlrepo.New(db)

	client, err := catalog.New(cfg.CatalogBase, cfg.CatalogKey, cfg.CatalogRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog client")
	}

	// the API caches hotels; evict what we rewrite
	var inv domain.CatalogInvalidator
	if ttl := cfg.CacheTTL(); ttl > 0 {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cache.Close()
		inv = redisad.NewCachedHotels(repo, cache, ttl)
	}

	ing := app.NewIngestionService(client, repo, inv)
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, id := range cfg.IngestIDs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestHotel(ctx, hotelID); err != nil {
				log.Warn().Int64("id", hotelID).Err(err).Msg("ingest failed")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			log.Info().Int64("id", hotelID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int("failed", failed).Int("total", len(cfg.IngestIDs)).Msg("ingestion completed")
	if failed > 0 {
		stop()
		os.Exit(1)
	}
}
