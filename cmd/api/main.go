package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"event_hotels/internal/adapters/auth"
	server "event_hotels/internal/adapters/http_server"
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

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api", cfg.LogLevel)

	if err := cfg.ValidateAPI(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	metricsSrv, err := observability.Serve(cfg.MetricsAddr, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics server failed")
	}

	// db
	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN, mysqlrepo.PoolOptions{
		MaxOpenConns:    cfg.MySQLMaxOpenConns,
		MaxIdleConns:    cfg.MySQLMaxIdleConns,
		ConnMaxLifetime: cfg.MySQLConnMaxLife,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("database connection ok")

	if cfg.RunMigrations {
		if err := migrations.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		log.Info().Msg("migrations applied")
	}

	// deps
	repo := mysqlrepo.New(db)
	var cache domain.Cache
	if cfg.CacheTTL() > 0 {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			// reads fall through to MySQL while redis is down
			log.Warn().Err(err).Msg("redis ping failed")
		}
		cache = rc
		log.Info().Dur("ttl", cfg.CacheTTL()).Msg("hotel catalog cache enabled")
	}
	hotels := redisad.HotelReaderFor(repo, cache, cfg.CacheTTL())

	svc := app.NewHotelService(app.NewEligibilityChecker(repo), hotels)
	authn := auth.New(cfg.JWTSecret, repo)

	// http
	srv := server.New(cfg.RequestTimeout)
	srv.MountHandlers(&server.Handlers{Svc: svc, Auth: authn})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}
