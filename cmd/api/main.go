package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-agenda/internal/db"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/fixtures"
	"github.com/BruksfildServices01/clinic-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-agenda/internal/jobs"
	"github.com/BruksfildServices01/clinic-agenda/internal/logging"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/routes"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/report"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/workspace"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	today := func() string { return timezone.Today(cfg.Timezone) }

	// ======================================================
	// STORES
	// ======================================================
	backend, gormDB, sink, closeStore := openStore(ctx, cfg)
	defer closeStore()

	if cfg.RedisURL != "" {
		cache, err := repository.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer cache.Close()
		backend = repository.NewCachedStore(backend, cache, cfg.CacheTTL)
	}

	guest := repository.NewMemoryStore(func() fixtures.Workspace {
		return fixtures.Guest(today())
	})
	resolver := repository.NewRouter(cfg.GuestOwnerID, guest, backend)

	dispatcher := audit.NewDispatcher(sink)
	defer dispatcher.Close()

	// ======================================================
	// JOBS
	// ======================================================
	if cfg.DigestCron != "" {
		digest := jobs.NewDigest(
			report.NewRetention(workspace.NewLoader(resolver), today),
			cfg.DigestOwners,
			timezone.Location(cfg.Timezone),
		)
		if err := digest.Schedule(cfg.DigestCron); err != nil {
			log.Fatal().Err(err).Msg("invalid DIGEST_CRON")
		}
		digest.Start()
		defer digest.Stop()
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Resolver: resolver,
		Guest:    guest,
		DB:       gormDB,
		Audit:    dispatcher,
		Grid:     grid(cfg),
		Sorter:   finance.NewSorter(cfg.ReportLocale),
		Metrics:  middleware.NewMetrics(),
		Today:    today,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("store", cfg.StoreDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

// openStore builds the backend for non-guest owners and the audit sink that
// goes with it. gormDB is nil unless STORE_DRIVER is postgres.
func openStore(ctx context.Context, cfg *config.Config) (domain.Store, *gorm.DB, audit.Sink, func()) {
	switch cfg.StoreDriver {
	case "postgres":
		db := dbpkg.NewDB(cfg)
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repository.NewGormStore(db), db, audit.New(db), closeFn

	case "sqlite":
		sqlDB, err := dbpkg.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("failed to open sqlite")
		}
		store, err := repository.NewDocumentStore(ctx, sqlDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare sqlite store")
		}
		return store, nil, audit.LogSink{}, func() { sqlDB.Close() }

	case "memory":
		return repository.NewMemoryStore(nil), nil, audit.LogSink{}, func() {}
	}

	log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown STORE_DRIVER")
	return nil, nil, nil, nil
}

func grid(cfg *config.Config) calendar.Config {
	g := calendar.DefaultConfig()

	start, err := timezone.ParseClock(cfg.DayStart)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.DayStart).Msg("invalid CALENDAR_DAY_START")
	}
	end, err := timezone.ParseClock(cfg.DayEnd)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.DayEnd).Msg("invalid CALENDAR_DAY_END")
	}
	if end <= start {
		log.Fatal().Msg("calendar day must end after it starts")
	}

	g.DayStart = start
	g.DayEnd = end
	if cfg.SlotMinutes > 0 {
		g.SlotMinutes = cfg.SlotMinutes
	}
	if cfg.PixelsPerHour > 0 {
		g.PixelsPerHour = cfg.PixelsPerHour
	}
	return g
}
