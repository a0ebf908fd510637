package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sourcegraph/conc"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/pitchconnect/standings-engine/internal/config"
	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	repocache "github.com/pitchconnect/standings-engine/internal/infrastructure/repository/cache"
	"github.com/pitchconnect/standings-engine/internal/infrastructure/repository/memory"
	"github.com/pitchconnect/standings-engine/internal/infrastructure/repository/postgres"
	"github.com/pitchconnect/standings-engine/internal/interfaces/httpapi"
	"github.com/pitchconnect/standings-engine/internal/observability"
	platformcache "github.com/pitchconnect/standings-engine/internal/platform/cache"
	idgen "github.com/pitchconnect/standings-engine/internal/platform/id"
	"github.com/pitchconnect/standings-engine/internal/platform/logging"
	"github.com/pitchconnect/standings-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// App owns the HTTP server and every process-wide resource it depends on:
// the database handle, the profiler, and the telemetry exporters.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	server *http.Server

	db              *sqlx.DB
	pprofServer     *http.Server
	shutdownUptrace func(context.Context) error
	stopPyroscope   func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("start pprof server: %w", err)
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var cacheStore *platformcache.Store
	if cfg.CacheEnabled {
		cacheStore = platformcache.NewStore(cfg.CacheTTL)
		repos.competitions = repocache.NewCompetitionRepository(repos.competitions, cacheStore)
		repos.teams = repocache.NewTeamRepository(repos.teams, cacheStore)
		repos.matches = repocache.NewMatchRepository(repos.matches, cacheStore)
		repos.playerStats = repocache.NewPlayerStatsRepository(repos.playerStats, cacheStore)
	}

	competitionSvc := usecase.NewCompetitionService(repos.competitions)
	standingsSvc := usecase.NewStandingsService(
		repos.competitions,
		repos.matches,
		repos.teams,
		repos.standings,
		cacheStore,
		logger,
	)
	teamStatsSvc := usecase.NewTeamStatsService(repos.competitions, repos.matches, repos.teams)
	rankingSvc := usecase.NewRankingService(repos.competitions, repos.playerStats)
	exportSvc := usecase.NewExportService(standingsSvc)
	ingestionSvc := usecase.NewIngestionService(
		repos.competitions,
		repos.matches,
		repos.teams,
		repos.playerStats,
		idgen.NewRandomGenerator(),
		standingsSvc.InvalidateCompetition,
	)
	recomputeSvc := usecase.NewRecomputeService(repos.competitions, standingsSvc, logger)
	recomputeSvc.SetDefaultWorkers(cfg.RecomputeMaxWorkers)

	handler := httpapi.NewHandler(
		competitionSvc,
		standingsSvc,
		teamStatsSvc,
		rankingSvc,
		exportSvc,
		ingestionSvc,
		recomputeSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		server:          server,
		db:              db,
		pprofServer:     pprofServer,
		shutdownUptrace: shutdownUptrace,
		stopPyroscope:   stopPyroscope,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// everything down in reverse dependency order.
func (a *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	var wg conc.WaitGroup
	wg.Go(func() {
		a.logger.Info("http server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	})

	var listenErr error
	select {
	case <-ctx.Done():
	case listenErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if listenErr == nil {
		shutdownErr = a.server.Shutdown(shutdownCtx)
		listenErr = <-serveErr
	}
	wg.Wait()

	a.close(shutdownCtx)

	if listenErr != nil {
		return fmt.Errorf("http server failed: %w", listenErr)
	}
	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
	}
	a.logger.Info("http server stopped")
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close database", "error", err)
		}
	}
	if err := observability.StopPprofServer(a.pprofServer, a.logger, shutdownTimeout); err != nil {
		a.logger.Error("stop pprof server", "error", err)
	}
	if a.stopPyroscope != nil {
		if err := a.stopPyroscope(); err != nil {
			a.logger.Error("stop pyroscope", "error", err)
		}
	}
	if a.shutdownUptrace != nil {
		if err := a.shutdownUptrace(ctx); err != nil {
			a.logger.Error("shutdown uptrace", "error", err)
		}
	}
}

type repositories struct {
	competitions competition.Repository
	teams        team.Repository
	matches      match.Repository
	playerStats  playerstats.Repository
	standings    standings.Repository
}

// buildRepositories picks the storage backend. An empty DB_URL runs the
// service fully in memory on the demo seed data.
func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			competitions: memory.NewCompetitionRepository(memory.SeedCompetitions()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			matches:      memory.NewMatchRepository(memory.SeedMatches()),
			playerStats:  memory.NewPlayerStatsRepository(memory.SeedPlayerSeasonStats()),
			standings:    memory.NewStandingsRepository(),
		}, nil, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	if cfg.AppEnv == config.EnvDev {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))
	return repositories{
		competitions: postgres.NewCompetitionRepository(db),
		teams:        postgres.NewTeamRepository(db),
		matches:      postgres.NewMatchRepository(db),
		playerStats:  postgres.NewPlayerStatsRepository(db),
		standings:    postgres.NewStandingsRepository(db),
	}, db, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
