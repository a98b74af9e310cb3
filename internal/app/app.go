package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/external/reference"
	"github.com/riskibarqy/league-reference/external/snapshot"
	"github.com/riskibarqy/league-reference/internal/config"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	repocache "github.com/riskibarqy/league-reference/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-reference/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-reference/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-reference/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-reference/internal/platform/cache"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

// App owns the HTTP server and everything it depends on.
type App struct {
	Server *http.Server
	Sync   *usecase.SyncService

	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	seasons  season.Repository
	teams    team.Repository
	players  player.Repository
	games    game.Repository
	standing standing.Repository
	stats    playerstats.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var searchCache *cache.Store
	if cfg.CacheEnabled {
		searchCache = cache.NewStore(cfg.CacheTTL)
	}

	provider, err := newProvider(cfg, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, err
	}

	seasonSvc := usecase.NewSeasonService(repos.seasons)
	scheduleSvc := usecase.NewScheduleService(repos.seasons, repos.games)
	standingSvc := usecase.NewStandingService(repos.seasons, repos.teams, repos.standing, cfg.StandingConcurrency)
	playerStatsSvc := usecase.NewPlayerStatsService(repos.seasons, repos.players, repos.stats)
	searchSvc := usecase.NewSearchService(repos.teams, repos.players, searchCache, logger.Named("search"))
	syncSvc := usecase.NewSyncService(
		provider,
		repos.seasons,
		repos.teams,
		repos.players,
		repos.games,
		repos.standing,
		repos.stats,
		usecase.SyncConfig{
			Enabled:           cfg.SyncEnabled,
			DefaultMaxWorkers: cfg.SyncMaxWorkers,
			TaskTimeout:       cfg.SyncTaskTimeout,
		},
		logger.Named("sync"),
	)
	syncSvc.OnSynced(searchSvc.Invalidate)

	handler := httpapi.NewHandler(seasonSvc, scheduleSvc, standingSvc, playerStatsSvc, searchSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Sync:   syncSvc,
		db:     db,
		logger: logger,
	}, nil
}

// Close releases the database handle, if any.
func (a *App) Close() {
	closeDB(a.db, a.logger)
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	var (
		repos repositories
		db    *sqlx.DB
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		db, err = openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.DBSeedOnBoot {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				closeDB(db, logger)
				return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		repos = repositories{
			seasons:  postgres.NewSeasonRepository(db),
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			games:    postgres.NewGameRepository(db),
			standing: postgres.NewStandingRepository(db),
			stats:    postgres.NewPlayerStatsRepository(db),
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
	default:
		repos = repositories{
			seasons:  memory.NewSeasonRepository(memory.SeedSeasons()),
			teams:    memory.NewTeamRepository(memory.SeedTeams(), memory.SeedDivisions()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			games:    memory.NewGameRepository(memory.SeedGames()),
			standing: memory.NewStandingRepository(memory.SeedStandings()),
			stats:    memory.NewPlayerStatsRepository(memory.SeedBattingLines(), memory.SeedPitchingLines()),
		}
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos = repositories{
			seasons:  repocache.NewSeasonRepository(repos.seasons, store),
			teams:    repocache.NewTeamRepository(repos.teams, store),
			players:  repocache.NewPlayerRepository(repos.players, store),
			games:    repocache.NewGameRepository(repos.games, store),
			standing: repocache.NewStandingRepository(repos.standing, store),
			stats:    repocache.NewPlayerStatsRepository(repos.stats, store),
		}
	}

	return repos, db, nil
}

func newProvider(cfg config.Config, logger *logging.Logger) (usecase.ReferenceProvider, error) {
	switch cfg.ProviderDriver {
	case config.ProviderReference:
		return reference.NewClient(reference.ClientConfig{
			BaseURL:        cfg.ProviderBaseURL,
			Token:          cfg.ProviderToken,
			Timeout:        cfg.ProviderTimeout,
			MaxRetries:     cfg.ProviderMaxRetries,
			RetryBackoff:   cfg.ProviderRetryBackoff,
			Logger:         logger.Named("reference"),
			CircuitBreaker: cfg.ProviderCircuit,
		}), nil
	case config.ProviderSnapshot:
		return snapshot.NewStore(cfg.SnapshotDir, logger.Named("snapshot")), nil
	case config.ProviderNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported provider driver %q", cfg.ProviderDriver)
	}
}
