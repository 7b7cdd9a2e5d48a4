package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/matchdayhq/matchday-api/internal/config"
	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/media/cloudinary"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/media/local"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/repository/postgres"
	"github.com/matchdayhq/matchday-api/internal/interfaces/httpapi"
	"github.com/matchdayhq/matchday-api/internal/platform/cache"
	idgen "github.com/matchdayhq/matchday-api/internal/platform/id"
	"github.com/matchdayhq/matchday-api/internal/platform/logging"
	"github.com/matchdayhq/matchday-api/internal/platform/resilience"
	"github.com/matchdayhq/matchday-api/internal/usecase"
)

// memoryStorageURL selects the seeded in-memory repositories instead of
// Postgres. Intended for local development and demos.
const memoryStorageURL = "memory"

type repositories struct {
	players    player.Repository
	matches    match.Repository
	formations formation.Repository
	goals      goal.Repository
}

// NewHTTPServer wires storage, media, services, and the HTTP router.
// The returned cleanup releases the database handle and is safe to call
// even when no database connection was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if db == nil {
			return nil
		}
		return db.Close()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	photos, uploadsDir, err := newPhotoStore(cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	playerSvc := usecase.NewPlayerService(repos.players, idgen.NewRandomGenerator(), photos, store)
	matchSvc := usecase.NewMatchService(repos.matches)
	formationSvc := usecase.NewFormationService(repos.formations, repos.matches, repos.players)
	goalSvc := usecase.NewGoalService(repos.goals, repos.matches, repos.players)
	statisticsSvc := usecase.NewStatisticsService(repos.players, store)

	httpLogger := logger.Named("http")
	handler := httpapi.NewHandler(playerSvc, matchSvc, formationSvc, goalSvc, statisticsSvc, httpLogger)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins, uploadsDir)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == memoryStorageURL {
		logger.Warn("using in-memory storage", "db_url", memoryStorageURL)
		playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
		matchRepo := memory.NewMatchRepository(memory.SeedMatches())
		formationRepo := memory.NewFormationRepository(nil)
		goalRepo := memory.NewGoalRepository(nil)
		memory.LinkCascades(playerRepo, matchRepo, formationRepo, goalRepo)
		return repositories{
			players:    playerRepo,
			matches:    matchRepo,
			formations: formationRepo,
			goals:      goalRepo,
		}, nil, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(dsn))

	return repositories{
		players:    postgres.NewPlayerRepository(db),
		matches:    postgres.NewMatchRepository(db),
		formations: postgres.NewFormationRepository(db),
		goals:      postgres.NewGoalRepository(db),
	}, db, nil
}

// newPhotoStore picks the photo backend. The returned directory is empty
// unless photos land on local disk and should be served by the router.
func newPhotoStore(cfg config.Config, logger *logging.Logger) (usecase.PhotoStore, string, error) {
	if cfg.CloudinaryEnabled {
		client := cloudinary.NewClient(cloudinary.ClientConfig{
			BaseURL:    cfg.CloudinaryBaseURL,
			CloudName:  cfg.CloudinaryCloudName,
			APIKey:     cfg.CloudinaryAPIKey,
			APISecret:  cfg.CloudinaryAPISecret,
			Folder:     cfg.CloudinaryFolder,
			Timeout:    cfg.CloudinaryTimeout,
			MaxRetries: cfg.CloudinaryMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.CloudinaryCircuitEnabled,
				FailureThreshold: cfg.CloudinaryCircuitFailureCount,
				OpenTimeout:      cfg.CloudinaryCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.CloudinaryCircuitHalfOpenMaxReq,
			},
		})
		logger.Info("photo storage", "backend", "cloudinary", "cloud_name", cfg.CloudinaryCloudName)
		return client, "", nil
	}

	store, err := local.NewStore(cfg.UploadsDir, cfg.UploadsBaseURL)
	if err != nil {
		return nil, "", fmt.Errorf("init local photo store: %w", err)
	}
	logger.Info("photo storage", "backend", "local", "dir", cfg.UploadsDir)

	return store, cfg.UploadsDir, nil
}
