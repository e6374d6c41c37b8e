package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-pool/internal/config"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence/file"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence/postgres"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/repository/statestore"
	"github.com/riskibarqy/cricket-pool/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-pool/internal/platform/cache"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
	"github.com/riskibarqy/cricket-pool/internal/usecase"

	_ "github.com/lib/pq"
)

// App bundles the HTTP server with the state store so shutdown can run the
// teardown save after the listener drains.
type App struct {
	Server *http.Server

	store  *statestore.Store
	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	gateway, db, err := newGateway(cfg)
	if err != nil {
		return nil, err
	}

	store := statestore.New(ctx, gateway, logger)

	contestRepo := statestore.NewContestRepository(store)
	rosterRepo := statestore.NewRosterRepository(store)
	bettingRepo := statestore.NewBettingRepository(store)
	scoringRepo := statestore.NewScoringRepository(store)
	lockRegistry := statestore.NewLockRegistry(store)

	var rankingsCache *cache.Store
	if cfg.CacheEnabled {
		rankingsCache = cache.NewStore(cfg.CacheTTL)
	}

	catalogSvc := usecase.NewCatalogService(contestRepo)
	rosterSvc := usecase.NewRosterService(rosterRepo)
	bettingSvc := usecase.NewBettingService(bettingRepo)
	scoringSvc := usecase.NewScoringService(rosterRepo, scoringRepo, rankingsCache, store, cfg.RankingWorkers)
	lockSvc := usecase.NewLockService(lockRegistry)
	maintenanceSvc := usecase.NewMaintenanceService(store)

	handler := httpapi.NewHandler(catalogSvc, rosterSvc, bettingSvc, scoringSvc, lockSvc, maintenanceSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

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
		Server: server,
		store:  store,
		db:     db,
		logger: logger,
	}, nil
}

// Close runs the teardown save and releases the database pool. Call it after
// the HTTP server has stopped accepting requests.
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if err := a.store.Close(ctx); err != nil {
		a.logger.ErrorContext(ctx, "teardown state save failed", "error", err)
		firstErr = err
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func newGateway(cfg config.Config) (persistence.Gateway, *sqlx.DB, error) {
	switch cfg.PersistenceDriver {
	case config.DriverPostgres:
		db, err := otelsqlx.Connect("postgres", cfg.DBURL,
			otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
			otelsql.WithDBName("cricket_pool"),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return postgres.NewStore(db), db, nil
	case config.DriverFile:
		return file.NewStore(cfg.StateFilePath), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported persistence driver %q", cfg.PersistenceDriver)
	}
}
