package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	shopspring "github.com/jackc/pgtype/ext/shopspring-numeric"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/seba-moreno/real-estate-tracker/internal/config"
	"github.com/seba-moreno/real-estate-tracker/internal/middleware"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories/memstore"
	"github.com/seba-moreno/real-estate-tracker/internal/services"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App struct holds references to config, storage & services.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool // nil with the memory storage driver
	memory *memstore.Store

	RateLimitStore          middleware.RateLimitStore
	RateLimitCleanupService *services.RateLimitCleanupService

	PropertyService           *services.PropertyService
	ConceptService            *services.ConceptService
	ContractService           *services.ContractService
	PropertiesConceptsService *services.PropertiesConceptsService
	TransactionService        *services.TransactionService
}

type repositorySet struct {
	properties         repositories.PropertyRepository
	concepts           repositories.ConceptRepository
	contracts          repositories.ContractRepository
	propertiesConcepts repositories.PropertiesConceptsRepository
	transactions       repositories.TransactionRepository
}

// NewApp opens the configured storage and wires repositories into services.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Infof("Initializing %s App (storage=%s)", cfg.AppName, cfg.StorageDriver)

	a := &App{Config: cfg}
	var repos repositorySet

	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		dbPool, err := connectWithRetry(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.DB = dbPool
		repos = repositorySet{
			properties:         repositories.NewPropertyRepository(dbPool),
			concepts:           repositories.NewConceptRepository(dbPool),
			contracts:          repositories.NewContractRepository(dbPool),
			propertiesConcepts: repositories.NewPropertiesConceptsRepository(dbPool),
			transactions:       repositories.NewTransactionRepository(dbPool),
		}

		rateLimitRepo := repositories.NewRateLimitRepository(dbPool)
		a.RateLimitStore = rateLimitRepo
		a.RateLimitCleanupService = services.NewRateLimitCleanupService(rateLimitRepo)
		// Counters left over from a previous run; the scheduler takes it from here.
		_ = a.RateLimitCleanupService.Cleanup(context.Background())

	case config.StorageDriverMemory:
		a.memory = memstore.New()
		repos = repositorySet{
			properties:         a.memory.Properties(),
			concepts:           a.memory.Concepts(),
			contracts:          a.memory.Contracts(),
			propertiesConcepts: a.memory.PropertiesConcepts(),
			transactions:       a.memory.Transactions(),
		}
		rateLimitStore := middleware.NewInMemoryRateLimitStore()
		a.RateLimitStore = rateLimitStore
		a.RateLimitCleanupService = services.NewRateLimitCleanupService(rateLimitStore)

	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidStorageDriver, cfg.StorageDriver)
	}

	a.PropertyService = services.NewPropertyService(repos.properties, repos.contracts, repos.propertiesConcepts)
	a.ConceptService = services.NewConceptService(repos.concepts, repos.propertiesConcepts)
	a.ContractService = services.NewContractService(repos.contracts, repos.properties)
	a.PropertiesConceptsService = services.NewPropertiesConceptsService(
		repos.propertiesConcepts, repos.properties, repos.concepts, repos.transactions,
	)
	a.TransactionService = services.NewTransactionService(repos.transactions, repos.propertiesConcepts)

	return a, nil
}

// Ping checks the storage backend.
func (a *App) Ping(ctx context.Context) error {
	if a.DB != nil {
		return a.DB.Ping(ctx)
	}
	return a.memory.Ping(ctx)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func connectWithRetry(databaseURL string) (*pgxpool.Pool, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("Connected to DB on attempt %d", i)
			return dbPool, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		// NUMERIC columns scan into decimal.Decimal.
		conn.ConnInfo().RegisterDataType(pgtype.DataType{
			Value: &shopspring.Numeric{},
			Name:  "numeric",
			OID:   pgtype.NumericOID,
		})
		return nil
	}
	return pgxpool.ConnectConfig(ctx, cfg)
}
