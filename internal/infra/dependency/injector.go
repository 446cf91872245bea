// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/wallet/config"
	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/category"
	"github.com/finance-tracker/wallet/internal/application/usecase/dashboard"
	"github.com/finance-tracker/wallet/internal/application/usecase/transaction"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/infra/cache"
	"github.com/finance-tracker/wallet/internal/infra/db"
	"github.com/finance-tracker/wallet/internal/infra/seed"
	"github.com/finance-tracker/wallet/internal/infra/server/router"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/wallet/internal/integration/metrics"
	"github.com/finance-tracker/wallet/internal/integration/persistence"
	"github.com/finance-tracker/wallet/internal/integration/persistence/boltdb"
	"github.com/finance-tracker/wallet/internal/integration/persistence/memory"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
	"github.com/finance-tracker/wallet/internal/integration/persistence/redisstore"
)

// Dependencies are the collaborators the application is built on.
type Dependencies struct {
	TransactionRepo  adapter.TransactionRepository
	IdempotencyStore adapter.IdempotencyStore // Optional
	Clock            adapter.Clock
	StoreChecker     controller.HealthChecker // Optional
	CacheChecker     controller.HealthChecker // Optional
	Registry         *prometheus.Registry     // Nil disables metrics
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
	Seeder      *seed.Seeder
	closers     []func() error
}

// NewInjector opens the configured store and caches and wires the application on top of them.
func NewInjector(cfg *config.Config) (*Injector, error) {
	deps := Dependencies{Clock: adapter.SystemClock{}}
	var closers []func() error

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		deps.TransactionRepo = memory.NewTransactionRepository()

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		var database *db.Database
		var err error
		if cfg.Store.Driver == config.StoreDriverPostgres {
			database, err = db.NewPostgresConnection(&cfg.Database)
		} else {
			database, err = db.NewSQLiteConnection(cfg.Store.SQLitePath, &cfg.Database)
		}
		if err != nil {
			return nil, err
		}
		closers = append(closers, database.Close)

		if err := database.AutoMigrate(model.AllModels()...); err != nil {
			closeAll()
			return nil, err
		}
		deps.TransactionRepo = persistence.NewTransactionRepository(database.DB())
		deps.StoreChecker = database.Ping

	case config.StoreDriverBolt:
		database, err := db.NewBoltConnection(cfg.Store.BoltPath)
		if err != nil {
			return nil, err
		}
		closers = append(closers, database.Close)

		repo, err := boltdb.NewTransactionRepository(database.DB())
		if err != nil {
			closeAll()
			return nil, err
		}
		deps.TransactionRepo = repo
		deps.StoreChecker = database.Ping

		if !cfg.Redis.Enabled {
			store, err := boltdb.NewIdempotencyStore(database.DB(), cfg.Redis.IdempotencyTTL)
			if err != nil {
				closeAll()
				return nil, err
			}
			deps.IdempotencyStore = store
		}

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			closeAll()
			return nil, err
		}
		closers = append(closers, client.Close)
		deps.IdempotencyStore = redisstore.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
		deps.CacheChecker = redisChecker(client)
	}

	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	injector := Build(cfg, deps)
	injector.closers = closers
	return injector, nil
}

// Build wires use cases, controllers and the router on top of deps.
func Build(cfg *config.Config, deps Dependencies) *Injector {
	var recorder adapter.MetricsRecorder = adapter.NoopMetrics{}
	var metricsHandler http.Handler
	if deps.Registry != nil {
		recorder = metrics.NewPrometheusMetrics(deps.Registry)
		metricsHandler = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	}

	clock := deps.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	transactionRepo := metrics.NewInstrumentedTransactionRepository(deps.TransactionRepo, recorder)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, deps.IdempotencyStore, clock, recorder)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create dashboard and category use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, clock)
	listCategoriesUseCase := category.NewListCategoriesUseCase(transactionRepo)

	// Create controllers
	codec := valueobject.BRL
	if cfg.Currency.Symbol != "" {
		codec.Symbol = cfg.Currency.Symbol
	}

	healthController := controller.NewHealthController(cfg.Store.Driver, deps.StoreChecker, deps.CacheChecker)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	currencyController := controller.NewCurrencyController(codec)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		rateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	r := router.NewRouter(
		healthController,
		transactionController,
		dashboardController,
		categoryController,
		currencyController,
		rateLimiter,
		recorder,
		metricsHandler,
	)

	return &Injector{
		Config:      cfg,
		Router:      r,
		RateLimiter: rateLimiter,
		Seeder:      seed.NewSeeder(createTransactionUseCase, clock, gofakeit.New(0)),
	}
}

// Close releases every connection opened by NewInjector, most recent first.
func (i *Injector) Close() error {
	var errs []error
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		if err := i.closers[idx](); err != nil {
			errs = append(errs, err)
		}
	}
	i.closers = nil
	if len(errs) > 0 {
		slog.Error("Failed to release resources", "error", errors.Join(errs...))
	}
	return errors.Join(errs...)
}

func redisChecker(client *redis.Client) controller.HealthChecker {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// RateLimiterCleanupInterval returns how often idle rate limiter entries are dropped.
func (i *Injector) RateLimiterCleanupInterval() time.Duration {
	if i.Config.RateLimit.CleanupInterval <= 0 {
		return time.Minute
	}
	return i.Config.RateLimit.CleanupInterval
}
