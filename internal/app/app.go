package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/database"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/health"
	pkgkafka "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/kafka"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/middleware"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/tracing"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/config"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/event"
	handler "github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/handler/http"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository"
	memoryrepo "github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository/memory"
	postgresrepo "github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository/postgres"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/service"
)

// App wires together all dependencies and runs the shop service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing. Returns a no-op shutdown when disabled.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  "shop",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTELEndpoint,
		SampleRate:   cfg.OTELSampleRate,
		Enabled:      cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Pick the storage backend.
	var (
		productRepo repository.ProductRepository
		cartRepo    repository.CartRepository
		pool        *pgxpool.Pool
	)

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pgCfg := database.DefaultPostgresConfig()
		pgCfg.Host = cfg.PostgresHost
		pgCfg.Port = cfg.PostgresPort
		pgCfg.User = cfg.PostgresUser
		pgCfg.Password = cfg.PostgresPassword
		pgCfg.DBName = cfg.PostgresDB
		pgCfg.SSLMode = cfg.PostgresSSLMode

		pool, err = database.NewPostgresPool(ctx, &pgCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := postgresrepo.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}

		productRepo = postgresrepo.NewProductRepository(pool)
		cartRepo = postgresrepo.NewCartRepository(pool)
		logger.Info("using postgres storage",
			slog.String("host", cfg.PostgresHost),
			slog.String("database", cfg.PostgresDB),
		)

	default:
		productRepo = memoryrepo.NewProductRepository()
		cartRepo = memoryrepo.NewCartRepository()
		logger.Info("using in-memory storage")
	}

	// Seed the demo catalog. Seeding is idempotent.
	if err := productRepo.Seed(ctx, repository.SeedProducts()); err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, fmt.Errorf("seed products: %w", err)
	}

	// Initialize Kafka producer when brokers are configured. Without
	// brokers the event producer runs disabled and publishes become no-ops.
	var producer *pkgkafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
		producer = pkgkafka.NewProducer(kafkaCfg, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	} else {
		logger.Info("kafka disabled, events will not be published")
	}
	eventProducer := event.NewProducer(producer, logger)

	// Build the dependency graph.
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(productRepo, cartRepo, eventProducer, logger)
	checkoutService := service.NewCheckoutService(cartRepo, eventProducer, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	if pool != nil {
		healthHandler.Register("postgres", func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
	}
	if producer != nil {
		healthHandler.Register("kafka", func(ctx context.Context) error {
			return producer.Ping(ctx)
		})
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins
	}

	router := handler.NewRouter(catalogService, cartService, checkoutService, healthHandler, logger, corsConfig)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
