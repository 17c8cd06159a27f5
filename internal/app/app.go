package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	accountrepo "github.com/aidenliw/msl-mohawk/internal/adapter/postgres/account"
	productrepo "github.com/aidenliw/msl-mohawk/internal/adapter/postgres/product"
	"github.com/aidenliw/msl-mohawk/internal/adapter/postgres/productkey"
	studentrepo "github.com/aidenliw/msl-mohawk/internal/adapter/postgres/student"
	uploadrepo "github.com/aidenliw/msl-mohawk/internal/adapter/postgres/upload"
	"github.com/aidenliw/msl-mohawk/internal/auth"
	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/service/account"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
	"github.com/aidenliw/msl-mohawk/internal/service/listing"
	"github.com/aidenliw/msl-mohawk/internal/transport/middleware"
	"github.com/aidenliw/msl-mohawk/internal/transport/rest"
	"github.com/aidenliw/msl-mohawk/migrations"
)

const rateLimitCleanupInterval = time.Minute

// Services groups the domain services built over one connection pool.
type Services struct {
	Ingestion *ingestion.Service
	Listing   *listing.Service
	Account   *account.Service
}

// NewServices wires the postgres repositories into the domain services.
func NewServices(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) *Services {
	students := studentrepo.New(pool)
	products := productrepo.New(pool)
	keys := productkey.New(pool)
	accounts := accountrepo.New(pool)
	uploads := uploadrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return &Services{
		Ingestion: ingestion.NewService(log, students, products, keys, uploads, tx, cfg.Upload),
		Listing:   listing.NewService(log, students, products, accounts, uploads, keys, cfg.Listing),
		Account:   account.NewService(log, accounts),
	}
}

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, optionally migrates, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	svcs := NewServices(cfg, logger, pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, Version),
		Upload:  rest.NewUploadHandler(svcs.Ingestion, cfg.Upload.MaxBytes, logger),
		List:    rest.NewListHandler(svcs.Listing, logger),
		Account: rest.NewAccountHandler(svcs.Account, logger),
	}, limiter.Limit(cfg.Upload.RatePerMinute))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logger.Info("application stopped")
	return err
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := migrations.NewMigrator(dsn, logger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up(ctx)
}
