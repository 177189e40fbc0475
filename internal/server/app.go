// Package server wires configuration, storage and the two transports
// (gRPC and HTTP) of gophauth and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/rest"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	authService   *services.AuthService
	authenticator *auth.TokenAuthenticator
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.SlogLevel())

	rm, db, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec, err := auth.NewTokenCodec([]byte(c.SecretKey))
	if err != nil {
		closeDB(db)
		return nil, err
	}

	hasher := auth.NewPasswordHasher(c.BcryptCost, auth.NewWorkerPool(c.HashWorkers))

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		authService:   services.NewAuthService(db, rm, hasher, codec, services.WithLogger(logger)),
		authenticator: auth.NewTokenAuthenticator(codec),
	}, nil
}

// openStorage returns the repository manager for the configured backend and,
// for Postgres, a migrated connection pool.
func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, *sql.DB, error) {
	if c.StorageKind == config.StorageMemory {
		return repomanager.NewMemoryRepositoryManager(), nil, nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return rm, db, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves gRPC and HTTP until ctx is done, a signal arrives or either
// server fails; the other one is stopped as well.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageKind)

	app.initSignalHandler(ctx, cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.authenticator)
	httpServer := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.authService, app.authenticator, app.config.ShutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Run(gctx)
	})
	g.Go(func() error {
		return httpServer.Run(gctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}

	closeDB(app.db)
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")

	return err
}
