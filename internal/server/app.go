// Package server initializes and runs the application: it opens the
// database, runs migrations, selects the asset store, and starts the HTTP
// server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/petarea/petarea/internal/logging"
	"github.com/petarea/petarea/internal/server/assets"
	"github.com/petarea/petarea/internal/server/config"
	"github.com/petarea/petarea/internal/server/httpapi"
	"github.com/petarea/petarea/internal/server/repositories/repomanager"
	"github.com/petarea/petarea/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	ps := services.NewPetService(db, rm)

	store, uploadDir, err := newAssetStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("asset store init error: %w", err)
	}

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, ps, store, cfg.SecretKey, uploadDir)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// newAssetStore picks the S3 store when a bucket is configured, the local
// disk store otherwise. The returned dir is non-empty only for the disk
// store, where the HTTP layer must serve it statically.
func newAssetStore(ctx context.Context, cfg *config.Config) (assets.Store, string, error) {
	if cfg.S3Bucket != "" {
		store, err := assets.NewS3Store(ctx, cfg)
		return store, "", err
	}
	store, err := assets.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
