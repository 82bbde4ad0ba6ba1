// Package server initializes and runs the data service: it connects to
// PostgreSQL, applies migrations, and serves the REST boundary until the
// process is told to stop.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/justdoit/internal/logging"
	"github.com/dmitrijs2005/justdoit/internal/server/accounts"
	"github.com/dmitrijs2005/justdoit/internal/server/config"
	"github.com/dmitrijs2005/justdoit/internal/server/contacts"
	"github.com/dmitrijs2005/justdoit/internal/server/httpapi"
	"github.com/dmitrijs2005/justdoit/internal/server/priorities"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/justdoit/internal/server/settings"
	"github.com/dmitrijs2005/justdoit/internal/server/todos"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	accountService := accounts.NewService(rm.Accounts(db), cfg)
	todoService := todos.NewService(rm.Todos(db))
	priorityService := priorities.NewService(rm.Priorities(db))
	contactService := contacts.NewService(rm.Contacts(db))
	settingsService := settings.NewService(rm.Settings(db))

	api := httpapi.NewServer(logger, cfg.ServiceKey,
		accountService, todoService, priorityService, contactService, settingsService)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.BindAddr,
		Handler: app.api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.BindAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return app.db.Close()
}
