// Package cli is the terminal dashboard: a REPL over the session guard and
// the entity stores, with navigation gated by the route guard.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/justdoit/internal/client/config"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/client/session"
	"github.com/dmitrijs2005/justdoit/internal/client/stores"
	"github.com/dmitrijs2005/justdoit/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client remote.Client
	guard  *session.Guard

	todos      *stores.TodoStore
	priorities *stores.PriorityStore
	contacts   *stores.ContactStore
	settings   *stores.SettingsStore

	reader *bufio.Reader

	// path is the virtual route of the screen being shown; the route guard
	// evaluates it on every navigation. resumePath remembers the target of an
	// interrupted navigation until the next successful sign-in.
	path       string
	resumePath string
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	client := remote.NewHTTPClient(cfg.EndpointURL, cfg.APIKey, cfg.RequestTimeout)
	guard := session.NewGuard(client, logger, cfg.RedirectURL)
	notifier := newPrintNotifier(os.Stdout)

	return &App{
		config:     cfg,
		logger:     logger,
		client:     client,
		guard:      guard,
		todos:      stores.NewTodoStore(client, guard, notifier),
		priorities: stores.NewPriorityStore(client, guard, notifier),
		contacts:   stores.NewContactStore(client, guard, notifier),
		settings:   stores.NewSettingsStore(client, guard, notifier),
		reader:     bufio.NewReader(os.Stdin),
		path:       "/",
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.guard.Close()

	// Resolve the persisted session (if any) before showing the first prompt,
	// so protected screens never render in the unknown state.
	a.guard.CheckSession(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.guard.StartRefreshWatcher(watchCtx, a.config.SessionRefreshInterval)

	a.Root(ctx)
}

func (a *App) isAuthenticated() bool {
	return a.guard.State() == session.StateAuthenticated
}
