// Package cli implements the interactive terminal front end of todocli:
// a REPL dispatching auth and task commands onto the session store and
// the task collection cache.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/artembredak/todocli/internal/client/api"
	"github.com/artembredak/todocli/internal/client/config"
	"github.com/artembredak/todocli/internal/client/models"
	"github.com/artembredak/todocli/internal/client/session"
	"github.com/artembredak/todocli/internal/client/state"
	"github.com/artembredak/todocli/internal/client/tasks"
	"github.com/artembredak/todocli/internal/logging"
)

// Mode reflects the last known reachability of the server.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	cache   *tasks.Cache
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader

	mu     sync.Mutex
	mode   Mode
	search string
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.Open(ctx, cfg.StateDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing state database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)

	return &App{
		config:  cfg,
		client:  apiClient,
		session: session.NewStore(state.NewSQLiteRepository(db), logger),
		cache:   tasks.NewCache(apiClient, logger),
		log:     logger,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		mode:    ModeOnline,
	}, nil
}

// Run restores the session, starts the connectivity watcher, and hands
// control to the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.session.Init(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if u, ok := a.session.Current(); ok {
		log.Printf("Welcome back, %s", u.Username)
		if err := a.cache.Refresh(ctx, u.Owner(), models.FilterAll); err != nil {
			log.Printf("Could not fetch tasks: %s", err.Error())
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchConnectivity(ctx, a.config.PingInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

// currentUser returns the authenticated user or an error suitable for
// printing when the command requires a login.
func (a *App) currentUser() (models.User, error) {
	u, ok := a.session.Current()
	if !ok {
		return models.User{}, fmt.Errorf("not logged in")
	}
	return u, nil
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		log.Printf("Server is %s", mode)
	}
}

func (a *App) status() string {
	s := ""
	if u, ok := a.session.Current(); ok {
		s = u.Username + " "
	}
	s += string(a.currentMode())
	return "(" + s + ")"
}

// watchConnectivity periodically probes the server and flips the mode
// shown in the prompt when reachability changes.
func (a *App) watchConnectivity(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
