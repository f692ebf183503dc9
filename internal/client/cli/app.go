package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rosdobro/dobrodela-cli/internal/client/api"
	"github.com/rosdobro/dobrodela-cli/internal/client/config"
	"github.com/rosdobro/dobrodela-cli/internal/client/cookies"
	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/client/services"
	"github.com/rosdobro/dobrodela-cli/internal/client/session"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	catalog services.CatalogService
	session *session.Holder
	log     logging.Logger
	reader  *bufio.Reader
	Mode    Mode
}

// NewApp wires the cookie jar, the API client, and the services around a
// fresh session holder. An empty CookieDBPath selects an in-memory jar.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) *App {
	var repo cookierepo.Repository
	if c.CookieDBPath == "" {
		repo = cookierepo.NewMemoryRepository()
	} else {
		repo = cookies.OpenRepository(ctx, log, c.CookieDBPath)
	}

	store := cookies.NewStore(repo, log, c.Production)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)
	holder := session.NewHolder()

	return &App{
		config:  c,
		auth:    services.NewAuthService(apiClient, store, holder, log),
		catalog: services.NewCatalogService(apiClient, log),
		session: holder,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		Mode:    ModeOnline,
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// getStatus renders the prompt suffix: "(login mode)" when known.
func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Login + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores the previous session, starts the connectivity watcher, and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.auth.Startup(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Доброделы CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// StartOnlineStatusWatcher periodically pings the backend and flips Mode
// between online and offline. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.catalog.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
