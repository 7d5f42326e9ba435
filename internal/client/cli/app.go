package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/router"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Mode is the reachability of the upstream as last probed.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	client  client.Client
	store   kv.Repository
	session *services.SessionManager
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	lastView router.View
	rendered bool
}

// NewApp wires the store, the upstream client and the session manager
// from c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := OpenStore(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session store", "driver", c.StoreDriver, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return newApp(c, apiClient, store, log, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, apiClient client.Client, store kv.Repository, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	session := services.NewSessionManager(apiClient, store, log,
		services.WithProfileUserID(c.ProfileUserID),
		services.WithProfileFromToken(c.ProfileFromToken),
	)

	a := &App{
		config:  c,
		client:  apiClient,
		store:   store,
		session: session,
		log:     log,
		reader:  reader,
		out:     out,
	}
	session.Subscribe(a.onSessionChange)
	return a
}

// Run restores the previous session, shows the routed screen and runs the
// REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to storefront (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		return err
	}

	if a.config.OnlineCheckInterval > 0 {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the upstream client and the store.
func (a *App) Close() error {
	return errors.Join(a.client.Close(), a.store.Close())
}

func (a *App) view() router.View {
	return router.Select(a.session.Snapshot())
}

// onSessionChange re-renders when the routed view changes.
func (a *App) onSessionChange(s models.Snapshot) {
	v := router.Select(s)

	a.mu.Lock()
	changed := !a.rendered || v != a.lastView
	a.lastView, a.rendered = v, true
	a.mu.Unlock()

	if !changed {
		return
	}
	a.log.Debug(context.Background(), "view selected", "view", v.String(), "status", s.Status.String())
	a.render(v, s)
}

func (a *App) render(v router.View, s models.Snapshot) {
	switch v {
	case router.ViewLoading:
		renderLoading(a.out)
	case router.ViewProfile:
		renderProfile(a.out, s.User)
	default:
		renderLogin(a.out, s.LastError)
	}
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "upstream reachability changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// getStatus builds the prompt decoration, e.g. "(johnd online)".
func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.LoggedIn() {
		s = snap.User.Username
	}
	if m := a.getMode(); m != ModeUnknown {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

// probe pings the upstream once and records the result.
func (a *App) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := a.client.Ping(ctx)
	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
	return err
}

// StartOnlineStatusWatcher probes the upstream every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}
