package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/client"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/models"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	client client.Client
	config *config.Config
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu       sync.RWMutex
	session  *models.Session
	mode     Mode
	lastList []models.Task
}

// NewApp wires the shell to c. Input is read from in and all user-facing
// output goes to out.
func NewApp(c client.Client, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	mode := ModeLocal
	if cfg.Mode == config.ModeRemote {
		mode = ModeOffline
	}
	return &App{
		client: c,
		config: cfg,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
		mode:   mode,
	}
}

// Run restores the persisted session, starts the reachability watcher in
// remote mode and serves commands until exit, EOF or ctx is done. The
// client is closed on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			a.logger.Error(ctx, "close client", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to Taskboard CLI (type 'help' for commands)")

	if a.config.Mode == config.ModeRemote {
		a.checkOnline(ctx)
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}

	a.restoreSession(ctx)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.client.GetSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "restore session", "error", err)
		return
	}
	if s == nil {
		return
	}
	a.setSession(s)
	fmt.Fprintf(a.out, "Logged in as %s\n", s.User.Username)
}

func (a *App) setSession(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
	a.lastList = nil
}

func (a *App) user() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return models.User{}, false
	}
	return a.session.User, true
}

func (a *App) isLoggedIn() bool {
	_, ok := a.user()
	return ok
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.user(); ok {
		s = u.Username + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.currentMode())
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.client.Ping(pingCtx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is
// done, switching between ModeOnline and ModeOffline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// check drops the local session when the backend rejects its token.
func (a *App) check(err error) error {
	if errors.Is(err, common.ErrInvalidToken) {
		a.setSession(nil)
		return fmt.Errorf("%w, please login again", err)
	}
	return err
}
