package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/config"
	"github.com/kamanbo/techfolio/internal/client/localstore"
	"github.com/kamanbo/techfolio/internal/client/session"
	"github.com/kamanbo/techfolio/internal/logging"
)

// View names the screen the REPL is currently on. Navigation matters for
// two reasons: the 401 handler must not redirect to the login view when the
// user is already there, and leaving a view cancels its in-flight requests.
type View string

const (
	ViewHome          View = "home"
	ViewLogin         View = "login"
	ViewRegister      View = "register"
	ViewEvents        View = "events"
	ViewOpportunities View = "opportunities"
	ViewProfile       View = "profile"
	ViewAdmin         View = "admin"
)

// App wires the session store, API client and interactive views together.
type App struct {
	config  *config.Config
	session *session.Store
	api     api.Client
	local   *localstore.Store
	log     logging.Logger
	reader  *bufio.Reader

	view       View
	viewCtx    context.Context
	viewCancel context.CancelFunc
}

// NewApp builds the application: local store, session store, and the HTTP
// client whose token source and 401 hook both point back at the app.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	local, err := localstore.Open(ctx, cfg.LocalStorePath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	a := &App{
		config:  cfg,
		local:   local,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		session: session.NewStore(local, log),
		view:    ViewHome,
	}

	client := api.NewHTTPClient(cfg.BaseURL, log,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenSource(a.session.Token),
		api.WithUnauthorizedHook(a.handleUnauthorized),
	)
	a.api = client
	a.session.SetClient(client)

	if err := a.session.Rehydrate(ctx); err != nil {
		log.Warn(ctx, "session rehydration failed", "error", err)
	}

	return a, nil
}

// Run drives the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.navigate(ctx, ViewHome)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the local store. Safe to call once.
func (a *App) Close() {
	if a.viewCancel != nil {
		a.viewCancel()
	}
	if err := a.local.Close(); err != nil {
		a.log.Warn(context.Background(), "closing local store failed", "error", err)
	}
}

// navigate switches the current view, cancelling any request still in
// flight for the previous one so a late response cannot land in a view that
// is no longer showing.
func (a *App) navigate(ctx context.Context, v View) {
	if a.viewCancel != nil {
		a.viewCancel()
	}
	a.view = v
	a.viewCtx, a.viewCancel = context.WithCancel(ctx)
}

// handleUnauthorized is fired by the API client on every 401: the session
// is cleared and the app redirects to the login view, unless it is already
// there, which keeps a failing login attempt from looping.
func (a *App) handleUnauthorized() {
	a.session.HandleUnauthorized()
	if a.view == ViewLogin {
		return
	}
	a.navigate(context.Background(), ViewLogin)
	printlnFn("Session expired, please log in again.")
}

// status renders the REPL prompt segment: current view plus identity.
func (a *App) status() string {
	st := a.session.State()
	who := "anonymous"
	if st.IsAuthenticated() && st.Profile != nil {
		who = fmt.Sprintf("%s:%s", st.Role, st.Profile.Username)
	} else if st.IsAuthenticated() {
		who = st.Role.String()
	}
	return fmt.Sprintf("%s %s", a.view, who)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.State().IsAdmin()
}
