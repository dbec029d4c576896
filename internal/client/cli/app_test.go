package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/config"
	"github.com/kamanbo/techfolio/internal/client/localstore"
	"github.com/kamanbo/techfolio/internal/client/models"
	"github.com/kamanbo/techfolio/internal/client/session"
	"github.com/kamanbo/techfolio/internal/logging"
)

// stubClient embeds the interface so tests only fill in the methods a flow
// actually reaches; an unexpected call panics and fails the test loudly.
type stubClient struct {
	api.Client
	loginFn       func(ctx context.Context, username, password string) (api.TokenGrant, error)
	registerFn    func(ctx context.Context, reg api.Registration) (models.User, error)
	currentUserFn func(ctx context.Context) (models.User, error)
	listEventsFn  func(ctx context.Context) ([]models.Event, error)
}

func (s *stubClient) Login(ctx context.Context, username, password string) (api.TokenGrant, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubClient) Register(ctx context.Context, reg api.Registration) (models.User, error) {
	return s.registerFn(ctx, reg)
}

func (s *stubClient) CurrentUser(ctx context.Context) (models.User, error) {
	return s.currentUserFn(ctx)
}

func (s *stubClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.listEventsFn(ctx)
}

func newTestApp(t *testing.T, client api.Client, input string) *App {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	local, err := localstore.Open(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	a := &App{
		config:  &config.Config{},
		local:   local,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader(input)),
		session: session.NewStore(local, log),
		view:    ViewHome,
	}
	a.api = client
	a.session.SetClient(client)
	a.navigate(context.Background(), ViewHome)
	require.NoError(t, a.session.Rehydrate(context.Background()))
	return a
}

// stubPrompts swaps the interactive seams for canned answers.
func stubPrompts(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPass
	})

	ti, pi := 0, 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		require.Less(t, ti, len(texts), "unexpected text prompt: %s", prompt)
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(w io.Writer, prompt string) (string, error) {
		require.Less(t, pi, len(passwords), "unexpected password prompt: %s", prompt)
		v := passwords[pi]
		pi++
		return v, nil
	}
}

func TestNavigateCancelsPreviousView(t *testing.T) {
	a := newTestApp(t, &stubClient{}, "")

	first := a.viewCtx
	a.navigate(context.Background(), ViewEvents)

	assert.Equal(t, ViewEvents, a.view)
	assert.ErrorIs(t, first.Err(), context.Canceled, "leaving a view cancels its requests")
	assert.NoError(t, a.viewCtx.Err())
}

func TestHandleUnauthorizedRedirectsToLogin(t *testing.T) {
	lines := capturePrintln(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			return api.TokenGrant{AccessToken: "tok", UserType: "user", Username: "alice"}, nil
		},
		currentUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{Username: "alice"}, nil
		},
	}
	a := newTestApp(t, client, "")
	require.NoError(t, a.session.Login(context.Background(), "alice", "secret"))
	a.navigate(context.Background(), ViewEvents)

	a.handleUnauthorized()

	assert.False(t, a.session.State().IsAuthenticated())
	assert.Equal(t, ViewLogin, a.view)
	assert.Contains(t, strings.Join(*lines, "\n"), "Session expired")
}

func TestHandleUnauthorizedStaysOnLoginView(t *testing.T) {
	lines := capturePrintln(t)
	a := newTestApp(t, &stubClient{}, "")
	a.navigate(context.Background(), ViewLogin)
	before := a.viewCtx

	a.handleUnauthorized()

	assert.Equal(t, ViewLogin, a.view)
	assert.NoError(t, before.Err(), "no re-navigation while already on the login view")
	assert.NotContains(t, strings.Join(*lines, "\n"), "Session expired")
}

func TestGateView(t *testing.T) {
	lines := capturePrintln(t)
	a := newTestApp(t, &stubClient{}, "")

	// Anonymous sessions are sent to login.
	ok := a.gateView(context.Background(), false)
	assert.False(t, ok)
	assert.Equal(t, ViewLogin, a.view)
	assert.Contains(t, strings.Join(*lines, "\n"), "Please log in first.")
}

func TestGateViewAdminOnly(t *testing.T) {
	lines := capturePrintln(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			return api.TokenGrant{AccessToken: "tok", UserType: "user", Username: "alice"}, nil
		},
		currentUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{Username: "alice"}, nil
		},
	}
	a := newTestApp(t, client, "")
	require.NoError(t, a.session.Login(context.Background(), "alice", "secret"))

	// A user session passes the plain gate but not the admin gate.
	assert.True(t, a.gateView(context.Background(), false))

	ok := a.gateView(context.Background(), true)
	assert.False(t, ok)
	assert.Equal(t, ViewHome, a.view)
	assert.Contains(t, strings.Join(*lines, "\n"), "Admin access required.")
}

func TestLoginCommand(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{"alice"}, []string{"secret"})

	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "secret", password)
			return api.TokenGrant{AccessToken: "tok", UserType: "user", Username: "alice"}, nil
		},
		currentUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{Username: "alice"}, nil
		},
	}
	a := newTestApp(t, client, "")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.session.State().IsAuthenticated())
	assert.Equal(t, ViewHome, a.view)
}

func TestLoginCommandInvalidCredentials(t *testing.T) {
	lines := capturePrintln(t)
	stubPrompts(t, []string{"alice"}, []string{"wrong"})

	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			return api.TokenGrant{}, api.ErrInvalidCredentials
		},
	}
	a := newTestApp(t, client, "")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
	assert.Equal(t, ViewLogin, a.view)
	assert.Contains(t, strings.Join(*lines, "\n"), "Invalid username or password.")
}

func TestLoginCommandValidatesBeforeNetwork(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{""}, []string{"secret"})

	// loginFn is nil: reaching the network would panic the test.
	a := newTestApp(t, &stubClient{}, "")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.False(t, a.session.State().IsAuthenticated())
}

func TestRegisterCommand(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t,
		[]string{"alice@example.com", "alice", "Alice Liddell"},
		[]string{"supersecret", "supersecret"})

	var gotReg api.Registration
	client := &stubClient{
		registerFn: func(ctx context.Context, reg api.Registration) (models.User, error) {
			gotReg = reg
			return models.User{ID: 1, Username: reg.Username}, nil
		},
	}
	a := newTestApp(t, client, "")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice", gotReg.Username)
	assert.Equal(t, "alice@example.com", gotReg.Email)
	assert.Equal(t, ViewLogin, a.view, "registration hands off to login")
	assert.False(t, a.session.State().IsAuthenticated())
}

func TestRegisterCommandMismatchedPasswords(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t,
		[]string{"alice@example.com", "alice", "Alice Liddell"},
		[]string{"supersecret", "different"})

	a := newTestApp(t, &stubClient{}, "")

	err := a.Register(context.Background())
	require.Error(t, err)
}

func TestLogoutCommand(t *testing.T) {
	capturePrintln(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			return api.TokenGrant{AccessToken: "tok", UserType: "user", Username: "alice"}, nil
		},
		currentUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{Username: "alice"}, nil
		},
	}
	a := newTestApp(t, client, "")
	require.NoError(t, a.session.Login(context.Background(), "alice", "secret"))

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.session.State().IsAuthenticated())
	assert.Equal(t, ViewHome, a.view)
}

func TestStatus(t *testing.T) {
	client := &stubClient{
		loginFn: func(ctx context.Context, username, password string) (api.TokenGrant, error) {
			return api.TokenGrant{AccessToken: "tok", UserType: "user", Username: "alice"}, nil
		},
		currentUserFn: func(ctx context.Context) (models.User, error) {
			return models.User{Username: "alice"}, nil
		},
	}
	a := newTestApp(t, client, "")

	assert.Equal(t, "home anonymous", a.status())

	require.NoError(t, a.session.Login(context.Background(), "alice", "secret"))
	assert.Equal(t, "home user:alice", a.status())
}
