// Package session owns the client's identity: the bearer token, the role
// derived from it, and the user profile. The store is observable: views
// subscribe explicitly and re-render on every change, and every change is
// mirrored to the durable local store so a restart rehydrates the session
// without a network round trip.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/localstore"
	"github.com/kamanbo/techfolio/internal/client/models"
	"github.com/kamanbo/techfolio/internal/logging"
)

// ErrNotAuthenticated is returned by user-only actions (saving an event or
// opportunity) when the session is not a user session.
var ErrNotAuthenticated = errors.New("not authenticated as user")

// State is an immutable snapshot of the session.
//
// Invariant: Role is RoleAnonymous iff Token is empty; Profile is a full
// profile only for RoleUser, a minimal {username} identity for RoleAdmin,
// and nil otherwise.
type State struct {
	Token   string
	Role    models.Role
	Profile *models.User

	// Loaded turns true once rehydration has run; the view gate treats
	// everything before that as pending.
	Loaded bool
}

// IsAuthenticated reports whether a token is present.
func (s State) IsAuthenticated() bool { return s.Token != "" }

// IsAdmin reports whether this is an admin session.
func (s State) IsAdmin() bool { return s.Role == models.RoleAdmin }

// IsUser reports whether this is a regular user session.
func (s State) IsUser() bool { return s.Role == models.RoleUser }

// Store is the single source of truth for identity and role.
type Store struct {
	mu      sync.Mutex
	state   State
	client  api.Client
	local   *localstore.Store
	log     logging.Logger
	subs    map[int]func(State)
	nextSub int
}

// NewStore constructs a session store over the durable local store.
// The API client is bound afterwards with SetClient, because the transport
// reads the bearer token back out of this store.
func NewStore(local *localstore.Store, log logging.Logger) *Store {
	return &Store{
		local: local,
		log:   log,
		subs:  make(map[int]func(State)),
	}
}

// SetClient binds the API client used for authentication and profile calls.
func (s *Store) SetClient(c api.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
}

// Token returns the current bearer token, or "" when logged out. It is the
// TokenSource handed to the API client.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// State returns a snapshot of the session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run on every session change and returns the
// matching unsubscribe. fn is called synchronously with the new snapshot.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set replaces the state and notifies subscribers. Subscribers run outside
// the lock so they may call back into the store.
func (s *Store) set(next State) {
	s.mu.Lock()
	s.state = next
	listeners := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Rehydrate restores a persisted session at startup. The profile may be
// briefly stale until the next authenticated fetch. Rehydrate always marks
// the session loaded, even when nothing was persisted.
func (s *Store) Rehydrate(ctx context.Context) error {
	next := State{Loaded: true}

	token, err := s.local.Get(ctx, localstore.KeyToken)
	if err != nil {
		s.set(next)
		return err
	}
	if len(token) > 0 {
		next.Token = string(token)

		roleRaw, err := s.local.Get(ctx, localstore.KeyUserType)
		if err != nil {
			s.set(next)
			return err
		}
		next.Role = models.ParseRole(string(roleRaw))
		if next.Role == models.RoleAnonymous {
			// A token without a usable role would break the
			// "anonymous iff token absent" invariant; drop it.
			s.set(State{Loaded: true})
			return s.local.Clear(ctx)
		}

		if data, err := s.local.Get(ctx, localstore.KeyUserData); err == nil && len(data) > 0 {
			var user models.User
			if err := json.Unmarshal(data, &user); err == nil {
				next.Profile = &user
			} else {
				s.log.Warn(ctx, "discarding unreadable persisted profile", "error", err)
			}
		}
	}

	s.set(next)
	return nil
}

// Login exchanges credentials for a token, stores token and role, and (for
// user sessions only) chains the dependent profile fetch. The profile call
// cannot precede the token store because it needs the bearer token attached.
// Login succeeds iff the token endpoint grants a token; a failed profile
// fetch is logged and retried implicitly on the next authenticated call.
func (s *Store) Login(ctx context.Context, identifier, secret string) error {
	grant, err := s.client.Login(ctx, identifier, secret)
	if err != nil {
		return err
	}

	role := models.ParseRole(grant.UserType)
	if role == models.RoleAnonymous {
		// The service defaults user_type to "user" when it omits the field.
		role = models.RoleUser
	}
	next := State{Token: grant.AccessToken, Role: role, Loaded: true}

	if role == models.RoleAdmin {
		// No profile endpoint exists for admins; keep a minimal identity.
		next.Profile = &models.User{Username: grant.Username}
	}
	s.set(next)
	s.persist(ctx)

	if role == models.RoleUser {
		profile, err := s.client.CurrentUser(ctx)
		if err != nil {
			s.log.Warn(ctx, "profile fetch after login failed", "error", err)
			return nil
		}
		next.Profile = &profile
		s.set(next)
		s.persist(ctx)
	}
	return nil
}

// Register creates an account. It does not establish a session; callers log
// in separately.
func (s *Store) Register(ctx context.Context, reg api.Registration) error {
	_, err := s.client.Register(ctx, reg)
	return err
}

// UpdateProfile submits a partial update. On success the stored profile is
// replaced wholesale with the server's representation; on failure the
// previously stored profile is left untouched.
func (s *Store) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	updated, err := s.client.UpdateProfile(ctx, upd)
	if err != nil {
		return models.User{}, err
	}

	next := s.State()
	next.Profile = &updated
	s.set(next)
	s.persist(ctx)
	return updated, nil
}

// SaveEvent bookmarks an event for the current user, then refetches the
// profile so the saved-item lists come from the server rather than an
// optimistic local mutation.
func (s *Store) SaveEvent(ctx context.Context, id int) error {
	if !s.State().IsUser() {
		return ErrNotAuthenticated
	}
	if err := s.client.SaveEvent(ctx, id); err != nil {
		return err
	}
	return s.refreshProfile(ctx)
}

// SaveOpportunity bookmarks an opportunity; see SaveEvent.
func (s *Store) SaveOpportunity(ctx context.Context, id int) error {
	if !s.State().IsUser() {
		return ErrNotAuthenticated
	}
	if err := s.client.SaveOpportunity(ctx, id); err != nil {
		return err
	}
	return s.refreshProfile(ctx)
}

func (s *Store) refreshProfile(ctx context.Context) error {
	profile, err := s.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	next := s.State()
	next.Profile = &profile
	s.set(next)
	s.persist(ctx)
	return nil
}

// Logout clears token, role and profile synchronously. It has no network
// side effect and never fails; a local-store wipe error is logged only.
func (s *Store) Logout() {
	ctx := context.Background()
	s.set(State{Loaded: true})
	if err := s.local.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing persisted session failed", "error", err)
	}
}

// HandleUnauthorized is the API client's 401 hook: the server no longer
// honors the token, so the session is dropped like a logout.
func (s *Store) HandleUnauthorized() {
	s.Logout()
}

// persist mirrors the current state to the durable local store. Persistence
// failures degrade to a warning; the in-memory session stays authoritative
// for this process.
func (s *Store) persist(ctx context.Context) {
	st := s.State()
	if st.Token == "" {
		if err := s.local.Clear(ctx); err != nil {
			s.log.Warn(ctx, "clearing persisted session failed", "error", err)
		}
		return
	}

	entries := map[string][]byte{
		localstore.KeyToken:    []byte(st.Token),
		localstore.KeyUserType: []byte(st.Role),
	}
	if st.Profile != nil {
		data, err := json.Marshal(st.Profile)
		if err != nil {
			s.log.Warn(ctx, "encoding profile for persistence failed", "error", err)
		} else {
			entries[localstore.KeyUserData] = data
		}
	}
	// One transaction: a session snapshot is persisted whole or not at all.
	if err := s.local.SetMany(ctx, entries); err != nil {
		s.log.Warn(ctx, "persisting session failed", "error", err)
	}
}
