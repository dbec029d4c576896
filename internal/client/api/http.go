package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamanbo/techfolio/internal/client/models"
	"github.com/kamanbo/techfolio/internal/logging"
)

// DefaultTimeout is the shared client-wide deadline applied to every call
// unless the caller's context expires first.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the current bearer token, or "" when no session
// exists. Keeping this a function keeps the session store the single owner
// of the token.
type TokenSource func() string

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized func()
	log            logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource sets the bearer-token supplier.
func WithTokenSource(fn TokenSource) Option {
	return func(c *HTTPClient) { c.token = fn }
}

// WithUnauthorizedHook registers a callback fired exactly once for every
// 401 response, regardless of which call produced it.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

// WithTimeout overrides the client-wide deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// NewHTTPClient constructs a client bound to the given base URL.
func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request and normalizes the outcome. There is exactly one
// attempt; callers decide whether to resubmit.
func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Request sent, no response received.
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
		return nil
	}

	return c.mapError(ctx, method, path, resp.StatusCode, data)
}

// mapError converts a non-2xx response into one of the sentinel errors.
func (c *HTTPClient) mapError(ctx context.Context, method, path string, status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		if path == "/token" {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized
	case http.StatusForbidden:
		c.log.Warn(ctx, "permission denied", "method", method, "path", path)
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		if detail := errorDetail(body); detail != "" {
			return fmt.Errorf("%w: %s", ErrServer, detail)
		}
		return fmt.Errorf("%w: %s %s: status %d", ErrServer, method, path, status)
	}
}

// errorDetail extracts the service's {"detail": ...} message, if any.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s %s payload: %w", method, path, err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(data), out)
}

// Login exchanges credentials for a bearer token. The token endpoint is
// form-encoded, unlike the rest of the API.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (TokenGrant, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var grant TokenGrant
	err := c.do(ctx, http.MethodPost, "/token",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &grant)
	if err != nil {
		return TokenGrant{}, err
	}
	return grant, nil
}

// Register creates a new account. It does not establish a session; the
// caller logs in separately.
func (c *HTTPClient) Register(ctx context.Context, reg Registration) (models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/", reg, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser fetches the authenticated user's profile.
func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/me", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile submits a partial profile update and returns the server's
// authoritative representation.
func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPut, "/users/me", upd, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SaveEvent bookmarks an event on the user's profile.
func (c *HTTPClient) SaveEvent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/me/save-event/%d", id), "", nil, nil)
}

// SaveOpportunity bookmarks an opportunity on the user's profile.
func (c *HTTPClient) SaveOpportunity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/me/save-opportunity/%d", id), "", nil, nil)
}

// ListEvents fetches the full event catalog. Filtering happens client-side.
func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/events/", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event (admin only). The event date is normalized
// to a midnight-UTC timestamp before sending.
func (c *HTTPClient) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	ev.Date = normalizeDate(ev.Date)
	var created models.Event
	if err := c.sendJSON(ctx, http.MethodPost, "/events/", ev, &created); err != nil {
		return models.Event{}, err
	}
	return created, nil
}

// UpdateEvent replaces an event (admin only).
func (c *HTTPClient) UpdateEvent(ctx context.Context, id int, ev models.Event) (models.Event, error) {
	ev.Date = normalizeDate(ev.Date)
	var updated models.Event
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), ev, &updated); err != nil {
		return models.Event{}, err
	}
	return updated, nil
}

// DeleteEvent removes an event (admin only).
func (c *HTTPClient) DeleteEvent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), "", nil, nil)
}

// ListOpportunities fetches the full opportunity catalog.
func (c *HTTPClient) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	var ops []models.Opportunity
	if err := c.getJSON(ctx, "/opportunities/", &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// CreateOpportunity creates an opportunity (admin only). The deadline is
// normalized to a midnight-UTC timestamp before sending.
func (c *HTTPClient) CreateOpportunity(ctx context.Context, op models.Opportunity) (models.Opportunity, error) {
	op.Deadline = normalizeDate(op.Deadline)
	var created models.Opportunity
	if err := c.sendJSON(ctx, http.MethodPost, "/opportunities/", op, &created); err != nil {
		return models.Opportunity{}, err
	}
	return created, nil
}

// UpdateOpportunity replaces an opportunity (admin only).
func (c *HTTPClient) UpdateOpportunity(ctx context.Context, id int, op models.Opportunity) (models.Opportunity, error) {
	op.Deadline = normalizeDate(op.Deadline)
	var updated models.Opportunity
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/opportunities/%d", id), op, &updated); err != nil {
		return models.Opportunity{}, err
	}
	return updated, nil
}

// DeleteOpportunity removes an opportunity (admin only).
func (c *HTTPClient) DeleteOpportunity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/opportunities/%d", id), "", nil, nil)
}

// LikeOpportunity increments the like counter.
func (c *HTTPClient) LikeOpportunity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/opportunities/%d/like", id), "", nil, nil)
}

// ApplyOpportunity records an application.
func (c *HTTPClient) ApplyOpportunity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/opportunities/%d/apply", id), "", nil, nil)
}

// normalizeDate widens a date-only string ("2006-01-02") into a midnight
// UTC timestamp. Anything else passes through unchanged; the server is the
// authority on malformed input.
func normalizeDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}
