package api

import "errors"

// Sentinel errors returned by Client implementations. Callers should match
// them with errors.Is; ErrServer and ErrNetwork are wrapped with detail.
var (
	// ErrInvalidCredentials is a 401 from the token endpoint.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is a 401 from any other endpoint.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is a 403. It is logged but never auto-handled.
	ErrForbidden = errors.New("permission denied")

	// ErrRateLimited is a 429 from the token endpoint.
	ErrRateLimited = errors.New("too many attempts, try again later")

	// ErrNetwork means the request was sent but no response was received.
	// It is distinguishable from every server-returned status.
	ErrNetwork = errors.New("network error")

	// ErrServer is any other non-2xx response.
	ErrServer = errors.New("server error")
)
