// Package api wraps outbound HTTP calls to the directory service.
//
// Every request attaches a bearer token when one is available, defaults the
// content type for non-read methods, and carries an X-Request-Id for log
// correlation. Responses are normalized into the sentinel errors declared in
// errors.go; a 401 additionally fires the registered unauthorized hook
// exactly once per response so the session layer can clear itself.
//
// There is no retry, no backoff and no request queuing: at most one attempt
// per call, and the caller decides whether to resubmit.
package api
