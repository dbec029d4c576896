// Package gate decides whether a protected view may render. It is a small
// state machine over the session's role: Loading while rehydration is still
// pending, then Denied (with a redirect target) or Granted. The decision is
// terminal for one render pass and is re-evaluated whenever the session
// changes.
package gate

import "github.com/kamanbo/techfolio/internal/client/models"

// State is the gate's render decision.
type State int

const (
	Loading State = iota
	Denied
	Granted
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Denied:
		return "denied"
	case Granted:
		return "granted"
	default:
		return "unknown"
	}
}

// Target names the view a denied request is redirected to.
type Target int

const (
	TargetNone Target = iota
	TargetLogin
	TargetHome
)

// Decision is the outcome of one evaluation.
type Decision struct {
	State    State
	Redirect Target
}

// Evaluate gates a protected view. loaded is false while the session is
// still rehydrating; adminOnly restricts the view to admin sessions.
// The switch is exhaustive over the Role variant so the three roles can
// never disagree the way independent boolean flags could.
func Evaluate(loaded bool, role models.Role, adminOnly bool) Decision {
	if !loaded {
		return Decision{State: Loading}
	}
	switch role {
	case models.RoleAnonymous:
		return Decision{State: Denied, Redirect: TargetLogin}
	case models.RoleUser:
		if adminOnly {
			return Decision{State: Denied, Redirect: TargetHome}
		}
		return Decision{State: Granted}
	case models.RoleAdmin:
		return Decision{State: Granted}
	default:
		// Unknown roles never unlock anything.
		return Decision{State: Denied, Redirect: TargetLogin}
	}
}
