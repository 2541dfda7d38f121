// Package guard decides whether the current session may reach a protected
// view. The decision is purely local: it gates what the user sees, real
// authorization is re-checked by the backend on every request.
package guard

import "payrollkit/internal/session"

type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated session to the login entry.
	RedirectLogin
	// RedirectHome sends an authenticated session of the wrong role to its
	// own default landing view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Requirement is a route's declared access rule. A zero Requirement means
// any authenticated session may pass regardless of role.
type Requirement struct {
	Role session.Role
}

// Authorize is evaluated fresh on every navigation; nothing is cached.
func Authorize(s session.Store, req Requirement) Decision {
	if !session.Authenticated(s) {
		return RedirectLogin
	}
	if req.Role != "" && s.Role() != req.Role {
		return RedirectHome
	}
	return Allow
}

// Landing returns the default view for a role, the target of RedirectHome.
func Landing(role session.Role) string {
	if role == session.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/employee/dashboard"
}
