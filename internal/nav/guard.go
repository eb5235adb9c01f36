// Package nav holds the client route table and the navigation guard: the
// pure decision function gating every navigation on session state.
package nav

import "github.com/ariffzainal/inhouse-erp/internal/core/domain"

// Well-known destinations the guard redirects to.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	RootPath      = "/"
)

// Decision is the guard's verdict for one navigation attempt.
type Decision struct {
	Proceed    bool
	RedirectTo string
}

func proceed() Decision { return Decision{Proceed: true} }
func redirect(path string) Decision { return Decision{RedirectTo: path} }

// Decide evaluates a navigation attempt against the current session.
// Deterministic and side-effect-free: it never mutates session state, and
// callers re-read a fresh snapshot for every evaluation rather than caching.
//
// Rules, in order:
//  1. A route requiring auth with an anonymous session redirects to login.
//  2. A guest-only route with an authenticated session redirects to the
//     dashboard.
//  3. The root path is a guest-facing alias; authenticated sessions are sent
//     to the dashboard instead.
//  4. Everything else proceeds.
func Decide(route domain.Route, snap domain.SessionSnapshot) Decision {
	switch {
	case route.RequiresAuth && !snap.IsAuthenticated():
		return redirect(LoginPath)
	case route.RequiresGuest && snap.IsAuthenticated():
		return redirect(DashboardPath)
	case route.Path == RootPath && snap.IsAuthenticated():
		return redirect(DashboardPath)
	default:
		return proceed()
	}
}
