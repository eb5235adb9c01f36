package nav

import (
	"testing"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
)

func anonymous() domain.SessionSnapshot {
	return domain.SessionSnapshot{Phase: domain.PhaseAnonymousIdle}
}

func authenticated() domain.SessionSnapshot {
	return domain.SessionSnapshot{
		Phase: domain.PhaseAuthenticated,
		Token: "tok-1",
		User:  &domain.User{ID: 1, Email: "a@b.com", CurrentRole: domain.RoleAdmin},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		route    domain.Route
		snap     domain.SessionSnapshot
		proceed  bool
		redirect string
	}{
		{
			name:     "auth route, anonymous session",
			route:    domain.Route{Path: "/dashboard", RequiresAuth: true},
			snap:     anonymous(),
			redirect: LoginPath,
		},
		{
			name:    "auth route, authenticated session",
			route:   domain.Route{Path: "/dashboard", RequiresAuth: true},
			snap:    authenticated(),
			proceed: true,
		},
		{
			name:     "guest route, authenticated session",
			route:    domain.Route{Path: "/login", RequiresGuest: true},
			snap:     authenticated(),
			redirect: DashboardPath,
		},
		{
			name:    "guest route, anonymous session",
			route:   domain.Route{Path: "/login", RequiresGuest: true},
			snap:    anonymous(),
			proceed: true,
		},
		{
			name:     "root path, authenticated session",
			route:    domain.Route{Path: "/"},
			snap:     authenticated(),
			redirect: DashboardPath,
		},
		{
			name:    "root path, anonymous session",
			route:   domain.Route{Path: "/"},
			snap:    anonymous(),
			proceed: true,
		},
		{
			name:    "unrestricted route, anonymous session",
			route:   domain.Route{Path: "/about"},
			snap:    anonymous(),
			proceed: true,
		},
		{
			name:    "unrestricted route, authenticated session",
			route:   domain.Route{Path: "/about"},
			snap:    authenticated(),
			proceed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.route, tt.snap)
			if got.Proceed != tt.proceed {
				t.Fatalf("Proceed = %v, want %v", got.Proceed, tt.proceed)
			}
			if got.RedirectTo != tt.redirect {
				t.Fatalf("RedirectTo = %q, want %q", got.RedirectTo, tt.redirect)
			}
		})
	}
}

// Token presence alone decides authentication: a half-cleared session with a
// user but no token is anonymous as far as navigation is concerned.
func TestDecide_TokenPresenceIsTheSoleDefinition(t *testing.T) {
	snap := domain.SessionSnapshot{User: &domain.User{ID: 1}}
	got := Decide(domain.Route{Path: "/dashboard", RequiresAuth: true}, snap)
	if got.RedirectTo != LoginPath {
		t.Fatalf("expected redirect to login, got %+v", got)
	}
}

func TestDecide_IsDeterministic(t *testing.T) {
	route := domain.Route{Path: "/", RequiresGuest: false}
	snap := authenticated()
	first := Decide(route, snap)
	for i := 0; i < 10; i++ {
		if got := Decide(route, snap); got != first {
			t.Fatalf("decision changed between evaluations: %+v vs %+v", got, first)
		}
	}
}

func TestLookup(t *testing.T) {
	route, ok := Lookup("/login")
	if !ok || !route.RequiresGuest {
		t.Fatalf("unexpected login route: %+v ok=%v", route, ok)
	}
	if _, ok := Lookup("/nope"); ok {
		t.Fatalf("unknown path must not resolve")
	}

	for _, r := range Routes() {
		if r.RequiresAuth && r.RequiresGuest {
			t.Fatalf("route %s declares both access requirements", r.Path)
		}
	}
}
