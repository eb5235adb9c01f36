package domain

// Phase names the position of the session in its lifecycle state machine.
type Phase string

const (
	// PhaseAnonymousIdle is the resting state with no credential held.
	PhaseAnonymousIdle Phase = "anonymous_idle"
	// PhaseAuthenticating is entered while a login or registration is in flight.
	PhaseAuthenticating Phase = "authenticating"
	// PhaseAuthenticated is the resting state with a bearer token held.
	PhaseAuthenticated Phase = "authenticated"
	// PhaseMutating is entered while an authenticated session-mutating call
	// (company switch, profile refresh) is in flight.
	PhaseMutating Phase = "mutating"
)

// validTransitions defines the allowed lifecycle transitions. Logout is
// reachable from every phase and is therefore not listed.
var validTransitions = map[Phase][]Phase{
	PhaseAnonymousIdle:  {PhaseAuthenticating},
	PhaseAuthenticating: {PhaseAuthenticated, PhaseAnonymousIdle},
	PhaseAuthenticated:  {PhaseMutating, PhaseAnonymousIdle},
	PhaseMutating:       {PhaseAuthenticated, PhaseAnonymousIdle},
}

// CanTransitionTo reports whether moving from the current phase to next is a
// valid lifecycle step.
func (p Phase) CanTransitionTo(next Phase) bool {
	if next == PhaseAnonymousIdle {
		return true
	}
	for _, allowed := range validTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionSnapshot is an immutable copy of the session state at one point in
// time. Consumers (the navigation guard, CLI views, subscribers) read
// snapshots; only the session repository mutates the underlying state.
type SessionSnapshot struct {
	Phase     Phase
	Token     string
	User      *User
	Companies []Company
	Loading   bool
	Error     string
}

// IsAuthenticated reports whether a bearer token is held. Token presence is
// the sole definition of "authenticated".
func (s SessionSnapshot) IsAuthenticated() bool {
	return s.Token != ""
}

// Role returns the user's role in the active company, or "" when no profile
// is held.
func (s SessionSnapshot) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.CurrentRole
}

// IsAdmin reports whether the active-company role is admin.
func (s SessionSnapshot) IsAdmin() bool {
	return s.User.IsAdmin()
}

// ActiveCompanyID returns the id of the company the session is scoped to,
// or 0 when none is selected.
func (s SessionSnapshot) ActiveCompanyID() int64 {
	if s.User == nil || s.User.CurrentCompanyID == nil {
		return 0
	}
	return *s.User.CurrentCompanyID
}
