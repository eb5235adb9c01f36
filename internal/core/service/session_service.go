// Package service implements the session repository: the single owned
// aggregate holding the bearer token, user profile and company scope, with
// every committed mutation mirrored synchronously to durable storage.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
	"github.com/ariffzainal/inhouse-erp/internal/metrics"
)

const (
	fallbackLogin    = "Login failed"
	fallbackRegister = "Registration failed"
	fallbackSwitch   = "Company switch failed"
)

// SessionService is the sole owner of the session aggregate. Callers obtain
// it from bootstrap and interact through the ports.SessionRepository
// operation set; no ambient global access.
type SessionService struct {
	gateway ports.AuthGateway
	store   ports.Store
	log     zerolog.Logger

	mu        sync.Mutex
	gen       uint64
	phase     domain.Phase
	token     string
	user      *domain.User
	companies []domain.Company
	loading   bool
	errMsg    string

	subs    map[int]func(domain.SessionSnapshot)
	nextSub int

	validate *inputValidator
}

var _ ports.SessionRepository = (*SessionService)(nil)

// NewSessionService wires the repository to its gateway and durable store.
func NewSessionService(gw ports.AuthGateway, store ports.Store, log zerolog.Logger) *SessionService {
	return &SessionService{
		gateway:  gw,
		store:    store,
		log:      log,
		phase:    domain.PhaseAnonymousIdle,
		subs:     make(map[int]func(domain.SessionSnapshot)),
		validate: newInputValidator(),
	}
}

// InitAuth rehydrates the session from durable storage. Adoption is all or
// nothing: a stored token without a stored user (or with an undecodable one)
// is treated as if nothing were persisted.
func (s *SessionService) InitAuth() {
	token, haveToken := s.store.Get(ports.KeyToken)
	rawUser, haveUser := s.store.Get(ports.KeyUser)
	if !haveToken || !haveUser {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn().Err(err).Msg("stored profile undecodable, starting anonymous")
		return
	}

	var companies []domain.Company
	if raw, ok := s.store.Get(ports.KeyCompanies); ok {
		if err := json.Unmarshal([]byte(raw), &companies); err != nil {
			s.log.Warn().Err(err).Msg("stored company list undecodable, dropping it")
			companies = nil
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.companies = companies
	s.phase = domain.PhaseAuthenticated
	s.mu.Unlock()
	s.notify()

	ev := s.log.Info().Str("email", user.Email)
	if exp := s.TokenExpiry(); !exp.IsZero() {
		ev = ev.Time("token_expiry", exp)
		if exp.Before(time.Now()) {
			s.log.Warn().Time("token_expiry", exp).Msg("restored token already expired")
		}
	}
	ev.Msg("session restored from storage")
}

// Login authenticates and, on success, sequentially resolves the profile and
// the company list before settling. Returns true when the session ends up
// authenticated; on failure the gateway's detail message (or a generic
// fallback) is retained in the error state.
func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	gen := s.begin(domain.PhaseAuthenticating)
	defer s.finish()

	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("login failed")
		s.fail(failureMessage(err, fallbackLogin))
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return false
	}

	if !s.adoptToken(gen, token) {
		return false
	}

	// Profile first, companies second. A profile failure invalidates the
	// session and short-circuits the company fetch.
	if !s.fetchUser(ctx, gen) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return false
	}
	s.fetchCompanies(ctx, gen)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return true
}

// Register creates the account, then logs in with the same credentials:
// registration never yields a session by itself.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) bool {
	if msg, ok := s.validate.check(input); !ok {
		s.fail(msg)
		return false
	}

	s.begin(domain.PhaseAuthenticating)
	defer s.finish()

	reg := domain.Registration{
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
		Company: domain.CompanyRegistration{
			DisplayName:                input.CompanyDisplayName,
			LegalName:                  input.CompanyLegalName,
			BusinessRegistrationNumber: input.BusinessRegistrationNumber,
		},
	}

	if err := s.gateway.Register(ctx, reg); err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("registration failed")
		s.fail(failureMessage(err, fallbackRegister))
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return false
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return s.Login(ctx, input.Email, input.Password)
}

// RefreshUser re-fetches the profile bound to the held token. No-op when
// anonymous.
func (s *SessionService) RefreshUser(ctx context.Context) {
	s.mu.Lock()
	gen, authed := s.gen, s.token != ""
	s.mu.Unlock()
	if !authed {
		return
	}
	s.fetchUser(ctx, gen)
}

// RefreshCompanies re-fetches the company list. No-op when anonymous.
func (s *SessionService) RefreshCompanies(ctx context.Context) {
	s.mu.Lock()
	gen, authed := s.gen, s.token != ""
	s.mu.Unlock()
	if !authed {
		return
	}
	s.fetchCompanies(ctx, gen)
}

// SwitchCompany scopes the session to companyID. On success the profile is
// replaced wholesale with the gateway's response, so the user record and the
// active company can never disagree. On failure the prior profile stands.
func (s *SessionService) SwitchCompany(ctx context.Context, companyID int64) bool {
	s.mu.Lock()
	authed := s.token != ""
	s.mu.Unlock()
	if !authed {
		s.fail(domain.ErrNotAuthenticated.Error())
		return false
	}

	gen := s.begin(domain.PhaseMutating)
	defer s.finish()

	user, err := s.gateway.SelectCompany(ctx, companyID)
	if err != nil {
		s.log.Error().Err(err).Int64("company_id", companyID).Msg("company switch failed")
		s.fail(failureMessage(err, fallbackSwitch))
		metrics.CompanySwitchesTotal.WithLabelValues("failure").Inc()
		return false
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	s.user = user
	s.persistUserLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Info().Int64("company_id", companyID).Str("role", user.CurrentRole).Msg("active company switched")
	metrics.CompanySwitchesTotal.WithLabelValues("success").Inc()
	return true
}

// Logout clears the session in memory and removes all three durable keys.
// Idempotent, no failure mode. Bumping the generation makes any in-flight
// fetch a stale one: its completion is discarded rather than resurrecting
// the cleared state.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.gen++
	s.token = ""
	s.user = nil
	s.companies = nil
	s.phase = domain.PhaseAnonymousIdle
	s.store.Remove(ports.KeyToken)
	s.store.Remove(ports.KeyUser)
	s.store.Remove(ports.KeyCompanies)
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a defensive copy of the current session state.
func (s *SessionService) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TokenExpiry reads the exp claim from the held token without verifying the
// signature. The token stays opaque for every authentication decision; the
// claim is informational only.
func (s *SessionService) TokenExpiry() time.Time {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Subscribe registers fn to run after every committed mutation. Callbacks
// run synchronously on the mutating call; keep them short.
func (s *SessionService) Subscribe(fn func(domain.SessionSnapshot)) func() {
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

// ClearError discards the last operation failure message.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

// ── internal transitions ──────────────────────────────────────────────────────

// begin opens a session-mutating operation: loading on, error cleared, phase
// advanced. Returns the generation the operation belongs to; completions
// from an older generation are discarded.
func (s *SessionService) begin(phase domain.Phase) uint64 {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	if s.phase.CanTransitionTo(phase) {
		s.phase = phase
	}
	gen := s.gen
	s.mu.Unlock()
	s.notify()
	return gen
}

// finish closes an operation: loading off regardless of outcome, phase
// re-derived from whether a token is held.
func (s *SessionService) finish() {
	s.mu.Lock()
	s.loading = false
	if s.token != "" {
		s.phase = domain.PhaseAuthenticated
	} else {
		s.phase = domain.PhaseAnonymousIdle
	}
	s.mu.Unlock()
	s.notify()
}

func (s *SessionService) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

// adoptToken commits a freshly issued token unless the session moved on.
func (s *SessionService) adoptToken(gen uint64, token string) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	s.token = token
	s.store.Set(ports.KeyToken, token)
	s.mu.Unlock()
	s.notify()
	return true
}

// fetchUser resolves the profile for the held token. Failure means the token
// is unusable: the whole session is discarded via forced logout. The forced
// logout does not touch the error state; it is a silent correction.
func (s *SessionService) fetchUser(ctx context.Context, gen uint64) bool {
	user, err := s.gateway.GetCurrentUser(ctx)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	if err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("profile fetch failed, session unusable")
		metrics.ForcedLogoutsTotal.WithLabelValues("profile_fetch_failed").Inc()
		s.Logout()
		return false
	}
	s.user = user
	s.persistUserLocked()
	s.mu.Unlock()
	s.notify()
	return true
}

// fetchCompanies resolves the tenant list. Best-effort: failure clears the
// list and its durable copy but never invalidates the session.
func (s *SessionService) fetchCompanies(ctx context.Context, gen uint64) {
	companies, err := s.gateway.GetUserCompanies(ctx)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.companies = nil
		s.store.Remove(ports.KeyCompanies)
		s.mu.Unlock()
		s.log.Warn().Err(err).Msg("company list fetch failed, continuing without it")
		s.notify()
		return
	}
	s.companies = companies
	if raw, merr := json.Marshal(companies); merr == nil {
		s.store.Set(ports.KeyCompanies, string(raw))
	}
	s.mu.Unlock()
	s.notify()
}

// persistUserLocked mirrors the in-memory profile to storage. Caller holds mu.
func (s *SessionService) persistUserLocked() {
	raw, err := json.Marshal(s.user)
	if err != nil {
		s.log.Error().Err(err).Msg("encode profile for storage")
		return
	}
	s.store.Set(ports.KeyUser, string(raw))
}

func (s *SessionService) snapshotLocked() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		Phase:   s.phase,
		Token:   s.token,
		Loading: s.loading,
		Error:   s.errMsg,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if len(s.companies) > 0 {
		snap.Companies = append([]domain.Company(nil), s.companies...)
	}
	return snap
}

// notify runs subscribers with a fresh snapshot, outside the lock.
func (s *SessionService) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]func(domain.SessionSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// failureMessage surfaces the backend's detail message when one exists,
// otherwise the operation's generic fallback.
func failureMessage(err error, fallback string) string {
	var uf domain.UserFacing
	if errors.As(err, &uf) && uf.UserMessage() != "" {
		return uf.UserMessage()
	}
	return fallback
}
