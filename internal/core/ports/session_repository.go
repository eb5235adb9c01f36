package ports

import (
	"context"
	"time"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
)

// RegisterInput is the flat sign-up form as collected from the user. The
// repository reshapes it into the gateway's nested Registration payload.
type RegisterInput struct {
	Email                      string `validate:"required,email"`
	FullName                   string `validate:"required,min=2,max=255"`
	Password                   string `validate:"required,min=8,max=100"`
	CompanyDisplayName         string `validate:"required,min=2,max=255"`
	CompanyLegalName           string `validate:"required,min=2,max=255"`
	BusinessRegistrationNumber string `validate:"required,min=3,max=100"`
}

// SessionRepository owns the session aggregate: the bearer token, the user
// profile, the company list and the active-company binding. Every committed
// mutation is mirrored to durable storage before the call returns.
type SessionRepository interface {
	// InitAuth rehydrates the session from durable storage. Run once at
	// bootstrap, before the first navigation-guard evaluation; it performs
	// no network calls. A stored token without a stored user is ignored.
	InitAuth()

	// Login authenticates, then sequentially fetches the profile and the
	// company list. Returns true when the session settles authenticated.
	Login(ctx context.Context, email, password string) bool

	// Register creates the account, then performs Login with the same
	// credentials. Failure semantics mirror Login.
	Register(ctx context.Context, input RegisterInput) bool

	// RefreshUser re-fetches the profile. A failure invalidates the session
	// and forces a logout.
	RefreshUser(ctx context.Context)

	// RefreshCompanies re-fetches the company list. Best-effort: a failure
	// clears the list without touching the rest of the session.
	RefreshCompanies(ctx context.Context)

	// SwitchCompany scopes the session to companyID. On success the profile
	// is replaced wholesale with the gateway's response; on failure the
	// prior profile is left untouched.
	SwitchCompany(ctx context.Context, companyID int64) bool

	// Logout clears the session in memory and in durable storage. Always
	// succeeds, idempotent.
	Logout()

	// Snapshot returns a copy of the current session state.
	Snapshot() domain.SessionSnapshot

	// TokenExpiry returns the held token's expiry claim, or zero when no
	// token is held or the claim cannot be read.
	TokenExpiry() time.Time

	// Subscribe registers fn to run after every committed mutation. The
	// returned function cancels the subscription.
	Subscribe(fn func(domain.SessionSnapshot)) (unsubscribe func())

	// ClearError discards the last operation failure message.
	ClearError()
}
