package ports

import (
	"context"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
)

// AuthGateway is the client of the ERP backend's auth and company endpoints.
// Bearer-token handling is the transport's concern: implementations attach
// the token held in durable storage to every call that needs one.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a user together with their first company. It does not
	// yield a session; callers log in afterwards.
	Register(ctx context.Context, reg domain.Registration) error
	// GetCurrentUser fetches the profile bound to the bearer token.
	GetCurrentUser(ctx context.Context) (*domain.User, error)
	// GetUserCompanies enumerates the companies the user is a member of.
	GetUserCompanies(ctx context.Context) ([]domain.Company, error)
	// SelectCompany makes companyID the active company and returns the
	// updated profile reflecting the new scope and role.
	SelectCompany(ctx context.Context, companyID int64) (*domain.User, error)
	// GetCompany fetches one company's full profile.
	GetCompany(ctx context.Context, companyID int64) (*domain.Company, error)
	// UpdateCompanyProfile applies a partial update to a company profile.
	UpdateCompanyProfile(ctx context.Context, companyID int64, upd domain.CompanyUpdate) (*domain.Company, error)
}
