package domain

import "time"

// Roles a user can hold within the active company. The backend scopes the
// role to the selected company, so the same user may be admin in one company
// and viewer in another.
const (
	RoleAdmin          = "admin"
	RoleManager        = "manager"
	RoleAccountant     = "accountant"
	RoleInventoryStaff = "inventory_staff"
	RolePOSStaff       = "pos_staff"
	RoleKitchenStaff   = "kitchen_staff"
	RoleViewer         = "viewer"
)

// User models the authenticated profile returned by the ERP backend. The
// Current* fields bind the profile to the active company; they are rewritten
// wholesale whenever the user selects a different company.
type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	IsActive           bool      `json:"is_active"`
	IsVerified         bool      `json:"is_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	CurrentCompanyID   *int64    `json:"current_company_id,omitempty"`
	CurrentCompanyName string    `json:"current_company_name,omitempty"`
	CurrentRole        string    `json:"current_role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role in the active company.
func (u *User) IsAdmin() bool {
	return u != nil && u.CurrentRole == RoleAdmin
}

// Registration is the payload shape the backend expects on sign-up: profile
// fields at the top level, organizational fields nested under company.
type Registration struct {
	Email    string              `json:"email" validate:"required,email"`
	FullName string              `json:"full_name" validate:"required,min=2,max=255"`
	Password string              `json:"password" validate:"required,min=8,max=100"`
	Role     string              `json:"role,omitempty"`
	Company  CompanyRegistration `json:"company" validate:"required"`
}

// CompanyRegistration carries the minimum company fields required to create
// the user's first company during registration.
type CompanyRegistration struct {
	DisplayName                string `json:"display_name" validate:"required,min=2,max=255"`
	LegalName                  string `json:"legal_name" validate:"required,min=2,max=255"`
	BusinessRegistrationNumber string `json:"business_registration_number" validate:"required,min=3,max=100"`
}
