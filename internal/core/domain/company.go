package domain

import "time"

// Company is the tenant summary returned when enumerating the companies a
// user may act within. The list is best-effort session decoration: losing it
// never invalidates the session.
type Company struct {
	ID                         int64     `json:"id"`
	DisplayName                string    `json:"display_name"`
	LegalName                  string    `json:"legal_name"`
	Slug                       string    `json:"slug"`
	BusinessRegistrationNumber string    `json:"business_registration_number"`
	Industry                   string    `json:"industry,omitempty"`
	Email                      string    `json:"email,omitempty"`
	Website                    string    `json:"website,omitempty"`
	IsActive                   bool      `json:"is_active"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// CompanyUpdate carries a partial company-profile update. Nil fields are
// omitted from the request so the backend leaves them unchanged.
type CompanyUpdate struct {
	DisplayName                *string `json:"display_name,omitempty" validate:"omitempty,min=2,max=255"`
	LegalName                  *string `json:"legal_name,omitempty" validate:"omitempty,min=2,max=255"`
	BusinessRegistrationNumber *string `json:"business_registration_number,omitempty" validate:"omitempty,min=3,max=100"`
	Industry                   *string `json:"industry,omitempty"`
	Email                      *string `json:"email,omitempty" validate:"omitempty,email"`
	Website                    *string `json:"website,omitempty"`
	MailingAddress             *string `json:"mailing_address,omitempty"`
	BillingAddress             *string `json:"billing_address,omitempty"`
}
