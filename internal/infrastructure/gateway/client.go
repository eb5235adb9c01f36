// Package gateway implements the HTTP client of the ERP backend's auth and
// company endpoints, plus the transport interceptor that attaches the bearer
// token and reacts to authentication rejections.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
)

const (
	loginPath         = "/api/v1/auth/login"
	registerPath      = "/api/v1/auth/register"
	currentUserPath   = "/api/v1/auth/me"
	companiesPath     = "/api/v1/companies/"
	selectCompanyPath = "/api/v1/companies/select"
)

// Config captures the settings for building a gateway client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the ERP backend. All requests flow through the auth
// interceptor, which owns bearer-token attachment and rejection handling.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client whose transport reads the bearer token from
// store on every request. onUnauthorized runs whenever the backend rejects a
// credentialled call; it must not block.
func NewClient(cfg Config, store ports.Store, onUnauthorized func(), log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: newAuthTransport(http.DefaultTransport, store, onUnauthorized, log),
			Timeout:   cfg.Timeout,
		},
		log: log,
	}
}

// Login exchanges credentials for a bearer token. The backend expects
// form-encoded OAuth2 password-grant fields, with the email in "username".
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token in response")
	}
	return out.AccessToken, nil
}

// Register creates a user together with their first company.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.postJSON(ctx, registerPath, reg, nil)
}

// GetCurrentUser fetches the profile bound to the bearer token.
func (c *Client) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, currentUserPath, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserCompanies enumerates the companies the user is a member of.
func (c *Client) GetUserCompanies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := c.getJSON(ctx, companiesPath, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// SelectCompany makes companyID the active company. The backend responds
// with the updated profile so the caller can adopt the new scope atomically.
func (c *Client) SelectCompany(ctx context.Context, companyID int64) (*domain.User, error) {
	body := struct {
		CompanyID int64 `json:"company_id"`
	}{CompanyID: companyID}

	var user domain.User
	if err := c.postJSON(ctx, selectCompanyPath, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCompany fetches one company's full profile.
func (c *Client) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	var company domain.Company
	if err := c.getJSON(ctx, fmt.Sprintf("%s%d", companiesPath, companyID), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// UpdateCompanyProfile applies a partial update to a company profile.
func (c *Client) UpdateCompanyProfile(ctx context.Context, companyID int64, upd domain.CompanyUpdate) (*domain.Company, error) {
	raw, err := json.Marshal(upd)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s%s%d", c.baseURL, companiesPath, companyID), bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var company domain.Company
	if err := c.do(req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes the response into out (when non-nil).
// Non-2xx responses are returned as *APIError carrying the backend's detail
// message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
