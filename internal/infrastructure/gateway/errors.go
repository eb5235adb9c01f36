package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ariffzainal/inhouse-erp/internal/core/domain"
)

// APIError is a non-2xx response from the backend. Detail carries the
// server's human-readable message; it is what login and registration
// failures surface to the user.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// UserMessage returns the server's detail message, or "" when the response
// carried none. Satisfies domain.UserFacing.
func (e *APIError) UserMessage() string {
	return e.Detail
}

// Is maps transport statuses onto domain sentinels so callers can use
// errors.Is without knowing the wire format.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrInvalidCredentials:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusBadRequest
	case domain.ErrNotAuthenticated:
		return e.Status == http.StatusUnauthorized
	case domain.ErrCompanyNotFound, domain.ErrUserNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// newAPIError decodes the backend's error envelope {"detail": "..."}. The
// detail field can also be a structured validation list; anything that is
// not a plain string is dropped rather than leaked to the user.
func newAPIError(status int, raw []byte) *APIError {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	e := &APIError{Status: status}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return e
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		e.Detail = detail
	}
	return e
}
