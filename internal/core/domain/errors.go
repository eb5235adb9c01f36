package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrSessionInvalid = errors.New("session invalid")
var ErrUserNotFound = errors.New("user not found")
var ErrCompanyNotFound = errors.New("company not found")

// UserFacing describes errors carrying a server-supplied message suitable
// for direct display, as opposed to transport failures that surface only a
// generic fallback.
type UserFacing interface {
	UserMessage() string
}

