package auth

import (
	"errors"
	"fmt"
)

// User facing messages for failed logins.
const (
	MsgWrongCredentials = "Wrong Credentials"
	MsgLoginFailed      = "An error occurred during login."
	MsgTooManyAttempts  = "Too many login attempts. Try again later."
)

var (
	// ErrWrongCredentials is returned when the authenticator rejects the
	// credentials.
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrTooManyAttempts is returned when logins are being throttled.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// TransportError means the authentication call itself failed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("authentication transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Message maps a Login error onto the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongCredentials):
		return MsgWrongCredentials
	case errors.Is(err, ErrTooManyAttempts):
		return MsgTooManyAttempts
	default:
		return MsgLoginFailed
	}
}
