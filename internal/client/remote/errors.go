package remote

import (
	"fmt"

	"github.com/dmitrijs2005/justdoit/internal/common"
)

// APIError is a remote service failure whose message is passed through
// verbatim to the caller.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// wire error codes, shared with the server's httpapi package by convention
const (
	codeInvalidCredentials = "invalid_credentials"
	codeEmailNotConfirmed  = "email_not_confirmed"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeUnauthorized       = "unauthorized"
)

// mapError translates a wire error into the shared sentinel taxonomy where a
// sentinel exists, and into an APIError otherwise.
func mapError(status int, code, message string) error {
	switch code {
	case codeInvalidCredentials:
		return common.ErrInvalidCredentials
	case codeEmailNotConfirmed:
		return common.ErrUnconfirmedAccount
	case codeNotFound:
		return common.ErrNotFound
	case codeConflict:
		return fmt.Errorf("%w: %s", common.ErrAlreadyExists, message)
	case codeUnauthorized:
		return common.ErrNotAuthenticated
	}
	if message == "" {
		message = fmt.Sprintf("remote service error (status %d)", status)
	}
	return &APIError{Status: status, Code: code, Message: message}
}
