// Package common defines shared constants and sentinel errors used across
// the client and server halves of JustDoIt. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Auth errors.
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUnconfirmedAccount = errors.New("email not confirmed")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Store-level errors.
	ErrValidation       = errors.New("validation error")
	ErrDuplicateContact = errors.New("a contact with this email already exists")

	// Service-level errors.
	ErrInternal = errors.New("internal error")
)
