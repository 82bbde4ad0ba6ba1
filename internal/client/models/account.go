// Package models defines the client-side view of the remote collections:
// accounts, sessions, todos, priorities, contacts and settings.
package models

import "time"

// Account is the authenticated identity owning rows in user-scoped
// collections. The id is stable and server-assigned.
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Session is a time-bounded credential proving the current Account identity.
// At most one session is active per client at a time.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     Account   `json:"account"`

	// Persisted is false for memory-only sessions (remember-me off).
	Persisted bool `json:"-"`
}

// Expired reports whether the session token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
