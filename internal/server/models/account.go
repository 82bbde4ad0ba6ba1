// Package models defines the server-side rows of the data service.
package models

import "time"

// Account is one registered identity. PasswordHash never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Confirmed    bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
