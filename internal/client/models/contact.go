package models

import "time"

// Contact is a notification recipient. Contacts are global, not owner-scoped;
// email is unique across the whole collection.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput carries the client-supplied fields for a new contact.
type ContactInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}
