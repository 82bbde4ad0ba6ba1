package models

import "time"

// Settings is the per-account notification configuration. At most one row
// exists per account; the store creates it lazily on first fetch.
type Settings struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	SenderEmail   *string   `json:"sender_email"`
	EmailTemplate *string   `json:"email_template"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SettingsPatch is a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	SenderEmail   *string `json:"sender_email,omitempty"`
	EmailTemplate *string `json:"email_template,omitempty"`
}

// ApplyTo returns a copy of s with the patch applied.
func (p SettingsPatch) ApplyTo(s Settings) Settings {
	if p.SenderEmail != nil {
		s.SenderEmail = p.SenderEmail
	}
	if p.EmailTemplate != nil {
		s.EmailTemplate = p.EmailTemplate
	}
	return s
}
