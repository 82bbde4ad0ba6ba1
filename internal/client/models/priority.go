package models

import "time"

// Priority is a user-defined priority level with notification channel flags.
type Priority struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	EmailNotification    bool      `json:"email_notification"`
	SMSNotification      bool      `json:"sms_notification"`
	WhatsAppNotification bool      `json:"whatsapp_notification"`
	OwnerID              string    `json:"owner_id"`
	CreatedAt            time.Time `json:"created_at"`
}

// PriorityInput carries the client-supplied fields for a new priority.
type PriorityInput struct {
	Name                 string `json:"name"`
	EmailNotification    bool   `json:"email_notification"`
	SMSNotification      bool   `json:"sms_notification"`
	WhatsAppNotification bool   `json:"whatsapp_notification"`
}

// PriorityPatch is a partial update; nil fields are left unchanged.
type PriorityPatch struct {
	Name                 *string `json:"name,omitempty"`
	EmailNotification    *bool   `json:"email_notification,omitempty"`
	SMSNotification      *bool   `json:"sms_notification,omitempty"`
	WhatsAppNotification *bool   `json:"whatsapp_notification,omitempty"`
}

// ApplyTo returns a copy of pr with the patch applied.
func (p PriorityPatch) ApplyTo(pr Priority) Priority {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.EmailNotification != nil {
		pr.EmailNotification = *p.EmailNotification
	}
	if p.SMSNotification != nil {
		pr.SMSNotification = *p.SMSNotification
	}
	if p.WhatsAppNotification != nil {
		pr.WhatsAppNotification = *p.WhatsAppNotification
	}
	return pr
}
