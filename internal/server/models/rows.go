package models

import "time"

// Todo is one task row, owned by exactly one account.
type Todo struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Deadline    *string   `json:"deadline,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	Receiver    *string   `json:"receiver,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TodoPatch is a partial update; nil fields keep the stored value. A field
// can be set but not cleared back to NULL: an explicit JSON null is read as
// absent. None of the dashboard flows clear fields, they overwrite them.
type TodoPatch struct {
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	Receiver    *string `json:"receiver"`
	Status      *string `json:"status"`
}

// Priority is one priority level row, owned by exactly one account.
type Priority struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	EmailNotification    bool      `json:"email_notification"`
	SMSNotification      bool      `json:"sms_notification"`
	WhatsAppNotification bool      `json:"whatsapp_notification"`
	OwnerID              string    `json:"owner_id"`
	CreatedAt            time.Time `json:"created_at"`
}

// PriorityPatch is a partial update; nil fields keep the stored value.
type PriorityPatch struct {
	Name                 *string `json:"name"`
	EmailNotification    *bool   `json:"email_notification"`
	SMSNotification      *bool   `json:"sms_notification"`
	WhatsAppNotification *bool   `json:"whatsapp_notification"`
}

// Contact is one global contact row; email is unique across the collection.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings is the single per-account settings row.
type Settings struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	SenderEmail   *string   `json:"sender_email"`
	EmailTemplate *string   `json:"email_template"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SettingsPatch is a partial update; nil fields keep the stored value.
type SettingsPatch struct {
	SenderEmail   *string `json:"sender_email"`
	EmailTemplate *string `json:"email_template"`
}
