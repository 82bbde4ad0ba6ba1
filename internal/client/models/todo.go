package models

import "time"

// TodoStatus is the two-state lifecycle of a todo.
type TodoStatus string

const (
	TodoStatusActive   TodoStatus = "active"
	TodoStatusInactive TodoStatus = "inactive"
)

// Todo is a single task row. Deadline, Priority and Receiver are optional and
// stay null server-side when not provided.
type Todo struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Deadline    *string    `json:"deadline,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Receiver    *string    `json:"receiver,omitempty"`
	Status      TodoStatus `json:"status"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TodoInput carries the client-supplied fields for a new todo; id, owner and
// timestamp are assigned server-side.
type TodoInput struct {
	Description string     `json:"description"`
	Deadline    *string    `json:"deadline,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Receiver    *string    `json:"receiver,omitempty"`
	Status      TodoStatus `json:"status"`
}

// TodoPatch is a partial update; nil fields are left unchanged.
type TodoPatch struct {
	Description *string     `json:"description,omitempty"`
	Deadline    *string     `json:"deadline,omitempty"`
	Priority    *string     `json:"priority,omitempty"`
	Receiver    *string     `json:"receiver,omitempty"`
	Status      *TodoStatus `json:"status,omitempty"`
}

// ApplyTo returns a copy of t with the patch applied. Used for the optimistic
// local update before the server confirms.
func (p TodoPatch) ApplyTo(t Todo) Todo {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline
	}
	if p.Priority != nil {
		t.Priority = p.Priority
	}
	if p.Receiver != nil {
		t.Receiver = p.Receiver
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
