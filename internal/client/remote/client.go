// Package remote defines the boundary to the remote data service: session
// issuance, credential validation, and filtered CRUD over the named
// collections. The concrete transport lives in http.go; everything above this
// package depends on the Client interface only.
package remote

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
)

// SignUpResult is the outcome of an account-creation request. When the
// service requires the account to be confirmed before the first sign-in,
// Session is nil and ConfirmationRequired is set.
type SignUpResult struct {
	Account              models.Account
	ConfirmationRequired bool
	Session              *models.Session
}

// AccountPatch is a partial account update; nil fields are left unchanged.
type AccountPatch struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// Client is the remote data service. All row operations are scoped by an
// equality filter on owner_id (except contacts, which are global); the
// service additionally enforces the scope from the bearer token.
type Client interface {
	Close() error

	// SetToken installs the bearer token attached to subsequent requests.
	// An empty token clears it.
	SetToken(token string)

	SignUp(ctx context.Context, email, password, displayName, redirectTo string) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string, remember bool) (*models.Session, error)
	SignOut(ctx context.Context) error
	Session(ctx context.Context) (*models.Session, error)
	ResetPassword(ctx context.Context, email, redirectTo string) error
	UpdateAccount(ctx context.Context, patch AccountPatch) (*models.Account, error)

	ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error)
	InsertTodo(ctx context.Context, ownerID string, input models.TodoInput) (*models.Todo, error)
	UpdateTodo(ctx context.Context, ownerID, id string, patch models.TodoPatch) (*models.Todo, error)
	DeleteTodo(ctx context.Context, ownerID, id string) error

	ListPriorities(ctx context.Context, ownerID string) ([]models.Priority, error)
	InsertPriority(ctx context.Context, ownerID string, input models.PriorityInput) (*models.Priority, error)
	UpdatePriority(ctx context.Context, ownerID, id string, patch models.PriorityPatch) (*models.Priority, error)
	DeletePriority(ctx context.Context, ownerID, id string) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	FindContactByEmail(ctx context.Context, email string) (*models.Contact, error)
	InsertContact(ctx context.Context, input models.ContactInput) (*models.Contact, error)

	GetSettings(ctx context.Context, ownerID string) (*models.Settings, error)
	InsertSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error)
	UpdateSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error)
}
