// Package httpapi exposes the data service over its REST boundary: session
// endpoints under /auth/v1 and filtered row CRUD under /rest/v1.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/justdoit/internal/logging"
	"github.com/dmitrijs2005/justdoit/internal/server/accounts"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

// AccountService is the slice of the accounts service the handlers need.
type AccountService interface {
	Register(ctx context.Context, email, password, displayName string) (*accounts.RegisterResult, error)
	Login(ctx context.Context, email, password string) (*models.Account, *accounts.Token, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	UpdateProfile(ctx context.Context, id string, displayName, password *string) (*models.Account, error)
	VerifyToken(token string) (string, time.Time, error)
}

type TodoService interface {
	List(ctx context.Context, ownerID string, orderParam string) ([]*models.Todo, error)
	Create(ctx context.Context, ownerID string, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, ownerID string, id string) error
}

type PriorityService interface {
	List(ctx context.Context, ownerID string, orderParam string) ([]*models.Priority, error)
	Create(ctx context.Context, ownerID string, priority *models.Priority) (*models.Priority, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.PriorityPatch) (*models.Priority, error)
	Delete(ctx context.Context, ownerID string, id string) error
}

type ContactService interface {
	List(ctx context.Context, orderParam string) ([]*models.Contact, error)
	FindByEmail(ctx context.Context, email string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}

type SettingsService interface {
	Get(ctx context.Context, ownerID string) (*models.Settings, error)
	Create(ctx context.Context, ownerID string, row *models.Settings) (*models.Settings, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.SettingsPatch) (*models.Settings, error)
}

type Server struct {
	logger     logging.Logger
	serviceKey string

	accounts   AccountService
	todos      TodoService
	priorities PriorityService
	contacts   ContactService
	settings   SettingsService
}

func NewServer(logger logging.Logger, serviceKey string,
	accounts AccountService, todos TodoService, priorities PriorityService,
	contacts ContactService, settings SettingsService) *Server {
	return &Server{
		logger:     logger,
		serviceKey: serviceKey,
		accounts:   accounts,
		todos:      todos,
		priorities: priorities,
		contacts:   contacts,
		settings:   settings,
	}
}

// Handler builds the route table. Every route sits behind the service key
// check; row routes and the session introspection routes additionally
// require a bearer token.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(s.serviceKeyMiddleware))

	auth := r.PathPrefix("/auth/v1").Subrouter()
	auth.HandleFunc("/signup", s.handleSignUp).Methods(http.MethodPost)
	auth.HandleFunc("/token", s.handleToken).Methods(http.MethodPost)
	auth.HandleFunc("/recover", s.handleRecover).Methods(http.MethodPost)

	authed := r.PathPrefix("/auth/v1").Subrouter()
	authed.Use(mux.MiddlewareFunc(s.authMiddleware))
	authed.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/user", s.handleGetUser).Methods(http.MethodGet)
	authed.HandleFunc("/user", s.handleUpdateUser).Methods(http.MethodPut)

	rest := r.PathPrefix("/rest/v1").Subrouter()
	rest.Use(mux.MiddlewareFunc(s.authMiddleware))
	rest.HandleFunc("/todos", s.handleListTodos).Methods(http.MethodGet)
	rest.HandleFunc("/todos", s.handleInsertTodo).Methods(http.MethodPost)
	rest.HandleFunc("/todos", s.handleUpdateTodo).Methods(http.MethodPatch)
	rest.HandleFunc("/todos", s.handleDeleteTodo).Methods(http.MethodDelete)
	rest.HandleFunc("/priorities", s.handleListPriorities).Methods(http.MethodGet)
	rest.HandleFunc("/priorities", s.handleInsertPriority).Methods(http.MethodPost)
	rest.HandleFunc("/priorities", s.handleUpdatePriority).Methods(http.MethodPatch)
	rest.HandleFunc("/priorities", s.handleDeletePriority).Methods(http.MethodDelete)
	rest.HandleFunc("/contacts", s.handleListContacts).Methods(http.MethodGet)
	rest.HandleFunc("/contacts", s.handleInsertContact).Methods(http.MethodPost)
	rest.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	rest.HandleFunc("/settings", s.handleInsertSettings).Methods(http.MethodPost)
	rest.HandleFunc("/settings", s.handleUpdateSettings).Methods(http.MethodPatch)

	return r
}
