package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/logging"
	"github.com/dmitrijs2005/justdoit/internal/server/accounts"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

const testServiceKey = "test-service-key"

var tokenExpiry = time.Now().Add(time.Hour).Truncate(time.Second)

// fakeAccounts accepts tokens of the form "tok-<accountID>".
type fakeAccounts struct {
	confirmationRequired bool
	registered           map[string]*models.Account
	loginErr             error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{registered: map[string]*models.Account{}}
}

func (f *fakeAccounts) Register(ctx context.Context, email, password, displayName string) (*accounts.RegisterResult, error) {
	if email == "" || password == "" {
		return nil, common.ErrValidation
	}
	if _, ok := f.registered[email]; ok {
		return nil, common.ErrAlreadyExists
	}
	account := &models.Account{
		ID: "acc-1", Email: email, DisplayName: displayName,
		Confirmed: !f.confirmationRequired,
	}
	f.registered[email] = account

	result := &accounts.RegisterResult{Account: account}
	if account.Confirmed {
		result.Token = &accounts.Token{AccessToken: "tok-acc-1", ExpiresAt: tokenExpiry}
	}
	return result, nil
}

func (f *fakeAccounts) Login(ctx context.Context, email, password string) (*models.Account, *accounts.Token, error) {
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	account, ok := f.registered[email]
	if !ok {
		return nil, nil, common.ErrInvalidCredentials
	}
	return account, &accounts.Token{AccessToken: "tok-" + account.ID, ExpiresAt: tokenExpiry}, nil
}

func (f *fakeAccounts) Get(ctx context.Context, id string) (*models.Account, error) {
	for _, account := range f.registered {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, id string, displayName, password *string) (*models.Account, error) {
	account, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if displayName != nil {
		account.DisplayName = *displayName
	}
	return account, nil
}

func (f *fakeAccounts) VerifyToken(token string) (string, time.Time, error) {
	id, ok := strings.CutPrefix(token, "tok-")
	if !ok {
		return "", time.Time{}, common.ErrInvalidToken
	}
	return id, tokenExpiry, nil
}

type fakeTodos struct {
	rows      map[string][]*models.Todo
	listOrder string
}

func newFakeTodos() *fakeTodos {
	return &fakeTodos{rows: map[string][]*models.Todo{}}
}

func (f *fakeTodos) List(ctx context.Context, ownerID string, orderParam string) ([]*models.Todo, error) {
	f.listOrder = orderParam
	items := f.rows[ownerID]
	if items == nil {
		items = []*models.Todo{}
	}
	return items, nil
}

func (f *fakeTodos) Create(ctx context.Context, ownerID string, todo *models.Todo) (*models.Todo, error) {
	if todo.Description == "" {
		return nil, common.ErrValidation
	}
	todo.ID = "t-1"
	todo.OwnerID = ownerID
	f.rows[ownerID] = append(f.rows[ownerID], todo)
	return todo, nil
}

func (f *fakeTodos) Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error) {
	for _, item := range f.rows[ownerID] {
		if item.ID == id {
			if patch.Description != nil {
				item.Description = *patch.Description
			}
			return item, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeTodos) Delete(ctx context.Context, ownerID string, id string) error {
	for i, item := range f.rows[ownerID] {
		if item.ID == id {
			f.rows[ownerID] = append(f.rows[ownerID][:i], f.rows[ownerID][i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakePriorities struct{}

func (f *fakePriorities) List(ctx context.Context, ownerID string, orderParam string) ([]*models.Priority, error) {
	return []*models.Priority{}, nil
}

func (f *fakePriorities) Create(ctx context.Context, ownerID string, priority *models.Priority) (*models.Priority, error) {
	priority.ID = "p-1"
	priority.OwnerID = ownerID
	return priority, nil
}

func (f *fakePriorities) Update(ctx context.Context, ownerID string, id string, patch *models.PriorityPatch) (*models.Priority, error) {
	return nil, common.ErrNotFound
}

func (f *fakePriorities) Delete(ctx context.Context, ownerID string, id string) error {
	return common.ErrNotFound
}

type fakeContacts struct {
	byEmail map[string]*models.Contact
}

func newFakeContacts() *fakeContacts {
	return &fakeContacts{byEmail: map[string]*models.Contact{}}
}

func (f *fakeContacts) List(ctx context.Context, orderParam string) ([]*models.Contact, error) {
	items := []*models.Contact{}
	for _, c := range f.byEmail {
		items = append(items, c)
	}
	return items, nil
}

func (f *fakeContacts) FindByEmail(ctx context.Context, email string) (*models.Contact, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (f *fakeContacts) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if _, ok := f.byEmail[contact.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	contact.ID = "c-1"
	f.byEmail[contact.Email] = contact
	return contact, nil
}

type fakeSettings struct {
	byOwner map[string]*models.Settings
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{byOwner: map[string]*models.Settings{}}
}

func (f *fakeSettings) Get(ctx context.Context, ownerID string) (*models.Settings, error) {
	row, ok := f.byOwner[ownerID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return row, nil
}

func (f *fakeSettings) Create(ctx context.Context, ownerID string, row *models.Settings) (*models.Settings, error) {
	row.ID = "s-1"
	row.OwnerID = ownerID
	f.byOwner[ownerID] = row
	return row, nil
}

func (f *fakeSettings) Update(ctx context.Context, ownerID string, id string, patch *models.SettingsPatch) (*models.Settings, error) {
	row, ok := f.byOwner[ownerID]
	if !ok || row.ID != id {
		return nil, common.ErrNotFound
	}
	if patch.SenderEmail != nil {
		row.SenderEmail = patch.SenderEmail
	}
	if patch.EmailTemplate != nil {
		row.EmailTemplate = patch.EmailTemplate
	}
	return row, nil
}

type testEnv struct {
	handler    http.Handler
	accounts   *fakeAccounts
	todos      *fakeTodos
	contacts   *fakeContacts
	settings   *fakeSettings
	priorities *fakePriorities
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		accounts:   newFakeAccounts(),
		todos:      newFakeTodos(),
		contacts:   newFakeContacts(),
		settings:   newFakeSettings(),
		priorities: &fakePriorities{},
	}
	server := NewServer(logging.NewNopLogger(), testServiceKey,
		env.accounts, env.todos, env.priorities, env.contacts, env.settings)
	env.handler = server.Handler()
	return env
}

// request performs one request against the handler. A non-empty token is sent
// as a bearer credential; the service key is always attached.
func (env *testEnv) request(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("apikey", testServiceKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}
