package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// HTTPClient talks to the remote data service over its REST boundary.
// The apikey header is attached to every request; the bearer token is
// attached once a session has been established.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(endpointURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(endpointURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do executes one request and decodes the JSON response into out (if out is
// non-nil and the response has a body). A 204 with a non-nil out yields
// common.ErrNotFound, which is how maybe-single reads report absence.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encoding error: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("request creation error: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote service error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var we wireError
		_ = json.NewDecoder(resp.Body).Decode(&we)
		if we.Code == "" && resp.StatusCode == http.StatusUnauthorized {
			we.Code = codeUnauthorized
		}
		return mapError(resp.StatusCode, we.Code, we.Message)
	}

	if out == nil {
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return common.ErrNotFound
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("response decoding error: %w", err)
	}
	return nil
}

func eq(v string) string { return "eq." + v }

// ---- auth ----

func (c *HTTPClient) SignUp(ctx context.Context, email, password, displayName, redirectTo string) (*SignUpResult, error) {
	body := map[string]string{
		"email":        email,
		"password":     password,
		"display_name": displayName,
		"redirect_to":  redirectTo,
	}
	var out struct {
		Account              models.Account `json:"account"`
		ConfirmationRequired bool           `json:"confirmation_required"`
		AccessToken          string         `json:"access_token,omitempty"`
		ExpiresAt            time.Time      `json:"expires_at,omitzero"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, body, &out); err != nil {
		return nil, err
	}

	result := &SignUpResult{Account: out.Account, ConfirmationRequired: out.ConfirmationRequired}
	if out.AccessToken != "" {
		c.SetToken(out.AccessToken)
		result.Session = &models.Session{
			AccessToken: out.AccessToken,
			ExpiresAt:   out.ExpiresAt,
			Account:     out.Account,
			Persisted:   true,
		}
	}
	return result, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string, remember bool) (*models.Session, error) {
	q := url.Values{"grant_type": {"password"}}
	body := map[string]any{"email": email, "password": password, "remember": remember}

	var out struct {
		AccessToken string         `json:"access_token"`
		ExpiresAt   time.Time      `json:"expires_at"`
		Account     models.Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", q, body, &out); err != nil {
		return nil, err
	}

	c.SetToken(out.AccessToken)
	return &models.Session{
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
		Account:     out.Account,
		Persisted:   remember,
	}, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, nil)
}

// Session re-queries the service for the session behind the current token.
// Without a token there is nothing to verify and ErrNotAuthenticated is
// returned without a round-trip.
func (c *HTTPClient) Session(ctx context.Context) (*models.Session, error) {
	token := c.currentToken()
	if token == "" {
		return nil, common.ErrNotAuthenticated
	}

	var out struct {
		Account   models.Account `json:"account"`
		ExpiresAt time.Time      `json:"expires_at"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return &models.Session{AccessToken: token, ExpiresAt: out.ExpiresAt, Account: out.Account}, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, redirectTo string) error {
	body := map[string]string{"email": email, "redirect_to": redirectTo}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", nil, body, nil)
}

func (c *HTTPClient) UpdateAccount(ctx context.Context, patch AccountPatch) (*models.Account, error) {
	var out struct {
		Account models.Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/v1/user", nil, patch, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// ---- todos ----

func (c *HTTPClient) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	q := url.Values{"owner_id": {eq(ownerID)}, "order": {"created_at.desc"}}
	var out []models.Todo
	if err := c.do(ctx, http.MethodGet, "/rest/v1/todos", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) InsertTodo(ctx context.Context, ownerID string, input models.TodoInput) (*models.Todo, error) {
	var out models.Todo
	if err := c.do(ctx, http.MethodPost, "/rest/v1/todos", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTodo(ctx context.Context, ownerID, id string, patch models.TodoPatch) (*models.Todo, error) {
	q := url.Values{"id": {eq(id)}, "owner_id": {eq(ownerID)}}
	var out models.Todo
	if err := c.do(ctx, http.MethodPatch, "/rest/v1/todos", q, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTodo(ctx context.Context, ownerID, id string) error {
	q := url.Values{"id": {eq(id)}, "owner_id": {eq(ownerID)}}
	return c.do(ctx, http.MethodDelete, "/rest/v1/todos", q, nil, nil)
}

// ---- priorities ----

func (c *HTTPClient) ListPriorities(ctx context.Context, ownerID string) ([]models.Priority, error) {
	q := url.Values{"owner_id": {eq(ownerID)}, "order": {"name.asc"}}
	var out []models.Priority
	if err := c.do(ctx, http.MethodGet, "/rest/v1/priorities", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) InsertPriority(ctx context.Context, ownerID string, input models.PriorityInput) (*models.Priority, error) {
	var out models.Priority
	if err := c.do(ctx, http.MethodPost, "/rest/v1/priorities", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdatePriority(ctx context.Context, ownerID, id string, patch models.PriorityPatch) (*models.Priority, error) {
	q := url.Values{"id": {eq(id)}, "owner_id": {eq(ownerID)}}
	var out models.Priority
	if err := c.do(ctx, http.MethodPatch, "/rest/v1/priorities", q, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeletePriority(ctx context.Context, ownerID, id string) error {
	q := url.Values{"id": {eq(id)}, "owner_id": {eq(ownerID)}}
	return c.do(ctx, http.MethodDelete, "/rest/v1/priorities", q, nil, nil)
}

// ---- contacts ----

func (c *HTTPClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	q := url.Values{"order": {"name.asc"}}
	var out []models.Contact
	if err := c.do(ctx, http.MethodGet, "/rest/v1/contacts", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	q := url.Values{"email": {eq(email)}, "cardinality": {"maybe"}}
	var out models.Contact
	if err := c.do(ctx, http.MethodGet, "/rest/v1/contacts", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertContact(ctx context.Context, input models.ContactInput) (*models.Contact, error) {
	var out models.Contact
	if err := c.do(ctx, http.MethodPost, "/rest/v1/contacts", nil, input, &out); err != nil {
		// the unique constraint on contact emails is the only conflict this
		// collection can produce
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrDuplicateContact
		}
		return nil, err
	}
	return &out, nil
}

// ---- settings ----

func (c *HTTPClient) GetSettings(ctx context.Context, ownerID string) (*models.Settings, error) {
	q := url.Values{"owner_id": {eq(ownerID)}, "cardinality": {"maybe"}}
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/rest/v1/settings", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodPost, "/rest/v1/settings", nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error) {
	q := url.Values{"owner_id": {eq(ownerID)}}
	var out models.Settings
	if err := c.do(ctx, http.MethodPatch, "/rest/v1/settings", q, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
