package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/justdoit/internal/common"
)

func decodeWireError(t *testing.T, body []byte) wireError {
	t.Helper()
	var we wireError
	require.NoError(t, json.Unmarshal(body, &we))
	return we
}

func TestServiceKeyRequired(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/rest/v1/todos", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, codeUnauthorized, decodeWireError(t, rec.Body.Bytes()).Code)
}

func TestSignUp_ImmediateSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass","display_name":"Alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp signUpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.ConfirmationRequired)
	require.Equal(t, "tok-acc-1", resp.AccessToken)
	require.Equal(t, "a@example.com", resp.Account.Email)
}

func TestSignUp_ConfirmationRequired(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.confirmationRequired = true

	rec := env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp signUpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.ConfirmationRequired)
	require.Empty(t, resp.AccessToken)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, codeEmailExists, decodeWireError(t, rec.Body.Bytes()).Code)
}

func TestToken_UnsupportedGrantType(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "",
		`{"email":"a@example.com","password":"pass"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToken_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/token?grant_type=password", "",
		`{"email":"missing@example.com","password":"pass"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	we := decodeWireError(t, rec.Body.Bytes())
	require.Equal(t, codeInvalidCredentials, we.Code)
	require.Equal(t, "invalid login credentials", we.Message)
}

func TestToken_UnconfirmedAccount(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.loginErr = common.ErrUnconfirmedAccount

	rec := env.request(t, http.MethodPost, "/auth/v1/token?grant_type=password", "",
		`{"email":"a@example.com","password":"pass"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, codeEmailNotConfirmed, decodeWireError(t, rec.Body.Bytes()).Code)
}

func TestToken_Success(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass","display_name":"Alice"}`)

	rec := env.request(t, http.MethodPost, "/auth/v1/token?grant_type=password", "",
		`{"email":"a@example.com","password":"pass","remember":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "tok-acc-1", resp.AccessToken)
	require.Equal(t, "Alice", resp.Account.DisplayName)
	require.False(t, resp.ExpiresAt.IsZero())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/logout", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodPost, "/auth/v1/logout", "tok-acc-1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecover_AlwaysSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/v1/recover", "",
		`{"email":"whoever@example.com"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass","display_name":"Alice"}`)

	rec := env.request(t, http.MethodGet, "/auth/v1/user", "tok-acc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Account struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"account"`
		ExpiresAt string `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "acc-1", resp.Account.ID)
	require.NotEmpty(t, resp.ExpiresAt)
}

func TestGetUser_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/auth/v1/user", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodGet, "/auth/v1/user", "garbage", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass","display_name":"Alice"}`)

	rec := env.request(t, http.MethodPut, "/auth/v1/user", "tok-acc-1",
		`{"display_name":"Alice B"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Account struct {
			DisplayName string `json:"display_name"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Alice B", resp.Account.DisplayName)
}

func TestUpdateUser_EmailChangeRejected(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/auth/v1/signup", "",
		`{"email":"a@example.com","password":"pass"}`)

	rec := env.request(t, http.MethodPut, "/auth/v1/user", "tok-acc-1",
		`{"email":"new@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, codeValidation, decodeWireError(t, rec.Body.Bytes()).Code)
}
