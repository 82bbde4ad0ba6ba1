package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	RedirectTo  string `json:"redirect_to"`
}

type signUpResponse struct {
	Account              *models.Account `json:"account"`
	ConfirmationRequired bool            `json:"confirmation_required"`
	AccessToken          string          `json:"access_token,omitempty"`
	ExpiresAt            *time.Time      `json:"expires_at,omitempty"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result, err := s.accounts.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, codeEmailExists, "an account with this email already exists")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "account registered", "email", result.Account.Email)

	resp := signUpResponse{
		Account:              result.Account,
		ConfirmationRequired: !result.Account.Confirmed,
	}
	if result.Token != nil {
		resp.AccessToken = result.Token.AccessToken
		resp.ExpiresAt = &result.Token.ExpiresAt
	}
	writeJSON(w, http.StatusOK, resp)
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type tokenResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Account     *models.Account `json:"account"`
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grant_type") != "password" {
		writeError(w, http.StatusBadRequest, codeValidation, "unsupported grant type")
		return
	}

	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	account, token, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "session issued", "account_id", account.ID)
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		Account:     account,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless, so revocation is a client-side concern. The
	// endpoint exists so clients have a place to report sign-out.
	s.logger.Info(r.Context(), "session closed", "account_id", accountIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecover(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email      string `json:"email"`
		RedirectTo string `json:"redirect_to"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	// Always succeed so the endpoint does not reveal which emails exist.
	s.logger.Info(r.Context(), "password recovery requested")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.Get(r.Context(), accountIDFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"account":    account,
		"expires_at": expiryFromContext(r.Context()),
	})
}

type updateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Password    *string `json:"password"`
	Email       *string `json:"email"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if req.Email != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "email change is not supported")
		return
	}

	account, err := s.accounts.UpdateProfile(r.Context(), accountIDFromContext(r.Context()),
		req.DisplayName, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"account": account})
}
