package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/justdoit/internal/common"
)

// wire error codes, shared with the client's remote package by convention
const (
	codeInvalidCredentials = "invalid_credentials"
	codeEmailNotConfirmed  = "email_not_confirmed"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeUnauthorized       = "unauthorized"
	codeValidation         = "validation"
	codeEmailExists        = "email_exists"
	codeInternal           = "internal"
)

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, wireError{Code: code, Message: message})
}

// writeServiceError maps the shared sentinel taxonomy onto wire errors.
// Unrecognized errors become an opaque 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, codeInvalidCredentials, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrUnconfirmedAccount):
		writeError(w, http.StatusForbidden, codeEmailNotConfirmed, common.ErrUnconfirmedAccount.Error())
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, common.ErrNotFound.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeConflict, err.Error())
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, common.ErrNotAuthenticated.Error())
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return common.ErrValidation
	}
	return nil
}
