package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type ctxKey string

const (
	accountIDKey ctxKey = "accountID"
	expiresAtKey ctxKey = "expiresAt"
)

// serviceKeyMiddleware rejects requests that do not carry the shared project
// key in the apikey header.
func (s *Server) serviceKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != s.serviceKey {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing or invalid api key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authMiddleware verifies the bearer token and stores the account id and
// token expiry in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing token")
			return
		}

		accountID, expiresAt, err := s.accounts.VerifyToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		ctx = context.WithValue(ctx, expiresAtKey, expiresAt)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

func expiryFromContext(ctx context.Context) time.Time {
	t, _ := ctx.Value(expiresAtKey).(time.Time)
	return t
}
