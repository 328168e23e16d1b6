package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/probox/probox-api/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid token."
)

// TokenVerifier checks a raw credential and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenAuth returns middleware that gates a route on the raw Authorization header value.
// A missing header is rejected with 401, a failed verification with 403.
func TokenAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, model.Response{Message: msgNoToken})
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				writeJSON(w, http.StatusForbidden, model.Response{Message: msgInvalidToken})
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity verified by TokenAuth.
func IdentityFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	return id, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
