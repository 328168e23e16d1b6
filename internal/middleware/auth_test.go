package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probox/probox-api/internal/crypto"
	"github.com/probox/probox-api/internal/model"
)

func newGuarded(t *testing.T) (http.Handler, *crypto.TokenService, *string) {
	t.Helper()
	tokens, err := crypto.NewTokenService("test-secret")
	require.NoError(t, err)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return TokenAuth(tokens)(next), tokens, &seen
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestTokenAuthMissingHeader(t *testing.T) {
	h, _, _ := newGuarded(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Access denied. No token provided.", resp.Message)
}

func TestTokenAuthInvalidToken(t *testing.T) {
	h, _, _ := newGuarded(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", "garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token.", decode(t, rec).Message)
}

func TestTokenAuthWrongSecret(t *testing.T) {
	h, _, _ := newGuarded(t)

	other, err := crypto.NewTokenService("other-secret")
	require.NoError(t, err)
	token, err := other.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTokenAuthBearerPrefixIsNotStripped(t *testing.T) {
	h, tokens, _ := newGuarded(t)

	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTokenAuthValidToken(t *testing.T) {
	h, tokens, seen := newGuarded(t)

	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", *seen)
}
