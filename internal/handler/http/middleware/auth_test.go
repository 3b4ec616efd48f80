package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *jwtauth.JWTAuth {
	t.Helper()
	return jwtauth.New("HS256", []byte("unit-test-secret"), nil)
}

func encodeToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func runMiddleware(ja *jwtauth.JWTAuth, mw func(http.Handler) http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler := jwtauth.Verifier(ja)(mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	ja := newTestAuth(t)
	token := encodeToken(t, ja, map[string]interface{}{
		"user_id": "u1",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := runMiddleware(ja, AuthRequired(ja), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	ja := newTestAuth(t)
	token := encodeToken(t, ja, map[string]interface{}{
		"user_id": "u1",
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := runMiddleware(ja, AuthRequired(ja), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingTokenRejected(t *testing.T) {
	ja := newTestAuth(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := runMiddleware(ja, AuthRequired(ja), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	ja := newTestAuth(t)
	token := encodeToken(t, ja, map[string]interface{}{
		"user_id": "u1",
		"role":    "member",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := runMiddleware(ja, func(next http.Handler) http.Handler {
		return AuthRequired(ja)(AdminOnly(next))
	}, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	ja := newTestAuth(t)
	token := encodeToken(t, ja, map[string]interface{}{
		"user_id": "u1",
		"role":    "admin",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := runMiddleware(ja, func(next http.Handler) http.Handler {
		return AuthRequired(ja)(AdminOnly(next))
	}, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
