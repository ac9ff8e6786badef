package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleSource struct {
	roles map[string]string
}

func (f *fakeRoleSource) GetRoleByID(id string) (string, error) {
	role, ok := f.roles[id]
	if !ok {
		return "", assert.AnError
	}
	return role, nil
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func adminChain(roles RoleSource) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(RequireAdmin(roles)(next))
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{roles: map[string]string{"u1": "admin"}})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "u1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminForbidsClientRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{roles: map[string]string{"u1": "client"}})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "u1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminForbidsUnknownProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "ghost"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := adminChain(&fakeRoleSource{roles: map[string]string{"u1": "admin"}})

	req := httptest.NewRequest(http.MethodGet, "/admin/cars", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "u1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileIDFromContextSetByMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotID string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = ProfileIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "u1"))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "u1", gotID)
}
