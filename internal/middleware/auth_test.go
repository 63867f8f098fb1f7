package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"parcelhub/internal/auth"
	apperrors "parcelhub/internal/errors"
	"parcelhub/internal/model"
)

const testSecret = "test-secret"

// fakeRoleStore serves roles from a fixed map; unknown emails report
// ErrUserNotFound like the real store.
type fakeRoleStore struct {
	roles map[string]string
}

func (s *fakeRoleStore) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := s.roles[email]
	if !ok {
		return "", apperrors.ErrUserNotFound
	}
	return role, nil
}

func newGuardedEcho(store *fakeRoleStore) *echo.Echo {
	e := echo.New()
	authn := RequireAuthenticated(testSecret)
	admin := RequireRole(model.RoleAdmin, store)

	e.GET("/open", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/protected", func(c echo.Context) error {
		claims, _ := ClaimsFrom(c)
		return c.String(http.StatusOK, claims.Email)
	}, authn)
	e.GET("/admin-only", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, authn, admin)
	return e
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateAccessToken(1, email)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestGuards(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{
		"admin@example.com": model.RoleAdmin,
		"user@example.com":  model.RoleUser,
	}}
	e := newGuardedEcho(store)

	tests := []struct {
		name         string
		path         string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "open route needs nothing",
			path:         "/open",
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing credential",
			path:         "/protected",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed header",
			path:         "/protected",
			authHeader:   "Token abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "empty bearer token",
			path:         "/protected",
			authHeader:   "Bearer ",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "rejected credential",
			path:         "/protected",
			authHeader:   "Bearer not-a-real-token",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "valid credential passes authentication",
			path:         "/protected",
			authHeader:   bearerFor(t, "user@example.com"),
			expectedCode: http.StatusOK,
		},
		{
			name:         "authenticated but wrong role",
			path:         "/admin-only",
			authHeader:   bearerFor(t, "user@example.com"),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "authenticated but no stored record",
			path:         "/admin-only",
			authHeader:   bearerFor(t, "ghost@example.com"),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "correct role passes both guards",
			path:         "/admin-only",
			authHeader:   bearerFor(t, "admin@example.com"),
			expectedCode: http.StatusOK,
		},
		{
			name:         "role route still demands authentication first",
			path:         "/admin-only",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGuards_ClaimsAttached(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	e := newGuardedEcho(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, "claims@example.com"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "claims@example.com", rec.Body.String())
}

func TestGuards_TamperedToken(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	e := newGuardedEcho(store)

	// signed with a different secret
	token, err := auth.NewJWTService("other-secret").GenerateAccessToken(1, "user@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
