package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"parcelhub/internal/auth"
	apperrors "parcelhub/internal/errors"
)

// RoleStore looks up the stored role for an authenticated email.
type RoleStore interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAuthenticated verifies the bearer credential and attaches its claims
// to the request context. A missing or malformed credential maps to 401, a
// credential rejected by the verifier maps to 403, so callers can tell the
// two apart.
func RequireAuthenticated(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if header == "" || token == header || strings.TrimSpace(token) == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidCredential)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// RequireRole passes only when the authenticated email's stored role equals
// role. It must be composed after RequireAuthenticated; a request that
// somehow reaches it without claims is rejected, never let through.
func RequireRole(role string, store RoleStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.Email == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			stored, err := store.RoleByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				// no record means no role; anything else is a store failure
				if err == apperrors.ErrUserNotFound {
					httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
					return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
				}
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "role lookup failed",
					Code:  "INTERNAL_ERROR",
				})
			}
			if stored != role {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims attached by RequireAuthenticated.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}
