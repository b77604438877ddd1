package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// Roles carried in the token's role claim.
const (
	RoleBuyer      = "buyer"
	RoleFarmer     = "farmer"
	RoleDispatcher = "dispatcher"
)

// NewToken generates a signed JWT for a user. Used by tests and external
// identity tooling; the server itself only verifies tokens.
func NewToken(secret string, userID kernel.UUID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthMiddleware verifies the bearer token on each request and stores the
// authenticated user id and role in the request context. Identity is issued
// elsewhere; this layer only checks the signature and extracts claims.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims: sub not found")
			}

			userID, err := kernel.UUIDFromString(sub)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims: invalid user id")
			}

			role, ok := claims["role"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims: role not found")
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, role)
			return next(c)
		}
	}
}

// RequireRole restricts a route to the listed roles.
// Must run after AuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing role")
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// authenticatedUserID returns the user id stored by AuthMiddleware.
func authenticatedUserID(c echo.Context) (kernel.UUID, error) {
	userID, ok := c.Get(ContextKeyUserID).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}
	return userID, nil
}
