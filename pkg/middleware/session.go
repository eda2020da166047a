// pkg/middleware/session.go

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"agriai/pkg/auth/repository"
)

// Session authenticates requests with a Bearer token and resolves the farmer
// profile into the request context as farmer_id and auth_uid. With devFallback
// enabled, requests without a token run as the shared dev farmer.
func Session(secret string, farmers repository.FarmerRepository, devFallback bool) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := uidFromBearer(c, key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			if uid == "" {
				if !devFallback {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				}
				uid = "dev-farmer"
			}

			farmer, err := farmers.FindOrCreate(uid)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			c.Set("auth_uid", uid)
			c.Set("farmer_id", farmer.FarmerID)
			return next(c)
		}
	}
}

// uidFromBearer returns the token subject, "" when no token is present, or an
// error for a token that is present but invalid.
func uidFromBearer(c echo.Context, key []byte) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", nil
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return "", nil
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
