package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"
)

const callerCtxKey = "caller"

// CallerFromCtx returns the rate-limit identity of the request: the
// authenticated API key when inbound auth is enabled, the client IP otherwise.
func CallerFromCtx(c echo.Context) string {
	if v, ok := c.Get(callerCtxKey).(string); ok && v != "" {
		return v
	}
	return c.RealIP()
}

// APIKeyMiddleware authenticates requests using the X-API-Key header against a
// single configured key. An empty configured key disables inbound auth (the
// plugin manifest advertises auth type "none").
func APIKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" {
				return next(c)
			}
			key := strings.TrimSpace(c.Request().Header.Get("X-API-Key"))
			if key == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing api key"})
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
			}
			c.Set(callerCtxKey, key)
			return next(c)
		}
	}
}
