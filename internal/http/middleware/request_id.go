package middleware

import (
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/util"
)

const requestIDCtxKey = "request_id"

// RequestIDFromCtx returns the correlation id assigned by RequestIDMiddleware.
func RequestIDFromCtx(c echo.Context) string {
	v, _ := c.Get(requestIDCtxKey).(string)
	return v
}

// RequestIDMiddleware assigns a ULID to each request (honoring an inbound
// X-Request-ID) and echoes it back in the response header.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get("X-Request-ID"))
			if id == "" {
				id = util.NewRequestID()
			}
			c.Set(requestIDCtxKey, id)
			c.Response().Header().Set("X-Request-ID", id)
			return next(c)
		}
	}
}
