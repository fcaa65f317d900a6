package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func run(mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	_ = h(c)
	return rec
}

func TestAPIKeyMiddleware_DisabledWhenEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(APIKeyMiddleware(""), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddleware_MissingKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(APIKeyMiddleware("sekret"), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing api key")
}

func TestAPIKeyMiddleware_WrongKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-API-Key", "nope")
	rec := run(APIKeyMiddleware("sekret"), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddleware_CorrectKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-API-Key", "sekret")
	rec := run(APIKeyMiddleware("sekret"), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_PassthroughWithoutRedis(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(RateLimitMiddleware(RateLimitConfig{RPS: 1}), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID_Assigned(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(RequestIDMiddleware(), req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_HonorsInbound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := run(RequestIDMiddleware(), req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}
