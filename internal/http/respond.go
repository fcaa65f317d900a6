package http

import (
	"encoding/json"
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/metrics"
)

// badRequest rejects the payload before any outbound call is made.
func badRequest(c echo.Context, op, msg string) error {
	metrics.RequestsTotal.WithLabelValues(op, "validation_error").Inc()
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":     msg,
		"operation": op,
	})
}

// respond forwards the CRM outcome to the caller: success bodies pass through
// with the upstream status, failures carry the operation name.
func respond(c echo.Context, op string, res ghl.Result, err error) error {
	if err == nil {
		metrics.RequestsTotal.WithLabelValues(op, "ok").Inc()
		return c.JSONBlob(res.Status, res.Body)
	}

	var apiErr *ghl.APIError
	if errors.As(err, &apiErr) {
		metrics.RequestsTotal.WithLabelValues(op, "upstream_error").Inc()
		return c.JSON(apiErr.Status, map[string]any{
			"error":           "upstream_error",
			"operation":       op,
			"upstream_status": apiErr.Status,
			"upstream_body":   json.RawMessage(apiErr.Body),
		})
	}

	if errors.Is(err, ghl.ErrUpstreamUnavailable) {
		metrics.RequestsTotal.WithLabelValues(op, "unavailable").Inc()
		log.Errorf("%s: upstream unavailable: %v", op, err)
		return c.JSON(http.StatusBadGateway, map[string]any{
			"error":     "upstream_unavailable",
			"operation": op,
		})
	}

	metrics.RequestsTotal.WithLabelValues(op, "internal_error").Inc()
	log.Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, map[string]any{
		"error":     "internal_error",
		"operation": op,
	})
}
