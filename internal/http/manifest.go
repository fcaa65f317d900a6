package http

import (
	_ "embed"
	"net/http"

	echo "github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiJSON []byte

// manifestHandler serves the plugin manifest at the well-known path. The
// document is fixed apart from the api url, which follows the request host.
func manifestHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		base := c.Scheme() + "://" + c.Request().Host
		manifest := map[string]any{
			"schema_version":        "v1",
			"name_for_human":        "GoHighLevel CRM Bridge",
			"name_for_model":        "gohighlevel_bridge",
			"description_for_human": "Bridge to connect an AI agent with GoHighLevel (CRM) sub-account features.",
			"description_for_model": "Tools to create/update contacts, send emails/SMS, manage opportunities, trigger campaigns/workflows, and schedule appointments via the GoHighLevel API.",
			"auth":                  map[string]any{"type": "none"},
			"api": map[string]any{
				"type":                  "openapi",
				"url":                   base + "/openapi.json",
				"is_user_authenticated": false,
			},
			"logo_url":       "https://example.com/logo.png",
			"contact_email":  "support@example.com",
			"legal_info_url": "https://example.com/terms",
		}
		return c.JSON(http.StatusOK, manifest)
	}
}

func openapiHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, openapiJSON)
	}
}
