package http

import (
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/model"
	"github.com/crmkit/ghl-bridge/internal/util"
)

func normalizeContact(req *model.ContactRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if p := strings.TrimSpace(req.Phone); p != "" {
		req.Phone = util.NormalizePhone(p)
	} else {
		req.Phone = ""
	}
}

func createContactHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.ContactRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpContactCreate, "bad request")
		}

		normalizeContact(&req)
		if !req.HasIdentity() {
			return badRequest(c, ghl.OpContactCreate, "at least one of firstName, lastName, email, phone is required")
		}

		res, err := client.CreateContact(c.Request().Context(), req)
		return respond(c, ghl.OpContactCreate, res, err)
	}
}

func updateContactHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			return badRequest(c, ghl.OpContactUpdate, "contact id is required")
		}

		var req model.ContactRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpContactUpdate, "bad request")
		}
		normalizeContact(&req)

		res, err := client.UpdateContact(c.Request().Context(), id, req)
		return respond(c, ghl.OpContactUpdate, res, err)
	}
}
