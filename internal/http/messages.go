package http

import (
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/model"
	"github.com/crmkit/ghl-bridge/internal/util"
)

func sendSMSHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.SMSRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpSendSMS, "bad request")
		}

		req.ContactID = strings.TrimSpace(req.ContactID)
		req.Body = strings.TrimSpace(req.Body)
		if p := strings.TrimSpace(req.Recipient); p != "" {
			req.Recipient = util.NormalizePhone(p)
		} else {
			req.Recipient = ""
		}

		if req.Body == "" {
			return badRequest(c, ghl.OpSendSMS, "body is required")
		}
		if req.ContactID == "" && req.Recipient == "" {
			return badRequest(c, ghl.OpSendSMS, "contactId or recipient is required")
		}

		res, err := client.SendSMS(c.Request().Context(), req)
		return respond(c, ghl.OpSendSMS, res, err)
	}
}

func sendEmailHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.EmailRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpSendEmail, "bad request")
		}

		req.ContactID = strings.TrimSpace(req.ContactID)
		req.Subject = strings.TrimSpace(req.Subject)
		req.Body = strings.TrimSpace(req.Body)

		if req.ContactID == "" || req.Subject == "" || req.Body == "" {
			return badRequest(c, ghl.OpSendEmail, "contactId, subject and body are required")
		}

		res, err := client.SendEmail(c.Request().Context(), req)
		return respond(c, ghl.OpSendEmail, res, err)
	}
}
