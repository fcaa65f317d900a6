package http

import (
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/model"
)

func triggerCampaignHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.CampaignTrigger
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpCampaignTrigger, "bad request")
		}

		req.ContactID = strings.TrimSpace(req.ContactID)
		req.CampaignID = strings.TrimSpace(req.CampaignID)
		if req.ContactID == "" || req.CampaignID == "" {
			return badRequest(c, ghl.OpCampaignTrigger, "contactId and campaignId are required")
		}

		res, err := client.AddToCampaign(c.Request().Context(), req.ContactID, req.CampaignID)
		return respond(c, ghl.OpCampaignTrigger, res, err)
	}
}

func triggerWorkflowHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.WorkflowTrigger
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpWorkflowTrigger, "bad request")
		}

		req.ContactID = strings.TrimSpace(req.ContactID)
		req.WorkflowID = strings.TrimSpace(req.WorkflowID)
		if req.ContactID == "" || req.WorkflowID == "" {
			return badRequest(c, ghl.OpWorkflowTrigger, "contactId and workflowId are required")
		}

		res, err := client.AddToWorkflow(c.Request().Context(), req.ContactID, req.WorkflowID)
		return respond(c, ghl.OpWorkflowTrigger, res, err)
	}
}
