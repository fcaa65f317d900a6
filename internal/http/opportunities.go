package http

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/cache"
	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/metrics"
	"github.com/crmkit/ghl-bridge/internal/model"
)

const pipelinesCacheKey = "ghl:pipelines"

// listPipelinesHandler serves the pipeline/stage catalog, read through a
// short-TTL cache. The CRM stays authoritative; a stale entry only delays
// pipeline renames by the TTL.
func listPipelinesHandler(client *ghl.Client, pipelines *cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if b, ok := pipelines.Get(ctx, pipelinesCacheKey); ok {
			metrics.RequestsTotal.WithLabelValues(ghl.OpPipelinesList, "ok").Inc()
			return c.JSONBlob(http.StatusOK, b)
		}

		res, err := client.ListPipelines(ctx)
		if err == nil && res.Status == http.StatusOK {
			pipelines.Set(ctx, pipelinesCacheKey, res.Body)
		}
		return respond(c, ghl.OpPipelinesList, res, err)
	}
}

func createOpportunityHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.OpportunityCreate
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpOpportunityCreate, "bad request")
		}

		req.Name = strings.TrimSpace(req.Name)
		req.ContactID = strings.TrimSpace(req.ContactID)
		req.PipelineID = strings.TrimSpace(req.PipelineID)
		req.PipelineStageID = strings.TrimSpace(req.PipelineStageID)

		if !req.Complete() {
			return badRequest(c, ghl.OpOpportunityCreate, "name, contactId, pipelineId and pipelineStageId are required")
		}

		res, err := client.CreateOpportunity(c.Request().Context(), req)
		return respond(c, ghl.OpOpportunityCreate, res, err)
	}
}

func updateOpportunityHandler(client *ghl.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			return badRequest(c, ghl.OpOpportunityUpdate, "opportunity id is required")
		}

		var req model.OpportunityUpdate
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpOpportunityUpdate, "bad request")
		}

		res, err := client.UpdateOpportunity(c.Request().Context(), id, req)
		return respond(c, ghl.OpOpportunityUpdate, res, err)
	}
}
