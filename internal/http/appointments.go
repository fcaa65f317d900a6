package http

import (
	"strings"
	"time"

	echo "github.com/labstack/echo/v4"

	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/model"
)

const defaultListWindow = 7 * 24 * time.Hour

func createAppointmentHandler(client *ghl.Client, defaultCalendarID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.AppointmentCreate
		if err := c.Bind(&req); err != nil {
			return badRequest(c, ghl.OpAppointmentCreate, "bad request")
		}

		req.ContactID = strings.TrimSpace(req.ContactID)
		req.StartTime = strings.TrimSpace(req.StartTime)
		req.CalendarID = strings.TrimSpace(req.CalendarID)

		if req.ContactID == "" {
			return badRequest(c, ghl.OpAppointmentCreate, "contactId is required")
		}
		if req.StartTime == "" {
			return badRequest(c, ghl.OpAppointmentCreate, "startTime is required")
		}
		if _, err := time.Parse(time.RFC3339, req.StartTime); err != nil {
			return badRequest(c, ghl.OpAppointmentCreate, "startTime must be RFC3339")
		}
		if req.EndTime != "" {
			if _, err := time.Parse(time.RFC3339, req.EndTime); err != nil {
				return badRequest(c, ghl.OpAppointmentCreate, "endTime must be RFC3339")
			}
		}
		if req.CalendarID == "" {
			if defaultCalendarID == "" {
				return badRequest(c, ghl.OpAppointmentCreate, "calendarId is required (no default set)")
			}
			req.CalendarID = defaultCalendarID
		}

		res, err := client.CreateAppointment(c.Request().Context(), req)
		return respond(c, ghl.OpAppointmentCreate, res, err)
	}
}

// listAppointmentsHandler lists calendar events; the window defaults to the
// next 7 days.
func listAppointmentsHandler(client *ghl.Client, defaultCalendarID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		calendarID := strings.TrimSpace(c.QueryParam("calendarId"))
		if calendarID == "" {
			if defaultCalendarID == "" {
				return badRequest(c, ghl.OpAppointmentsList, "calendarId is required (no default set)")
			}
			calendarID = defaultCalendarID
		}

		startTime := strings.TrimSpace(c.QueryParam("startTime"))
		if startTime == "" {
			startTime = time.Now().UTC().Format(time.RFC3339)
		} else if _, err := time.Parse(time.RFC3339, startTime); err != nil {
			return badRequest(c, ghl.OpAppointmentsList, "startTime must be RFC3339")
		}

		endTime := strings.TrimSpace(c.QueryParam("endTime"))
		if endTime == "" {
			endTime = time.Now().UTC().Add(defaultListWindow).Format(time.RFC3339)
		} else if _, err := time.Parse(time.RFC3339, endTime); err != nil {
			return badRequest(c, ghl.OpAppointmentsList, "endTime must be RFC3339")
		}

		res, err := client.ListAppointments(c.Request().Context(), calendarID, startTime, endTime)
		return respond(c, ghl.OpAppointmentsList, res, err)
	}
}
