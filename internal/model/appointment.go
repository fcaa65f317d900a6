package model

// AppointmentCreate schedules a calendar event for a contact.
// StartTime is an RFC3339 timestamp. CalendarID falls back to the configured
// default when empty.
type AppointmentCreate struct {
	ContactID  string `json:"contactId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CalendarID string `json:"calendarId"`
	Title      string `json:"title"`
}
