package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/crmkit/ghl-bridge/internal/metrics"
	"github.com/crmkit/ghl-bridge/internal/model"
)

// Operation names surfaced in error responses and metrics labels.
const (
	OpContactCreate     = "contacts.create"
	OpContactUpdate     = "contacts.update"
	OpSendSMS           = "messages.sms"
	OpSendEmail         = "messages.email"
	OpPipelinesList     = "pipelines.list"
	OpOpportunityCreate = "opportunities.create"
	OpOpportunityUpdate = "opportunities.update"
	OpCampaignTrigger   = "campaigns.trigger"
	OpWorkflowTrigger   = "workflows.trigger"
	OpAppointmentCreate = "appointments.create"
	OpAppointmentsList  = "appointments.list"
)

const maxResponseBytes = 4 << 20 // 4MB

type Config struct {
	BaseURL       string
	APIKey        string
	LocationID    string
	Version       string // GHL "Version" header, e.g. 2021-07-28
	Timeout       time.Duration
	FailThreshold int
	OpenFor       time.Duration
}

// Client issues authenticated calls against the GoHighLevel REST API, scoped
// to a single location (sub-account). Every operation is exactly one
// synchronous HTTP exchange; there are no retries.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	version    string
	client     *http.Client
	br         *MicroBreaker
}

// Result is a successful upstream response: status plus JSON body.
type Result struct {
	Status int
	Body   json.RawMessage
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://services.leadconnectorhq.com"
	}
	if cfg.Version == "" {
		cfg.Version = "2021-07-28"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailThreshold <= 0 {
		cfg.FailThreshold = 3
	}
	if cfg.OpenFor <= 0 {
		cfg.OpenFor = 15 * time.Second
	}

	return &Client{
		baseURL:    trimSlash(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		locationID: cfg.LocationID,
		version:    cfg.Version,
		client:     &http.Client{Timeout: cfg.Timeout},
		br:         NewMicroBreaker(cfg.FailThreshold, cfg.OpenFor),
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// do performs one outbound exchange. 5xx and transport errors feed the
// breaker; 4xx means the upstream is reachable and counts as breaker success.
func (c *Client) do(ctx context.Context, op, method, path string, payload any, query url.Values) (Result, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Result{}, fmt.Errorf("%s: marshal payload: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return Result{}, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Version", c.version)

	if !c.br.TryAcquire() {
		return Result{}, fmt.Errorf("%s: breaker open: %w", op, ErrUpstreamUnavailable)
	}

	start := time.Now()
	res, err := c.client.Do(req)
	metrics.UpstreamSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		c.br.OnFailure()
		return Result{}, fmt.Errorf("%s: %w: %v", op, ErrUpstreamUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		c.br.OnFailure()
		return Result{}, fmt.Errorf("%s: read body: %w: %v", op, ErrUpstreamUnavailable, err)
	}
	jsonBody := ensureJSON(raw)

	if res.StatusCode/100 != 2 {
		if res.StatusCode >= 500 {
			c.br.OnFailure()
		} else {
			c.br.OnSuccess()
		}
		return Result{}, &APIError{Op: op, Status: res.StatusCode, Body: jsonBody}
	}

	c.br.OnSuccess()
	return Result{Status: res.StatusCode, Body: jsonBody}, nil
}

// ensureJSON passes valid JSON through and wraps anything else, matching the
// bridge's "always JSON out" contract.
func ensureJSON(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage(`{"message":"No response body"}`)
	}
	if json.Valid(trimmed) {
		return trimmed
	}
	wrapped, _ := json.Marshal(map[string]string{"message": string(trimmed)})
	return wrapped
}

// ---- Contacts ----

func (c *Client) CreateContact(ctx context.Context, req model.ContactRequest) (Result, error) {
	payload := req.Fields()
	payload["locationId"] = c.locationID
	return c.do(ctx, OpContactCreate, http.MethodPost, "/contacts/", payload, nil)
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, req model.ContactRequest) (Result, error) {
	payload := req.Fields()
	if len(payload) > 0 {
		payload["locationId"] = c.locationID
	}
	return c.do(ctx, OpContactUpdate, http.MethodPut, "/contacts/"+url.PathEscape(contactID), payload, nil)
}

// ---- Conversations (SMS / Email) ----

func (c *Client) SendSMS(ctx context.Context, req model.SMSRequest) (Result, error) {
	payload := map[string]any{
		"type": model.MessageTypeSMS.String(),
		"body": req.Body,
	}
	if req.ContactID != "" {
		payload["contactId"] = req.ContactID
	}
	if req.Recipient != "" {
		payload["toNumber"] = req.Recipient
	}
	return c.do(ctx, OpSendSMS, http.MethodPost, "/conversations/messages", payload, nil)
}

func (c *Client) SendEmail(ctx context.Context, req model.EmailRequest) (Result, error) {
	payload := map[string]any{
		"type":      model.MessageTypeEmail.String(),
		"contactId": req.ContactID,
		"subject":   req.Subject,
		"body":      req.Body,
	}
	return c.do(ctx, OpSendEmail, http.MethodPost, "/conversations/messages", payload, nil)
}

// ---- Opportunities ----

func (c *Client) ListPipelines(ctx context.Context) (Result, error) {
	return c.do(ctx, OpPipelinesList, http.MethodGet, "/opportunities/pipelines", nil, nil)
}

func (c *Client) CreateOpportunity(ctx context.Context, req model.OpportunityCreate) (Result, error) {
	status := req.Status
	if status == "" {
		status = "open"
	}
	payload := map[string]any{
		"name":            req.Name,
		"contactId":       req.ContactID,
		"pipelineId":      req.PipelineID,
		"pipelineStageId": req.PipelineStageID,
		"status":          status,
		"locationId":      c.locationID,
	}
	if req.MonetaryValue != nil {
		payload["monetaryValue"] = *req.MonetaryValue
	}
	return c.do(ctx, OpOpportunityCreate, http.MethodPost, "/opportunities/", payload, nil)
}

func (c *Client) UpdateOpportunity(ctx context.Context, opportunityID string, req model.OpportunityUpdate) (Result, error) {
	payload := req.Fields()
	if len(payload) > 0 {
		payload["locationId"] = c.locationID
	}
	return c.do(ctx, OpOpportunityUpdate, http.MethodPut, "/opportunities/"+url.PathEscape(opportunityID), payload, nil)
}

// ---- Campaign / workflow triggers ----

func (c *Client) AddToCampaign(ctx context.Context, contactID, campaignID string) (Result, error) {
	path := "/contacts/" + url.PathEscape(contactID) + "/campaigns/" + url.PathEscape(campaignID)
	return c.do(ctx, OpCampaignTrigger, http.MethodPost, path, nil, nil)
}

func (c *Client) AddToWorkflow(ctx context.Context, contactID, workflowID string) (Result, error) {
	path := "/contacts/" + url.PathEscape(contactID) + "/workflow/" + url.PathEscape(workflowID)
	return c.do(ctx, OpWorkflowTrigger, http.MethodPost, path, nil, nil)
}

// ---- Appointments ----

func (c *Client) CreateAppointment(ctx context.Context, req model.AppointmentCreate) (Result, error) {
	payload := map[string]any{
		"contactId":  req.ContactID,
		"startTime":  req.StartTime,
		"calendarId": req.CalendarID,
		"locationId": c.locationID,
	}
	if req.EndTime != "" {
		payload["endTime"] = req.EndTime
	}
	if req.Title != "" {
		payload["title"] = req.Title
	}
	return c.do(ctx, OpAppointmentCreate, http.MethodPost, "/calendars/events/appointments", payload, nil)
}

func (c *Client) ListAppointments(ctx context.Context, calendarID, startTime, endTime string) (Result, error) {
	q := url.Values{}
	q.Set("calendarId", calendarID)
	q.Set("startTime", startTime)
	q.Set("endTime", endTime)
	return c.do(ctx, OpAppointmentsList, http.MethodGet, "/calendars/events", nil, q)
}
