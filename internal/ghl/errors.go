package ghl

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable covers transport failures, timeouts, and an open
// circuit breaker: the CRM could not be reached at all.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// APIError is a non-2xx response from the CRM API. Body is always valid JSON
// (non-JSON upstream bodies get wrapped).
type APIError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ghl: op=%s status=%d", e.Op, e.Status)
}
