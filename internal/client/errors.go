package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Construction errors. Both are detected before any connection context is
// built.
var (
	// ErrInvalidBaseURL indicates the base URL is empty, unparsable, or not
	// an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base url must be a valid http(s) url")

	// ErrEmptyToken indicates a missing API token.
	ErrEmptyToken = errors.New("api token must not be empty")
)

// APIError is the single structured error for all client-level failures:
// transport errors, non-success HTTP statuses, and malformed JSON supplied
// to create/update.
type APIError struct {
	// Message is always set and human-readable.
	Message string

	// StatusCode is the HTTP status of the failed exchange, or zero when no
	// exchange completed (transport failure, local JSON validation).
	StatusCode int

	// Response is the raw response for diagnostic use, nil when no exchange
	// completed.
	Response *resty.Response
}

func (e *APIError) Error() string {
	return e.Message
}

// newStatusError builds the APIError for a non-success response. The message
// is extracted from the body when it is a JSON object: a "message" field is
// preferred, then an "error" field; anything else falls back to the status
// line.
func newStatusError(resp *resty.Response) *APIError {
	message := fmt.Sprintf("API request failed: %d %s",
		resp.StatusCode(), http.StatusText(resp.StatusCode()))

	var payload map[string]any
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		if v, ok := payload["message"].(string); ok && v != "" {
			message = v
		} else if v, ok := payload["error"].(string); ok && v != "" {
			message = v
		}
	}

	return &APIError{
		Message:    message,
		StatusCode: resp.StatusCode(),
		Response:   resp,
	}
}
