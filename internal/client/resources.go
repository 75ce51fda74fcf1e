package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	healthPath = "health"

	// healthCheckTimeout is a fixed override, independent of the configured
	// request timeout.
	healthCheckTimeout = 10 * time.Second
)

// GetResource issues a GET for path and returns the parsed response body.
// No shape is assumed: the result may be an object, an array or a scalar.
func (c *Client) GetResource(ctx context.Context, path string, params map[string]string) (any, error) {
	resp, err := c.Request(ctx, http.MethodGet, path, WithQuery(params))
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// ListResources is behaviorally identical to [Client.GetResource]; it exists
// as a separate name for call-site clarity when fetching collections.
func (c *Client) ListResources(ctx context.Context, path string, params map[string]string) (any, error) {
	return c.GetResource(ctx, path, params)
}

// CreateResource issues a POST with data as the JSON body and returns the
// parsed response. data may be structured, or raw JSON text as a string or
// []byte; raw text is parsed first, and a parse failure yields an APIError
// before any network call is made.
func (c *Client) CreateResource(ctx context.Context, path string, data any) (any, error) {
	body, err := normalizeBody(data)
	if err != nil {
		return nil, err
	}

	resp, err := c.Request(ctx, http.MethodPost, path, WithBody(body))
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// UpdateResource issues a PUT with the same body handling as
// [Client.CreateResource].
func (c *Client) UpdateResource(ctx context.Context, path string, data any) (any, error) {
	body, err := normalizeBody(data)
	if err != nil {
		return nil, err
	}

	resp, err := c.Request(ctx, http.MethodPut, path, WithBody(body))
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// DeleteResource issues a DELETE for path and reports whether the server
// answered 200 or 204. Error statuses surface as an APIError from Request,
// so a false return only occurs for other success-range codes (201, 202, …).
func (c *Client) DeleteResource(ctx context.Context, path string) (bool, error) {
	resp, err := c.Request(ctx, http.MethodDelete, path)
	if err != nil {
		return false, err
	}

	return resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusNoContent, nil
}

// HealthCheck issues a GET to the fixed health path with a 10 second timeout
// override and reports whether the server answered exactly 200. This is the
// one operation that swallows the structured error: any APIError converts to
// a false return.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp, err := c.Request(ctx, http.MethodGet, healthPath)
	if err != nil {
		return false
	}

	return resp.StatusCode() == http.StatusOK
}

// normalizeBody parses raw JSON text bodies into structured values so that
// invalid input fails locally instead of reaching the server. Structured
// values pass through untouched.
func normalizeBody(data any) (any, error) {
	var raw []byte
	switch v := data.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return data, nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &APIError{Message: "Invalid JSON data provided"}
	}
	return parsed, nil
}

// decodeBody parses a successful response body into a schema-free value.
// An empty body decodes to nil (e.g. 204 responses).
func decodeBody(resp *resty.Response) (any, error) {
	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return v, nil
}
