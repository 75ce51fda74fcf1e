package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkhalikov/restcli/internal/config"
	"github.com/mkhalikov/restcli/internal/logger"
	"github.com/mkhalikov/restcli/internal/version"
)

const defaultTimeout = 30 * time.Second

// Client issues resource-oriented requests against a single base URL.
// Base URL and token are immutable for the life of the instance.
type Client struct {
	http    *resty.Client
	baseURL *url.URL
	logger  *logger.Logger
	closed  bool
}

// New constructs a Client from the given settings. The reusable connection
// context carries the bearer-token Authorization header, a JSON content
// type, the restcli User-Agent and the TLS-verification policy. A
// non-positive timeout falls back to 30 seconds.
//
// Returns [ErrInvalidBaseURL] or [ErrEmptyToken] (wrapped) before any
// connection context is built when the settings are unusable.
func New(settings config.ClientSettings, log *logger.Logger) (*Client, error) {
	baseURL, err := parseBaseURL(settings.BaseURL)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(settings.Token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + token,
			"Content-Type":  "application/json",
			"User-Agent":    "restcli/" + version.Version,
		})

	if !settings.VerifyTLS {
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{http: httpClient, baseURL: baseURL, logger: log}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidBaseURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}

	return u, nil
}

type requestOptions struct {
	body    any
	query   map[string]string
	headers map[string]string
}

// RequestOption customizes a single request issued through [Client.Request].
type RequestOption func(*requestOptions)

// WithBody attaches a JSON-serializable request body.
func WithBody(body any) RequestOption {
	return func(o *requestOptions) { o.body = body }
}

// WithQuery attaches query parameters.
func WithQuery(params map[string]string) RequestOption {
	return func(o *requestOptions) { o.query = params }
}

// WithHeaders merges extra headers over the connection context's defaults.
// Extra headers win on key collision.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) { o.headers = headers }
}

// Request issues a single HTTP request and normalizes all failure modes.
//
// path is resolved against the base URL with standard reference-resolution
// semantics: a relative path is joined to the base path, an absolute path
// replaces it. A transport-level failure (refused connection, DNS error,
// timeout) yields an APIError with no status code. A response outside the
// 200-299 range always yields an APIError carrying the extracted message,
// the status code and the raw response. On success the raw response is
// returned for the caller to interpret.
func (c *Client) Request(ctx context.Context, method, path string, opts ...RequestOption) (*resty.Response, error) {
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	req := c.http.R().SetContext(ctx)
	if ro.body != nil {
		req.SetBody(ro.body)
	}
	if len(ro.query) > 0 {
		req.SetQueryParams(ro.query)
	}
	if len(ro.headers) > 0 {
		req.SetHeaders(ro.headers)
	}

	resp, err := req.Execute(method, c.resolve(path))
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return nil, &APIError{Message: fmt.Sprintf("Request failed: %s", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Msg("request completed")

	if !resp.IsSuccess() {
		return nil, newStatusError(resp)
	}

	return resp, nil
}

// resolve joins path to the base URL per RFC 3986 reference resolution.
func (c *Client) resolve(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return c.baseURL.ResolveReference(ref).String()
}

// Close releases the connection context. Safe to call more than once; all
// requests issued before Close complete normally, requests issued after it
// open fresh connections and are not prevented.
func (c *Client) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.http.GetClient().CloseIdleConnections()
}
