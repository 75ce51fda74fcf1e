package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the request timeout applied when no value is
	// configured, in seconds.
	DefaultTimeout = 30

	// MinTimeout and MaxTimeout bound the legal timeout domain, in seconds.
	MinTimeout = 1
	MaxTimeout = 300

	// DefaultLogLevel is the log level applied when no value is configured.
	DefaultLogLevel = "INFO"
)

// LogLevels is the set of recognized log level names. Input is
// case-normalized to upper case before membership is checked.
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// Config holds the connection settings consumed by the API client and the
// CLI front end. Zero string fields mean "not set"; Timeout, VerifySSL and
// LogLevel always hold a legal value once a Config has been constructed.
type Config struct {
	// APIEndpoint is the base URL of the API, e.g. "https://api.example.com".
	APIEndpoint string

	// APIToken is the opaque bearer token sent with every request.
	APIToken string

	// Timeout is the request timeout in seconds, within [MinTimeout, MaxTimeout].
	Timeout int

	// VerifySSL controls TLS certificate verification for outbound requests.
	VerifySSL bool

	// LogLevel is one of [LogLevels], normalized to upper case.
	LogLevel string

	// SourcePath records the file this configuration was loaded from.
	// Informational only; never persisted.
	SourcePath string
}

// ClientSettings is the projection of a [Config] consumed by the API client
// constructor. The client depends on this view only, never on Config itself.
type ClientSettings struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	VerifyTLS bool
}

// Default returns a Config populated with built-in defaults: no credentials,
// a 30 second timeout, TLS verification enabled and INFO logging.
func Default() Config {
	return Config{
		Timeout:   DefaultTimeout,
		VerifySSL: true,
		LogLevel:  DefaultLogLevel,
	}
}

// New constructs a validated Config from explicit field values.
// Returns a [ErrValidation]-wrapped error if timeout is outside
// [MinTimeout, MaxTimeout] or logLevel is not one of [LogLevels].
func New(endpoint, token string, timeout int, verifySSL bool, logLevel string) (Config, error) {
	cfg := Config{
		APIEndpoint: strings.TrimSpace(endpoint),
		APIToken:    strings.TrimSpace(token),
		Timeout:     timeout,
		VerifySSL:   verifySSL,
		LogLevel:    logLevel,
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize upper-cases the log level and checks field domains. It is run by
// every constructor so an out-of-domain value can never escape this package.
func (c *Config) normalize() error {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))

	if c.Timeout < MinTimeout || c.Timeout > MaxTimeout {
		return fmt.Errorf("%w: timeout must be between %d and %d seconds, got %d",
			ErrValidation, MinTimeout, MaxTimeout, c.Timeout)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log level must be one of %s, got %q",
			ErrValidation, strings.Join(LogLevels, ", "), c.LogLevel)
	}

	return nil
}

// IsConfigured reports whether both the API endpoint and the API token are
// set. It makes no judgement about whether they are usable; see [Config.Validate].
func (c *Config) IsConfigured() bool {
	return c.APIEndpoint != "" && c.APIToken != ""
}

// Validate performs the strict pre-flight check run before a client is
// constructed. It returns [ErrNotConfigured] when endpoint or token is
// missing, and an [ErrValidation]-wrapped error when the endpoint does not
// use an http:// or https:// scheme.
func (c *Config) Validate() error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	if !strings.HasPrefix(c.APIEndpoint, "http://") && !strings.HasPrefix(c.APIEndpoint, "https://") {
		return fmt.Errorf("%w: api endpoint must be an http:// or https:// URL, got %q",
			ErrValidation, c.APIEndpoint)
	}

	return nil
}

// ClientSettings projects the four fields the API client needs.
func (c *Config) ClientSettings() ClientSettings {
	return ClientSettings{
		BaseURL:   c.APIEndpoint,
		Token:     c.APIToken,
		Timeout:   time.Duration(c.Timeout) * time.Second,
		VerifyTLS: c.VerifySSL,
	}
}
