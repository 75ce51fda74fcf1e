package config

import "errors"

// Error taxonomy for configuration loading and validation. Callers classify
// failures with errors.Is; the wrapped message carries the specifics.
var (
	// ErrValidation indicates a field value outside its allowed domain
	// (timeout range, log level set, endpoint scheme).
	ErrValidation = errors.New("invalid configuration value")

	// ErrNotFound indicates the referenced configuration file does not exist.
	ErrNotFound = errors.New("configuration file not found")

	// ErrInvalidFormat indicates the configuration file exists but cannot be
	// parsed, or its content fails field validation.
	ErrInvalidFormat = errors.New("invalid configuration file")

	// ErrNotConfigured indicates the endpoint or token required for API
	// access is missing.
	ErrNotConfigured = errors.New("api endpoint and token must be configured")
)
