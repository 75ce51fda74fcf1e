package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable consulted by this
// package: RESTCLI_API_ENDPOINT, RESTCLI_API_TOKEN, RESTCLI_TIMEOUT,
// RESTCLI_NO_VERIFY_SSL and RESTCLI_LOG_LEVEL.
const EnvPrefix = "RESTCLI_"

// parseEnv populates the overlay from environment variables using the
// caarlos0/env library. Fields are mapped via their `env` tags; unset
// variables leave the corresponding pointer nil.
func parseEnv(o *overlay) error {
	err := env.ParseWithOptions(o, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// FromEnv constructs a Config from environment variables alone. Unset
// variables fall back to defaults; out-of-domain values fail with an
// [ErrValidation]-wrapped error.
func FromEnv() (Config, error) {
	return newBuilder().withEnv().build()
}
