package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// overlay is a partial configuration layer with pointer fields so that
// "explicitly false" and "not set" stay distinguishable across merges.
// The same struct serves both source decoders: env tags for the environment
// layer, toml tags for the file layer. NoVerifySSL mirrors the inverted
// RESTCLI_NO_VERIFY_SSL variable and exists only on the env side.
type overlay struct {
	APIEndpoint *string `env:"API_ENDPOINT" toml:"api_endpoint"`
	APIToken    *string `env:"API_TOKEN" toml:"api_token"`
	Timeout     *int    `env:"TIMEOUT" toml:"timeout"`
	VerifySSL   *bool   `toml:"verify_ssl"`
	NoVerifySSL *bool   `env:"NO_VERIFY_SSL" toml:"-"`
	LogLevel    *string `env:"LOG_LEVEL" toml:"log_level"`
}

// apply copies the set fields of the overlay onto cfg.
func (o *overlay) apply(cfg *Config) {
	if o.APIEndpoint != nil {
		cfg.APIEndpoint = *o.APIEndpoint
	}
	if o.APIToken != nil {
		cfg.APIToken = *o.APIToken
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.VerifySSL != nil {
		cfg.VerifySSL = *o.VerifySSL
	}
	if o.NoVerifySSL != nil {
		cfg.VerifySSL = !*o.NoVerifySSL
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
}

type builder struct {
	overlays   []*overlay
	sourcePath string
	err        error
}

func newBuilder() *builder {
	return &builder{
		overlays: make([]*overlay, 0, 2),
	}
}

// build merges the collected overlays first-wins, applies the result over the
// defaults and validates the final Config.
func (b *builder) build() (Config, error) {
	if b.err != nil {
		return Config{}, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(overlay)
	for _, o := range b.overlays {
		if err := mergo.Merge(merged, o); err != nil {
			return Config{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg := Default()
	merged.apply(&cfg)
	cfg.SourcePath = b.sourcePath

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (b *builder) withEnv() *builder {
	envOverlay := &overlay{}
	if err := parseEnv(envOverlay); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overlays = append(b.overlays, envOverlay)
	return b
}

func (b *builder) withFile(path string) *builder {
	fileOverlay, err := readTOML(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overlays = append(b.overlays, fileOverlay)
	b.sourcePath = path
	return b
}

// Load assembles the effective runtime configuration: environment variables
// first, then the optional TOML file at path (env wins on collision), then
// defaults. An empty path skips the file layer.
func Load(path string) (Config, error) {
	b := newBuilder().withEnv()
	if path != "" {
		b = b.withFile(path)
	}
	return b.build()
}
