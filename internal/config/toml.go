package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	appDirName     = "restcli"
	configFileName = "config.toml"
)

// fileConfig is the on-disk shape of a saved configuration. Credentials are
// omitted when unset; the remaining fields always carry a value.
type fileConfig struct {
	APIEndpoint string `toml:"api_endpoint,omitempty"`
	APIToken    string `toml:"api_token,omitempty"`
	Timeout     int    `toml:"timeout"`
	VerifySSL   bool   `toml:"verify_ssl"`
	LogLevel    string `toml:"log_level"`
}

// readTOML decodes the TOML file at path into an overlay. Returns
// [ErrNotFound] when the file does not exist and [ErrInvalidFormat]
// (carrying the parser's message) when it cannot be decoded.
func readTOML(path string) (*overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	var o overlay
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}

	return &o, nil
}

// FromFile constructs a Config from the TOML file at path. Missing keys fall
// back to defaults. Returns [ErrNotFound] when path does not exist and
// [ErrInvalidFormat] when the file cannot be parsed or its values fail field
// validation.
func FromFile(path string) (Config, error) {
	o, err := readTOML(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	o.apply(&cfg)
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}

	cfg.SourcePath = path
	return cfg, nil
}

// Save writes the configuration as TOML to path, or to [DefaultPath] when
// path is empty, creating parent directories as needed. Unset credentials
// are omitted from the output; SourcePath is never persisted. Returns the
// path the file was written to.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("error creating configuration directory: %w", err)
	}

	data, err := toml.Marshal(fileConfig{
		APIEndpoint: c.APIEndpoint,
		APIToken:    c.APIToken,
		Timeout:     c.Timeout,
		VerifySSL:   c.VerifySSL,
		LogLevel:    c.LogLevel,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding configuration: %w", err)
	}

	// 0600: the file may hold an API token.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("error saving configuration: %w", err)
	}

	return path, nil
}

// DefaultPath returns ${XDG_CONFIG_HOME}/restcli/config.toml when
// XDG_CONFIG_HOME is set and non-empty, else ~/.config/restcli/config.toml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, configFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName, configFileName), nil
}
