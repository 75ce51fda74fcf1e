package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"RESTCLI_API_ENDPOINT":  "https://api.example.com",
		"RESTCLI_API_TOKEN":     "env-token",
		"RESTCLI_TIMEOUT":       "90",
		"RESTCLI_NO_VERIFY_SSL": "true",
		"RESTCLI_LOG_LEVEL":     "warning",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := FromEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIEndpoint)
	assert.Equal(t, "env-token", cfg.APIToken)
	assert.Equal(t, 90, cfg.Timeout)
	assert.False(t, cfg.VerifySSL)
	assert.Equal(t, "WARNING", cfg.LogLevel)
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Empty(t, cfg.APIEndpoint)
	assert.Empty(t, cfg.APIToken)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.VerifySSL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestFromEnv_NoVerifySSLFalse(t *testing.T) {
	setEnvVars(t, map[string]string{"RESTCLI_NO_VERIFY_SSL": "false"})

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.True(t, cfg.VerifySSL)
}

func TestFromEnv_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"out of range", "500"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"RESTCLI_TIMEOUT": tt.value})

			_, err := FromEnv()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFromEnv_UnparsableTimeout(t *testing.T) {
	setEnvVars(t, map[string]string{"RESTCLI_TIMEOUT": "soon"})

	_, err := FromEnv()

	require.Error(t, err)
}

func TestFromEnv_InvalidLogLevel(t *testing.T) {
	setEnvVars(t, map[string]string{"RESTCLI_LOG_LEVEL": "LOUD"})

	_, err := FromEnv()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	// Arrange: file sets endpoint+token+timeout, env overrides the endpoint.
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `api_endpoint = "https://file.example.com"
api_token = "file-token"
timeout = 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	setEnvVars(t, map[string]string{"RESTCLI_API_ENDPOINT": "https://env.example.com"})

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIEndpoint)
	assert.Equal(t, "file-token", cfg.APIToken)
	assert.Equal(t, 120, cfg.Timeout)
	assert.Equal(t, path, cfg.SourcePath)
}

func TestLoad_WithoutFile(t *testing.T) {
	setEnvVars(t, map[string]string{"RESTCLI_API_TOKEN": "env-token"})

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.APIToken)
	assert.Empty(t, cfg.SourcePath)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnvVars(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"RESTCLI_API_ENDPOINT",
		"RESTCLI_API_TOKEN",
		"RESTCLI_TIMEOUT",
		"RESTCLI_NO_VERIFY_SSL",
		"RESTCLI_LOG_LEVEL",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
			_ = os.Unsetenv(k)
		}
	}
}
