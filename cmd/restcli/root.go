package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkhalikov/restcli/internal/client"
	"github.com/mkhalikov/restcli/internal/config"
	"github.com/mkhalikov/restcli/internal/logger"
	"github.com/mkhalikov/restcli/internal/version"
)

var (
	// Global flags
	cfgFile         string
	verbose         bool
	flagEndpoint    string
	flagToken       string
	flagTimeout     int
	flagNoVerifySSL bool
)

var rootCmd = &cobra.Command{
	Use:   "restcli",
	Short: "restcli - generic REST API client",
	Long: `restcli is a generic REST API client for the command line.

It authenticates with a bearer token and issues CRUD-style requests
(fetch/create/update/delete/health) against arbitrary resource paths of a
configured API. Credentials come from RESTCLI_* environment variables, a
TOML configuration file, or command-line flags.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Without a subcommand, show the status view.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

// Execute runs the root command. Any reported error exits with code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("RESTCLI_CONFIG"), "path to configuration file ($RESTCLI_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", os.Getenv("RESTCLI_VERBOSE") != "", "enable verbose output ($RESTCLI_VERBOSE)")
	rootCmd.PersistentFlags().StringVarP(&flagEndpoint, "endpoint", "e", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringVarP(&flagToken, "token", "t", "", "API authentication token")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", config.DefaultTimeout, "request timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&flagNoVerifySSL, "no-verify-ssl", false, "disable TLS certificate verification")
}

// loadConfig assembles the effective configuration: environment variables and
// the optional config file first, then explicit flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load configuration: %w", err)
	}

	if flagEndpoint != "" {
		cfg.APIEndpoint = flagEndpoint
	}
	if flagToken != "" {
		cfg.APIToken = flagToken
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flagNoVerifySSL {
		cfg.VerifySSL = false
	}
	if verbose {
		cfg.LogLevel = "DEBUG"
	}

	return cfg, nil
}

// newClient validates cfg and constructs an API client with a matching
// logger. Callers must defer Close on the returned client.
func newClient(cfg config.Config) (*client.Client, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			return nil, errors.New("API not configured: run 'restcli configure' first")
		}
		return nil, err
	}

	return client.New(cfg.ClientSettings(), logger.New(cfg.LogLevel))
}
