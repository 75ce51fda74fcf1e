package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkhalikov/restcli/internal/config"
)

var configureLogLevel string

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure API credentials and defaults",
	Long: `Configure the application with API credentials.

The configuration is saved to the default location
(${XDG_CONFIG_HOME}/restcli/config.toml, or ~/.config/restcli/config.toml).
The same values can be supplied via RESTCLI_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEndpoint == "" || flagToken == "" {
			return errors.New("both --endpoint and --token are required")
		}

		cfg, err := config.New(flagEndpoint, flagToken, flagTimeout, !flagNoVerifySSL, configureLogLevel)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		path, err := cfg.Save("")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("Configuration saved to "+path))

		if verbose {
			fmt.Fprintf(out, "  Endpoint: %s\n", cfg.APIEndpoint)
			fmt.Fprintf(out, "  Token: %s\n", strings.Repeat("*", 8))
			fmt.Fprintf(out, "  Timeout: %ds\n", cfg.Timeout)
			fmt.Fprintf(out, "  TLS Verify: %t\n", cfg.VerifySSL)
			fmt.Fprintf(out, "  Log Level: %s\n", cfg.LogLevel)
		}
		return nil
	},
}

func init() {
	configureCmd.Flags().StringVar(&configureLogLevel, "log-level", config.DefaultLogLevel, "logging level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	rootCmd.AddCommand(configureCmd)
}
