package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mkhalikov/restcli/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show application status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderStatusTable(cfg))

	if !cfg.IsConfigured() {
		fmt.Fprintln(out, warnStyle.Render("API not configured. Run 'restcli configure' first."))
	}
	return nil
}

func renderStatusTable(cfg config.Config) string {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = "Not configured"
	}
	token := "Not configured"
	if cfg.APIToken != "" {
		token = "Configured"
	}
	tlsVerify := "Enabled"
	if !cfg.VerifySSL {
		tlsVerify = "Disabled"
	}
	verboseMode := "No"
	if verbose {
		verboseMode = "Yes"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("SETTING", "VALUE").
		Row("API Endpoint", endpoint).
		Row("API Token", token).
		Row("Timeout", fmt.Sprintf("%ds", cfg.Timeout)).
		Row("TLS Verification", tlsVerify).
		Row("Log Level", cfg.LogLevel).
		Row("Verbose Mode", verboseMode)

	return t.Render()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
