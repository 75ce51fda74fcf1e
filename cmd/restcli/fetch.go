package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fetchResource string
	fetchParams   string
	fetchOutput   string
	fetchFormat   string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a resource from the API",
	Long: `Fetch data from the API.

Examples:
  restcli fetch -r users                   # Fetch all users
  restcli fetch -r users/1                 # Fetch a specific user
  restcli fetch -r posts -p '{"page": 2}'  # Fetch with query parameters
  restcli fetch -r users -f table          # Render as a table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		params, err := parseParams(fetchParams)
		if err != nil {
			return err
		}

		c, err := newClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		data, err := c.GetResource(cmd.Context(), fetchResource, params)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", fetchResource, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("Successfully fetched "+fetchResource))
		return writeResult(out, data, fetchFormat, fetchOutput)
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchResource, "resource", "r", "", "resource path (e.g. users, users/1)")
	_ = fetchCmd.MarkFlagRequired("resource")
	fetchCmd.Flags().StringVarP(&fetchParams, "params", "p", "", `query parameters as a JSON object (e.g. '{"page": 1, "limit": 10}')`)
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output file path (default: stdout)")
	fetchCmd.Flags().StringVarP(&fetchFormat, "format", "f", "json", "output format: json, table or yaml")
	rootCmd.AddCommand(fetchCmd)
}
