package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API health status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		c, err := newClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		out := cmd.OutOrStdout()
		if c.HealthCheck(cmd.Context()) {
			fmt.Fprintln(out, successStyle.Render("API is healthy"))
		} else {
			fmt.Fprintln(out, errorStyle.Render("API is unhealthy"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
