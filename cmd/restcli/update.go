package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateResource string
	updateData     string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing resource via the API",
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

		result, err := c.UpdateResource(cmd.Context(), updateResource, updateData)
		if err != nil {
			return fmt.Errorf("update %s: %w", updateResource, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("Successfully updated "+updateResource))
		return writeResult(out, result, "json", "")
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateResource, "resource", "r", "", "resource to update (e.g. users/1)")
	_ = updateCmd.MarkFlagRequired("resource")
	updateCmd.Flags().StringVarP(&updateData, "data", "d", "", "update data as JSON")
	_ = updateCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(updateCmd)
}
