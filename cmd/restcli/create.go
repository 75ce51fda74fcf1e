package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createResource string
	createData     string
	createFile     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new resource via the API",
	Long: `Create a new resource via the API.

Examples:
  restcli create -r users -d '{"name":"John","email":"john@example.com"}'
  restcli create -r posts -f post_data.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		data := createData
		if createFile != "" {
			raw, err := os.ReadFile(createFile)
			if err != nil {
				return fmt.Errorf("read data file: %w", err)
			}
			data = string(raw)
		}
		if data == "" {
			return errors.New("either --data or --file is required")
		}

		c, err := newClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		result, err := c.CreateResource(cmd.Context(), createResource, data)
		if err != nil {
			return fmt.Errorf("create %s: %w", createResource, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("Successfully created "+createResource))
		return writeResult(out, result, "json", "")
	},
}

func init() {
	createCmd.Flags().StringVarP(&createResource, "resource", "r", "", "resource path (e.g. users, posts)")
	_ = createCmd.MarkFlagRequired("resource")
	createCmd.Flags().StringVarP(&createData, "data", "d", "", "resource data as JSON")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "read data from file instead of --data")
	rootCmd.AddCommand(createCmd)
}
