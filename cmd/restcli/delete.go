package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteResource string
	deleteForce    bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a resource via the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !deleteForce {
			ok, err := confirm(cmd, fmt.Sprintf("Are you sure you want to delete %s? [y/N]: ", deleteResource))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, warnStyle.Render("Deletion cancelled"))
				return nil
			}
		}

		c, err := newClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		deleted, err := c.DeleteResource(cmd.Context(), deleteResource)
		if err != nil {
			return fmt.Errorf("delete %s: %w", deleteResource, err)
		}

		if deleted {
			fmt.Fprintln(out, successStyle.Render("Successfully deleted "+deleteResource))
		} else {
			fmt.Fprintln(out, warnStyle.Render("Delete request for "+deleteResource+" was accepted but not confirmed"))
		}
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteResource, "resource", "r", "", "resource to delete (e.g. users/1)")
	_ = deleteCmd.MarkFlagRequired("resource")
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
