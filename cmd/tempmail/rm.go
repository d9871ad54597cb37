// ABOUTME: Remove command for destroying aliases.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Destroy an alias",
	Long:  `Delete the routing rule for an alias. It stays in the history as expired and can be recreated.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		force, _ := cmd.Flags().GetBool("force")

		c, err := client()
		if err != nil {
			return err
		}

		if !force && !confirm(fmt.Sprintf("Destroy alias %s?", id)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := c.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to destroy alias: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Destroyed %s", id)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
