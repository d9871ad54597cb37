// ABOUTME: Pin command for keeping aliases at the top of the dashboard.
// ABOUTME: --off unpins.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin or unpin an alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		off, _ := cmd.Flags().GetBool("off")

		c, err := client()
		if err != nil {
			return err
		}
		if err := c.Pin(cmd.Context(), args[0], !off); err != nil {
			return fmt.Errorf("failed to update pin: %w", err)
		}

		if off {
			fmt.Println(ui.Success(fmt.Sprintf("Unpinned %s", args[0])))
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Pinned %s", args[0])))
		}
		return nil
	},
}

func init() {
	pinCmd.Flags().Bool("off", false, "unpin instead")
	rootCmd.AddCommand(pinCmd)
}
