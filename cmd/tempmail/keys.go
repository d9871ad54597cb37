// ABOUTME: Keys command printing the tag editor key reference.
// ABOUTME: Rendered as markdown for the terminal.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show tag editor keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(ui.FormatHelp())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
