// ABOUTME: Tags command listing the known tag catalog.
// ABOUTME: Shows each tag as a colored badge.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List known tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}

		tags, err := c.Tags(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if len(tags) == 0 {
			fmt.Println("No tags yet.")
			return nil
		}
		fmt.Print(ui.FormatTagList(tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
