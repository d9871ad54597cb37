// ABOUTME: Recreate command for bringing back an expired alias.
// ABOUTME: Reuses the address, destination and tags from the history.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var recreateCmd = &cobra.Command{
	Use:   "recreate <email>",
	Short: "Recreate an expired alias",
	Long:  `Create a routing rule again for an address from the history, keeping its destination and tags.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.ToLower(strings.TrimSpace(args[0]))
		dest, _ := cmd.Flags().GetString("dest")
		ctx := cmd.Context()

		c, err := client()
		if err != nil {
			return err
		}

		alias, err := c.FindInHistory(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if alias == nil {
			return fmt.Errorf("%s is not in the history", email)
		}
		if alias.Active {
			return fmt.Errorf("%s is already active", email)
		}
		if dest == "" {
			dest = alias.Destination
		}

		out, err := c.Create(ctx, api.CreateRequest{
			Destination: dest,
			Email:       alias.Email,
			Tags:        alias.TagNames(),
		})
		if err != nil {
			return fmt.Errorf("failed to recreate alias: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Recreated %s", out.Email)))
		return nil
	},
}

func init() {
	recreateCmd.Flags().StringP("dest", "d", "", "send to a different destination")
	rootCmd.AddCommand(recreateCmd)
}
