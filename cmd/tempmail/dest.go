// ABOUTME: Dest command for managing destination mailboxes.
// ABOUTME: Provides list, add, and rm subcommands.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var destCmd = &cobra.Command{
	Use:   "dest",
	Short: "Manage destination mailboxes",
	Long:  `List, add, or remove the mailboxes aliases forward to. New mailboxes must be verified before use.`,
}

var destListCmd = &cobra.Command{
	Use:   "list",
	Short: "List destination mailboxes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}

		dests, err := c.Destinations(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list destinations: %w", err)
		}

		if len(dests) == 0 {
			fmt.Println("No destinations. Add one with 'tempmail dest add <email>'.")
			return nil
		}
		for _, d := range dests {
			fmt.Print(ui.FormatDestination(d))
		}
		return nil
	},
}

var destAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a destination mailbox",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%q is not an email address", email)
		}

		c, err := client()
		if err != nil {
			return err
		}
		if err := c.AddDestination(cmd.Context(), email); err != nil {
			return fmt.Errorf("failed to add destination: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Added %s", email)))
		fmt.Println(ui.Warning("Check that inbox for a verification email."))
		return nil
	},
}

var destRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a destination mailbox",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}
		if err := c.DeleteDestination(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to remove destination: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Removed destination %s", args[0])))
		return nil
	},
}

func init() {
	destCmd.AddCommand(destListCmd)
	destCmd.AddCommand(destAddCmd)
	destCmd.AddCommand(destRmCmd)
	rootCmd.AddCommand(destCmd)
}
