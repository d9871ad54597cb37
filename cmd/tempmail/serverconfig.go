// ABOUTME: Server-config command for the routing provider settings.
// ABOUTME: Shows the settings, or updates the ones given as flags.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var serverConfigCmd = &cobra.Command{
	Use:   "server-config",
	Short: "Show or update the server's routing settings",
	Long: `Without flags, print the domain, zone and (masked) provider token held by
the server. With flags, update only the given settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := client()
		if err != nil {
			return err
		}

		sc, err := c.ServerConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load server config: %w", err)
		}

		flags := cmd.Flags()
		if !flags.Changed("domain") && !flags.Changed("zone") && !flags.Changed("cf-token") {
			fmt.Print(ui.FormatServerConfig(sc))
			return nil
		}

		if flags.Changed("domain") {
			sc.Domain, _ = flags.GetString("domain")
		}
		if flags.Changed("zone") {
			sc.ZoneID, _ = flags.GetString("zone")
		}
		// A masked token sent back unchanged leaves the stored one in place.
		if flags.Changed("cf-token") {
			sc.CFToken, _ = flags.GetString("cf-token")
		}

		if err := c.SaveServerConfig(ctx, sc); err != nil {
			return fmt.Errorf("failed to save server config: %w", err)
		}
		fmt.Println(ui.Success("Server config saved"))
		return nil
	},
}

func init() {
	serverConfigCmd.Flags().String("domain", "", "alias domain")
	serverConfigCmd.Flags().String("zone", "", "DNS zone ID")
	serverConfigCmd.Flags().String("cf-token", "", "routing provider API token")
	rootCmd.AddCommand(serverConfigCmd)
}
