// ABOUTME: History command listing every alias ever created.
// ABOUTME: Supports search and text, JSON or YAML output.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harper/tempmail/internal/models"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show alias history",
	Long:  `List active and expired aliases, newest first. --search matches the address, destination or tag names.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		format, _ := cmd.Flags().GetString("format")
		limit, _ := cmd.Flags().GetInt("limit")

		c, err := client()
		if err != nil {
			return err
		}

		history, err := c.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		matches := models.FilterAliases(history, search)
		if limit > 0 && len(matches) > limit {
			matches = matches[:limit]
		}

		switch format {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(matches)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(matches)
		case "text":
		default:
			return fmt.Errorf("unknown format %q (use text, json or yaml)", format)
		}

		if len(matches) == 0 {
			fmt.Println("No aliases found.")
			return nil
		}
		for _, a := range matches {
			fmt.Print(ui.FormatHistoryRow(a))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("search", "s", "", "filter by address, destination or tag")
	historyCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	historyCmd.Flags().IntP("limit", "n", 0, "max results (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
