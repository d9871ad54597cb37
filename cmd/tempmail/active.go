// ABOUTME: Active command listing live aliases as cards.
// ABOUTME: Pinned aliases come first; --tag narrows the list.

package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/harper/tempmail/internal/models"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var activeCmd = &cobra.Command{
	Use:     "active",
	Aliases: []string{"ls"},
	Short:   "List active aliases",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")
		return showActive(cmd.Context(), tag)
	},
}

func showActive(ctx context.Context, tag string) error {
	c, err := client()
	if err != nil {
		return err
	}

	aliases, err := c.Active(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active aliases: %w", err)
	}

	if tag = models.NormalizeTagName(tag); tag != "" {
		aliases = slices.DeleteFunc(aliases, func(a *models.Alias) bool {
			return !slices.Contains(a.TagNames(), tag)
		})
	}

	if len(aliases) == 0 {
		fmt.Print(ui.FormatEmptyDashboard())
		return nil
	}

	fmt.Print(ui.FormatActiveHeader(len(aliases)))
	fmt.Print(ui.Separator())
	for _, a := range aliases {
		fmt.Print(ui.FormatAliasCard(a))
	}
	return nil
}

func init() {
	activeCmd.Flags().String("tag", "", "only aliases with this tag")
	rootCmd.AddCommand(activeCmd)
}
