// ABOUTME: Create command for random aliases.
// ABOUTME: Opens the interactive form unless a destination is given.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/tagedit"
	"github.com/harper/tempmail/internal/tui"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a random alias",
	Long: `Create an alias with a random address on the configured domain.

Without --dest an interactive form opens with a destination picker and a tag
field that suggests known tags as you type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, _ := cmd.Flags().GetString("dest")
		tagsFlag, _ := cmd.Flags().GetStringSlice("tags")

		c, err := client()
		if err != nil {
			return err
		}

		tags := tagedit.NormalizeAll(tagsFlag)
		if dest == "" {
			res, err := runForm(cmd.Context(), tui.ModeRandom, "", tui.WithTags(tags))
			if err != nil {
				return err
			}
			if !res.Submitted {
				fmt.Println("Cancelled.")
				return nil
			}
			dest, tags = res.Destination, res.Tags
		}

		out, err := c.Create(cmd.Context(), api.CreateRequest{Destination: dest, Tags: tags})
		if err != nil {
			return fmt.Errorf("failed to create alias: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created %s", out.Email)))
		return nil
	},
}

func init() {
	createCmd.Flags().StringP("dest", "d", "", "destination mailbox")
	createCmd.Flags().StringSliceP("tags", "t", nil, "comma-separated tags")
	rootCmd.AddCommand(createCmd)
}
