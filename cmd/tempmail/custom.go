// ABOUTME: Custom command for aliases with a chosen address.
// ABOUTME: Checks the history first and offers to recreate expired aliases.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/tagedit"
	"github.com/harper/tempmail/internal/tui"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var customCmd = &cobra.Command{
	Use:   "custom [alias]",
	Short: "Create an alias with a chosen address",
	Long: `Create an alias such as shop@yourdomain. The alias may be the part before
@ or a full address.

Without arguments an interactive form opens. An address that is still active
is refused. If it exists in the history as expired you are asked before it is
recreated; --force skips the question.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, _ := cmd.Flags().GetString("dest")
		tagsFlag, _ := cmd.Flags().GetStringSlice("tags")
		force, _ := cmd.Flags().GetBool("force")
		ctx := cmd.Context()

		c, err := client()
		if err != nil {
			return err
		}

		var email string
		tags := tagedit.NormalizeAll(tagsFlag)
		if len(args) == 1 && dest == "" {
			dest = cfg.DefaultDestination
		}
		if len(args) == 0 || dest == "" {
			opts := []tui.FormOption{tui.WithTags(tags)}
			if len(args) == 1 {
				opts = append(opts, tui.WithAlias(args[0]))
			}
			res, err := runForm(ctx, tui.ModeCustom, dest, opts...)
			if err != nil {
				return err
			}
			if !res.Submitted {
				fmt.Println("Cancelled.")
				return nil
			}
			email, dest, tags = res.Email(), res.Destination, res.Tags
		} else {
			email, err = customAddress(ctx, c, args[0])
			if err != nil {
				return err
			}
		}

		check, err := c.Check(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", email, err)
		}
		if check.Active {
			return fmt.Errorf("%s is already active", email)
		}
		if check.Exists && !force && !confirm(fmt.Sprintf("%s was used before. Recreate it?", email)) {
			fmt.Println("Cancelled.")
			return nil
		}

		out, err := c.Create(ctx, api.CreateRequest{Destination: dest, Email: email, Tags: tags})
		if err != nil {
			return fmt.Errorf("failed to create alias: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created %s", out.Email)))
		return nil
	},
}

// customAddress expands a bare alias with the server's domain.
func customAddress(ctx context.Context, c *api.Client, alias string) (string, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if alias == "" {
		return "", errors.New("alias cannot be empty")
	}
	if strings.Contains(alias, "@") {
		return alias, nil
	}

	sc, err := c.ServerConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load server config: %w", err)
	}
	if sc.Domain == "" {
		return "", errors.New("server has no domain configured (see 'tempmail server-config')")
	}
	return alias + "@" + sc.Domain, nil
}

func init() {
	customCmd.Flags().StringP("dest", "d", "", "destination mailbox")
	customCmd.Flags().StringSliceP("tags", "t", nil, "comma-separated tags")
	customCmd.Flags().BoolP("force", "f", false, "recreate without asking")
	rootCmd.AddCommand(customCmd)
}
