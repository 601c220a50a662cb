package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNarrateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "narrate <prompt>",
		Short: "Ask the Dungeon Master for a one-shot narration from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			narrator, err := app.narrator(cmd.Context())
			if err != nil {
				return err
			}

			prompt := strings.Join(args, " ")

			var reply string
			err = runNarrateSpinner(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context) error {
				var narrateErr error
				reply, narrateErr = narrator.Narrate(ctx, prompt)
				return narrateErr
			})
			if err != nil {
				return fmt.Errorf("narrate: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}
}
