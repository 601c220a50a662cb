package cmd

import (
	"fmt"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/spf13/cobra"
)

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <NdM>",
		Short: "Roll dice locally, e.g. dmbot roll 2d20",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := domain.Roll(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "🎲 You rolled: %s\n", domain.FormatRolls(results))
			return err
		},
	}
}
