package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dmbot",
		Short:         "Discord Dungeon Master bot with dice, character sheets and combat turns",
		Long:          "dmbot is a Discord bot that narrates D&D scenes through the OpenAI API, rolls dice, keeps per-user character sheets and tracks combat turn order. State persists as JSON files between restarts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newStatusCmd(app),
		newRollCmd(),
		newNarrateCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
