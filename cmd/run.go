package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/dmbot/internal/adapters/discord"
	"github.com/bnema/dmbot/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve bot commands until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			token, err := app.discordToken(ctx)
			if err != nil {
				return err
			}

			narrator, err := app.narrator(ctx)
			if err != nil {
				return err
			}

			dispatcher := application.NewDispatcher(app.registry, app.combat, narrator)

			gateway, err := discord.NewGateway(token, dispatcher.Handle, app.log)
			if err != nil {
				return err
			}

			if err := gateway.Open(); err != nil {
				return err
			}
			defer func() {
				if err := gateway.Close(); err != nil {
					app.log.Error("close discord session", zap.Error(err))
				}
			}()

			app.log.Info("bot running, waiting for interrupt")
			fmt.Fprintln(cmd.OutOrStdout(), "dmbot connected; press ctrl-c to stop")

			signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-signalCtx.Done()

			return nil
		},
	}
}
