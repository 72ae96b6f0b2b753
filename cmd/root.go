package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arvanshad/bazaar/internal/constants"
	"github.com/arvanshad/bazaar/internal/log"
)

func Start() {
	logger := log.InitLogger("/var/log/bazaar.log").
		With().
		Str(log.KeyAppName, constants.AppBazaarServer).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "bazaar"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "server",
		Short: "Run the bazaar http server",
		Run: func(cmd *cobra.Command, args []string) {
			RunServer(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
