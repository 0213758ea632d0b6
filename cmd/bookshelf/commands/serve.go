package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/internal/web"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI",
		Long: `Serve the bookshelf web UI. Each browser session mounts its own app,
which loads books and publishers once from the catalog API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), settings)

			client, err := createClient(settings, logger)
			if err != nil {
				return err
			}

			server, err := web.NewServer(client, logger, web.Config{
				ListenAddress: settings.Listen,
				CoverURL:      settings.CoverURL,
				SessionTTL:    settings.SessionTTL,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringP("listen", "l", constants.DefaultListenAddress, "address the web UI listens on")
	_ = viper.BindPFlag("listen", cmd.Flags().Lookup("listen"))

	return cmd
}
