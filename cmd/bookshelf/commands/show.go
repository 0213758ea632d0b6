package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bookshelf/internal/ui"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the app in the terminal",
		Long: `Mount the app once and render the filter bar with the selected list.
Catalog errors are logged and leave the affected list empty.`,
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

			app := ui.NewApp(client, logger)

			err = app.FilterBar().Activate(view)
			if err != nil {
				return err
			}

			app.Mount(cmd.Context())

			out := cmd.OutOrStdout()

			return app.Render(out, newRenderer(out, settings))
		},
	}

	cmd.Flags().StringVar(&view, "view", string(ui.DefaultView), "list to show (books, publishers)")

	return cmd
}
