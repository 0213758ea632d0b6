package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/internal/ui"
)

// NewBooksCommand creates the books command.
func NewBooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "List books",
		Long:    "List all books served by the catalog API",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}

			client, err := createClient(settings, newLogger(cmd.ErrOrStderr(), settings))
			if err != nil {
				return err
			}

			books, err := client.GetBooks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list books: %w", err)
			}

			out := cmd.OutOrStdout()

			if settings.Output == constants.FormatTable {
				table := &ui.TableRenderer{CoverURL: settings.CoverURL, Width: terminalWidth(out)}

				return table.RenderBookList(out, books)
			}

			encoder := &ui.EncodeRenderer{Format: settings.Output}

			return encoder.Render(out, ui.State{Books: books, ActiveView: ui.ViewBooks})
		},
	}
}

// NewPublishersCommand creates the publishers command.
func NewPublishersCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "publishers",
		Aliases: []string{"publisher"},
		Short:   "List publishers",
		Long:    "List all publishers served by the catalog API",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}

			client, err := createClient(settings, newLogger(cmd.ErrOrStderr(), settings))
			if err != nil {
				return err
			}

			publishers, err := client.GetPublishers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list publishers: %w", err)
			}

			out := cmd.OutOrStdout()

			if settings.Output == constants.FormatTable {
				table := &ui.TableRenderer{CoverURL: settings.CoverURL}

				return table.RenderPublisherList(out, publishers)
			}

			encoder := &ui.EncodeRenderer{Format: settings.Output}

			return encoder.Render(out, ui.State{Publishers: publishers, ActiveView: ui.ViewPublishers})
		},
	}
}
