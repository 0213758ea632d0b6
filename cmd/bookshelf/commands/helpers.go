package commands

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/internal/logging"
	"github.com/fivetwenty-io/bookshelf/internal/ui"
	"github.com/fivetwenty-io/bookshelf/pkg/bookclient"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

func newLogger(w io.Writer, settings *Settings) bookshelf.Logger {
	return logging.New(w, settings.Verbose)
}

// createClient builds the catalog client from the effective settings.
func createClient(settings *Settings, logger bookshelf.Logger) (bookshelf.Client, error) {
	if settings.API == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	return bookclient.New(&bookshelf.Config{
		APIEndpoint: settings.API,
		HTTPTimeout: settings.Timeout,
		RetryMax:    settings.RetryMax,
		UserAgent:   settings.UserAgent,
		Debug:       settings.Verbose,
		Logger:      logger,
	})
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return constants.DefaultTerminalWidth
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return constants.DefaultTerminalWidth
	}

	return width
}

// newRenderer picks the renderer for the configured output format.
func newRenderer(w io.Writer, settings *Settings) ui.Renderer {
	switch settings.Output {
	case constants.FormatJSON, constants.FormatYAML:
		return &ui.EncodeRenderer{Format: settings.Output}
	default:
		return &ui.TableRenderer{
			CoverURL: settings.CoverURL,
			Width:    terminalWidth(w),
		}
	}
}
