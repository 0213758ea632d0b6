package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// TableRenderer renders the app as terminal tables.
type TableRenderer struct {
	// CoverURL is the image service book covers are requested from.
	CoverURL string
	// Width is the terminal width; descriptions are truncated to fit.
	Width int
}

// Render writes the filter bar line followed by the active list.
func (r *TableRenderer) Render(w io.Writer, state State) error {
	err := r.RenderFilterBar(w, state.ActiveView)
	if err != nil {
		return err
	}

	if state.ShowsPublishers() {
		return r.RenderPublisherList(w, state.Publishers)
	}

	return r.RenderBookList(w, state.Books)
}

// RenderFilterBar writes the two choices, bracketing the active one.
func (r *TableRenderer) RenderFilterBar(w io.Writer, active View) error {
	choices := FilterBar{}.Choices(active)
	labels := make([]string, 0, len(choices))

	for _, choice := range choices {
		if choice.Active {
			labels = append(labels, "["+choice.Label+"]")
		} else {
			labels = append(labels, choice.Label)
		}
	}

	_, err := fmt.Fprintf(w, "%s\n\n", strings.Join(labels, " | "))
	if err != nil {
		return fmt.Errorf("writing filter bar: %w", err)
	}

	return nil
}

// RenderBookList writes one row per book, in order.
func (r *TableRenderer) RenderBookList(w io.Writer, books []bookshelf.Book) error {
	_, _ = io.WriteString(w, "Books\n")

	if len(books) == 0 {
		_, _ = io.WriteString(w, "No books found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("PK", "Title", "Description", "Cover")

	descriptionWidth := r.descriptionWidth()

	for _, book := range books {
		_ = table.Append(
			strconv.Itoa(book.PK),
			book.Title,
			truncate(book.Description, descriptionWidth),
			CoverURL(r.CoverURL, book.PK),
		)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// RenderPublisherList writes one row per publisher, in order.
func (r *TableRenderer) RenderPublisherList(w io.Writer, publishers []bookshelf.Publisher) error {
	_, _ = io.WriteString(w, "Publishers\n")

	if len(publishers) == 0 {
		_, _ = io.WriteString(w, "No publishers found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("PK", "Name")

	for _, publisher := range publishers {
		_ = table.Append(strconv.Itoa(publisher.PK), publisher.Name)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func (r *TableRenderer) descriptionWidth() int {
	width := r.Width
	if width <= 0 {
		width = constants.DefaultTerminalWidth
	}

	return max(width-constants.TableChromeWidth, constants.MinDescriptionWidth)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	ellipsis := []rune(constants.Ellipsis)
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}

	return string(runes[:limit-len(ellipsis)]) + constants.Ellipsis
}
