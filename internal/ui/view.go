// Package ui holds the bookshelf view layer: the app container that owns the
// fetched catalog and the selected view, the filter bar that changes that
// view, and renderers that turn a snapshot of the container into HTML or
// terminal output.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// View selects which list the app shows.
type View string

const (
	ViewBooks      View = "books"
	ViewPublishers View = "publishers"
)

// DefaultView is shown until the filter bar reports a selection.
const DefaultView = ViewBooks

// ParseView converts the filter bar literal into a View.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewBooks:
		return ViewBooks, nil
	case ViewPublishers:
		return ViewPublishers, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrUnknownView, s)
	}
}

// State is an immutable snapshot of the app container.
type State struct {
	Books      []bookshelf.Book
	Publishers []bookshelf.Publisher
	ActiveView View
}

// ShowsPublishers reports whether the publisher list is the visible one.
func (s State) ShowsPublishers() bool {
	return s.ActiveView == ViewPublishers
}

// CoverURL returns the cover image for the book with the given primary key.
// The key is always the last query parameter, so the URL ends in "id=<pk>".
func CoverURL(base string, pk int) string {
	if base == "" {
		base = constants.DefaultCoverURL
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}

	return base + sep + "id=" + strconv.Itoa(pk)
}
