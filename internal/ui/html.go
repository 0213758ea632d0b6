package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// HTMLOptions configures an HTMLRenderer.
type HTMLOptions struct {
	// BaseAPIURL is emitted on the mount element as data-base-api-url.
	BaseAPIURL string
	// CoverURL is the image service book covers are requested from.
	CoverURL string
	// ViewAction is where the filter bar form posts its selection.
	ViewAction string
}

// HTMLRenderer renders the app and its components as HTML.
type HTMLRenderer struct {
	tmpl *template.Template
	opts HTMLOptions
}

type pageData struct {
	BaseAPIURL string
	ViewAction string
	State      State
	Choices    []Choice
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer(opts HTMLOptions) (*HTMLRenderer, error) {
	if opts.ViewAction == "" {
		opts.ViewAction = "/view"
	}

	coverURL := opts.CoverURL

	tmpl, err := template.New("bookshelf").Funcs(template.FuncMap{
		"coverURL": func(pk int) string { return CoverURL(coverURL, pk) },
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &HTMLRenderer{tmpl: tmpl, opts: opts}, nil
}

// Render writes the full page for state.
func (r *HTMLRenderer) Render(w io.Writer, state State) error {
	return r.execute(w, "page", r.pageData(state))
}

// RenderApp writes the app container without the surrounding document.
func (r *HTMLRenderer) RenderApp(w io.Writer, state State) error {
	return r.execute(w, "app", r.pageData(state))
}

// RenderFilterBar writes the filter bar with active marked.
func (r *HTMLRenderer) RenderFilterBar(w io.Writer, active View) error {
	return r.execute(w, "filter-bar", r.pageData(State{ActiveView: active}))
}

// RenderBookList writes one book item per record, in order.
func (r *HTMLRenderer) RenderBookList(w io.Writer, books []bookshelf.Book) error {
	return r.execute(w, "book-list", books)
}

// RenderBookItem writes a single book.
func (r *HTMLRenderer) RenderBookItem(w io.Writer, book bookshelf.Book) error {
	return r.execute(w, "book-item", book)
}

// RenderPublisherList writes one publisher item per record, in order.
func (r *HTMLRenderer) RenderPublisherList(w io.Writer, publishers []bookshelf.Publisher) error {
	return r.execute(w, "publisher-list", publishers)
}

// RenderPublisherItem writes a single publisher.
func (r *HTMLRenderer) RenderPublisherItem(w io.Writer, publisher bookshelf.Publisher) error {
	return r.execute(w, "publisher-item", publisher)
}

func (r *HTMLRenderer) pageData(state State) pageData {
	return pageData{
		BaseAPIURL: r.opts.BaseAPIURL,
		ViewAction: r.opts.ViewAction,
		State:      state,
		Choices:    FilterBar{}.Choices(state.ActiveView),
	}
}

func (r *HTMLRenderer) execute(w io.Writer, name string, data interface{}) error {
	err := r.tmpl.ExecuteTemplate(w, name, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	return nil
}
