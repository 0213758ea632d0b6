package ui

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/fivetwenty-io/bookshelf/internal/logging"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// Renderer turns a container snapshot into output.
type Renderer interface {
	Render(w io.Writer, state State) error
}

// App is the top-level container. It owns the fetched catalog and the active
// view; children receive a State snapshot and report back through the filter
// bar callback.
type App struct {
	client bookshelf.CatalogClient
	logger bookshelf.Logger

	mountOnce sync.Once

	mu         sync.RWMutex
	books      []bookshelf.Book
	publishers []bookshelf.Publisher
	activeView View
}

// NewApp creates an unmounted container showing the default view.
func NewApp(client bookshelf.CatalogClient, logger bookshelf.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}

	return &App{
		client:     client,
		logger:     logger,
		activeView: DefaultView,
	}
}

// Mount loads books and then publishers. Only the first call fetches; later
// calls return immediately. A failed fetch is logged and leaves its list
// empty.
func (a *App) Mount(ctx context.Context) {
	a.mountOnce.Do(func() {
		a.loadBooks(ctx)
		a.loadPublishers(ctx)
	})
}

func (a *App) loadBooks(ctx context.Context) {
	books, err := a.client.GetBooks(ctx)
	if err != nil {
		a.logger.Error("getBookData", map[string]interface{}{"error": err.Error()})

		return
	}

	a.mu.Lock()
	a.books = books
	a.mu.Unlock()

	a.logger.Debug("books loaded", map[string]interface{}{"count": len(books)})
}

func (a *App) loadPublishers(ctx context.Context) {
	publishers, err := a.client.GetPublishers(ctx)
	if err != nil {
		a.logger.Error("getPublisherData", map[string]interface{}{"error": err.Error()})

		return
	}

	a.mu.Lock()
	a.publishers = publishers
	a.mu.Unlock()

	a.logger.Debug("publishers loaded", map[string]interface{}{"count": len(publishers)})
}

// SelectView switches the visible list. It never fetches.
func (a *App) SelectView(view View) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.activeView = view
}

// FilterBar returns a filter bar wired to SelectView.
func (a *App) FilterBar() FilterBar {
	return FilterBar{OnSelect: a.SelectView}
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return State{
		Books:      slices.Clone(a.books),
		Publishers: slices.Clone(a.publishers),
		ActiveView: a.activeView,
	}
}

// Render writes the current state with r.
func (a *App) Render(w io.Writer, r Renderer) error {
	return r.Render(w, a.Snapshot())
}
