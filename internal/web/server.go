// Package web serves the bookshelf UI over HTTP. Every browser session gets
// its own app container, mounted on the first page view.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/internal/logging"
	"github.com/fivetwenty-io/bookshelf/internal/ui"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// Config holds the web UI settings.
type Config struct {
	ListenAddress string
	CoverURL      string
	SessionTTL    time.Duration
}

// Server is the web UI.
type Server struct {
	config   Config
	client   bookshelf.Client
	logger   bookshelf.Logger
	renderer *ui.HTMLRenderer
	sessions *SessionStore
	handler  http.Handler
}

// NewServer wires the routes and middleware.
func NewServer(client bookshelf.Client, logger bookshelf.Logger, config Config) (*Server, error) {
	if logger == nil {
		logger = logging.Nop{}
	}

	if config.ListenAddress == "" {
		config.ListenAddress = constants.DefaultListenAddress
	}

	if config.SessionTTL == 0 {
		config.SessionTTL = constants.DefaultSessionTTL
	}

	renderer, err := ui.NewHTMLRenderer(ui.HTMLOptions{
		BaseAPIURL: client.BaseURL(),
		CoverURL:   config.CoverURL,
		ViewAction: "/view",
	})
	if err != nil {
		return nil, err
	}

	server := &Server{
		config:   config,
		client:   client,
		logger:   logger,
		renderer: renderer,
	}
	server.sessions = NewSessionStore(config.SessionTTL, func() *ui.App {
		return ui.NewApp(client, logger)
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("POST /view", server.handleSelectView)
	mux.HandleFunc("GET /healthz", handleHealthz)

	var handler http.Handler = mux
	handler = SecurityHeadersMiddleware(handler)
	handler = RecoveryMiddleware(logger)(handler)
	handler = AccessLogMiddleware(logger)(handler)
	handler = RequestIDMiddleware(handler)

	server.handler = handler

	return server, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Sessions returns the session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.handler,
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
		IdleTimeout:  constants.ServerIdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting web UI", map[string]interface{}{
			"listen": s.config.ListenAddress,
			"api":    s.client.BaseURL(),
		})

		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving web UI: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down web UI", nil)

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down web UI: %w", err)
	}

	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	app := s.acquire(w, r)

	// The session outlives this request, so a client disconnect must not
	// cancel the fetches that populate it.
	app.Mount(context.WithoutCancel(r.Context()))

	var buf bytes.Buffer

	err := app.Render(&buf, s.renderer)
	if err != nil {
		s.logger.Error("rendering app", map[string]interface{}{
			"request_id": RequestIDFrom(r),
			"error":      err.Error(),
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleSelectView(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxFormBytes)

	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)

		return
	}

	app := s.acquire(w, r)

	err = app.FilterBar().Activate(r.PostFormValue("view"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// acquire resolves the session from the cookie, starting one if needed.
func (s *Server) acquire(w http.ResponseWriter, r *http.Request) *ui.App {
	var cookieID string
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		cookieID = cookie.Value
	}

	app, sessionID, created := s.sessions.Acquire(cookieID)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return app
}
