package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single catalog API request.
	DefaultHTTPTimeout = 30 * time.Second

	// ServerReadTimeout bounds reading a request on the web UI server.
	ServerReadTimeout = 5 * time.Second

	// ServerWriteTimeout bounds writing a response. A first visit mounts the
	// app, which performs two catalog requests, so it must exceed both.
	ServerWriteTimeout = 2*DefaultHTTPTimeout + 5*time.Second

	// ServerIdleTimeout is the keep-alive timeout of the web UI server.
	ServerIdleTimeout = 60 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the web UI server.
	ShutdownTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless configured.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Catalog API paths.
const (
	// BooksPath lists all books.
	BooksPath = "/books/"

	// PublishersPath lists all publishers.
	PublishersPath = "/publishers/"
)

// Web UI defaults.
const (
	// DefaultListenAddress is where the web UI listens.
	DefaultListenAddress = ":8080"

	// DefaultCoverURL is the image service a book cover is requested from.
	// The book primary key is appended as the id query parameter.
	DefaultCoverURL = "https://placeimg.com/150/200/nature"

	// DefaultSessionTTL is how long an idle browser session keeps its app state.
	DefaultSessionTTL = 30 * time.Minute

	// SessionCookieName carries the browser session id.
	SessionCookieName = "bookshelf_session"

	// RequestIDHeader carries the request id.
	RequestIDHeader = "X-Request-Id"

	// MaxFormBytes bounds the filter bar form body.
	MaxFormBytes = 1 << 10
)

// Terminal rendering.
const (
	// DefaultTerminalWidth is used when stdout is not a terminal.
	DefaultTerminalWidth = 120

	// MinDescriptionWidth is the narrowest description column in tables.
	MinDescriptionWidth = 20

	// TableChromeWidth approximates the columns a book table uses besides the description.
	TableChromeWidth = 90
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// Ellipsis marks a truncated value.
	Ellipsis = "..."
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UserAgent is sent when no user agent is configured.
const UserAgent = "bookshelf/dev"
