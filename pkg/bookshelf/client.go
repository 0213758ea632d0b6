package bookshelf

import (
	"context"
	"time"
)

// CatalogClient fetches the catalog lists.
type CatalogClient interface {
	GetBooks(ctx context.Context) ([]Book, error)
	GetPublishers(ctx context.Context) ([]Publisher, error)
}

type Client interface {
	CatalogClient

	// BaseURL returns the normalized API base URL the client talks to.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a bookshelf.Client.
//
// Requests are never retried unless RetryMax is positive. Per-request
// deadlines should be controlled via the context passed to client methods;
// HTTPTimeout only bounds a single attempt.
type Config struct {
	// APIEndpoint: base URL of the catalog API (e.g., "https://books.example.com/api").
	// bookclient.New trims a trailing slash and adds "https://" when no scheme is given.
	APIEndpoint string

	// HTTPTimeout: timeout of a single HTTP attempt. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax: number of retries on 5xx and connection errors. Zero disables retries.
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// UserAgent: optional User-Agent header value.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
