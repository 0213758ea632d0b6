package bookclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/bookshelf/internal/client"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// New creates a catalog API client.
func New(config *bookshelf.Config) (bookshelf.Client, error) {
	if config == nil {
		return nil, bookshelf.ErrConfigRequired
	}

	endpoint, err := NormalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.APIEndpoint = endpoint

	cli, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithEndpoint creates a client with default settings.
func NewWithEndpoint(endpoint string) (bookshelf.Client, error) {
	return New(&bookshelf.Config{APIEndpoint: endpoint})
}

// NormalizeEndpoint trims surrounding whitespace and a trailing slash and
// defaults the scheme to https.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", bookshelf.ErrAPIEndpointRequired
	}

	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing API endpoint: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("API endpoint %q: %w", endpoint, bookshelf.ErrNoHostInURL)
	}

	return endpoint, nil
}
