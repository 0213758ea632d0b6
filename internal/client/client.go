package client

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/internal/http"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client implements the bookshelf.Client interface.
type Client struct {
	httpClient *http.Client
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bookshelf.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a catalog client from config. The endpoint is used verbatim;
// normalization happens in bookclient.New.
func New(config *bookshelf.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, createHTTPClientOptions(config)...)

	return &Client{httpClient: httpClient}, nil
}

// BaseURL implements bookshelf.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// GetBooks implements bookshelf.CatalogClient.GetBooks.
func (c *Client) GetBooks(ctx context.Context) ([]bookshelf.Book, error) {
	resp, err := c.httpClient.Get(ctx, constants.BooksPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting books: %w", err)
	}

	var books []bookshelf.Book

	err = json.Unmarshal(resp.Body, &books)
	if err != nil {
		return nil, fmt.Errorf("parsing books response: %w", err)
	}

	return books, nil
}

// GetPublishers implements bookshelf.CatalogClient.GetPublishers.
func (c *Client) GetPublishers(ctx context.Context) ([]bookshelf.Publisher, error) {
	resp, err := c.httpClient.Get(ctx, constants.PublishersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting publishers: %w", err)
	}

	var publishers []bookshelf.Publisher

	err = json.Unmarshal(resp.Body, &publishers)
	if err != nil {
		return nil, fmt.Errorf("parsing publishers response: %w", err)
	}

	return publishers, nil
}

var _ bookshelf.Client = (*Client)(nil)
