package bookshelf

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// APIError represents a non-2xx response from the catalog API.
type APIError struct {
	StatusCode int    `json:"-"      yaml:"status_code"`
	Detail     string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("catalog API returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("catalog API returned %d: %s", e.StatusCode, e.Detail)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by an *APIError in err's chain,
// or 0 when there is none.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// maxDetailLength bounds the raw body excerpt kept on an APIError.
const maxDetailLength = 256

// ParseAPIError builds an APIError from a response status and body. Bodies in
// the {"detail": "..."} shape contribute their detail; anything else is kept
// as a truncated excerpt.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, apiErr)
	if err == nil && apiErr.Detail != "" {
		return apiErr
	}

	detail := string(body)
	if len(detail) > maxDetailLength {
		detail = detail[:maxDetailLength] + "..."
	}

	apiErr.Detail = detail

	return apiErr
}
