package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured     = errors.New("no API endpoint configured, set --api or BOOKSHELF_API")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// View errors.
var (
	ErrUnknownView = errors.New("unknown view")
)
