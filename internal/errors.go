package internal

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound reports that an explicit or default template path
// does not resolve to an existing file. The sync run cannot proceed
// without a template, so callers treat it as fatal.
var ErrTemplateNotFound = errors.New("template file not found")

// APIError represents a non-success response from the platform API.
// Message carries the server-supplied error text when the response body
// contained one, otherwise a generic "HTTP status N" string.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// ConfigError represents an unreadable or invalid configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
