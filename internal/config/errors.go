package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher is closed")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError describes a setting that was present but invalid. Invalid
// fields are dropped; the rest of the configuration still applies.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
