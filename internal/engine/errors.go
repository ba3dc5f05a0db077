package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrClosed indicates the document has been closed.
	ErrClosed = errors.New("document is closed")

	// ErrNoPath indicates a save was requested for a document without a path.
	ErrNoPath = errors.New("document has no path")

	// ErrUnknownBuffer indicates a buffer number that is not open.
	ErrUnknownBuffer = errors.New("unknown buffer")
)
