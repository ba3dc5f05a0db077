package engine

import (
	"log/slog"

	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/engine/buffer"
)

// DefaultMaxUndoEntries is the default history depth.
const DefaultMaxUndoEntries = 1000

// Option configures a Document during creation.
type Option func(*Document)

// WithPath sets the file the document was loaded from. When no language
// is given, it is detected from the path.
func WithPath(path string) Option {
	return func(d *Document) {
		d.path = path
	}
}

// WithLanguage sets the document's language key.
func WithLanguage(lang string) Option {
	return func(d *Document) {
		d.language = lang
	}
}

// WithCommentTemplate sets the document's comment template, e.g. "# %s".
func WithCommentTemplate(tmpl string) Option {
	return func(d *Document) {
		d.template = tmpl
	}
}

// WithRegistry sets the registry used for detection and syntax context.
func WithRegistry(reg *registry.Registry) Option {
	return func(d *Document) {
		if reg != nil {
			d.registry = reg
		}
	}
}

// WithLineEnding sets the line ending used by Text.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(d *Document) {
		d.lineEnding = &ending
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithLogger sets the document logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}
