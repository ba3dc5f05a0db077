package toggle

import "github.com/dshills/commentary/internal/comment/resolve"

// Buffer is the host buffer contract. Line numbers are 1-indexed and
// ranges are inclusive.
type Buffer interface {
	IsValid() bool
	LineCount() int
	ReadLines(start, end int) ([]string, error)

	// WriteLines replaces lines start..end with lines, which may differ
	// in length.
	WriteLines(start, end int, lines []string) error

	// Language returns the buffer's language key.
	Language() string

	// CommentTemplate returns a single-placeholder comment template such
	// as "# %s", or "" when the host has none.
	CommentTemplate() string

	// Group runs fn as one undoable edit.
	Group(name string, fn func() error) error
}

// SyntaxSource is implemented by buffers that can describe their syntax.
// A nil SyntaxContext means syntax analysis is unavailable.
type SyntaxSource interface {
	SyntaxContext() resolve.SyntaxContext
}

// Host resolves buffer handles.
type Host interface {
	Buffer(bufnr int) (Buffer, bool)
}

// HostFunc adapts a function to Host.
type HostFunc func(bufnr int) (Buffer, bool)

// Buffer calls f.
func (f HostFunc) Buffer(bufnr int) (Buffer, bool) {
	return f(bufnr)
}
