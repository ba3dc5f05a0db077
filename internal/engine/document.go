package engine

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/engine/buffer"
	"github.com/dshills/commentary/internal/engine/history"
	"github.com/dshills/commentary/internal/log"
	"github.com/dshills/commentary/internal/syntax"
)

// Document is an open text document.
type Document struct {
	mu sync.RWMutex

	buf      *buffer.Buffer
	history  *history.History
	grouper  *history.Grouper
	registry *registry.Registry
	logger   *slog.Logger

	path     string
	language string
	template string
	closed   bool

	lineEnding     *buffer.LineEnding
	maxUndoEntries int
}

// NewDocument creates a document with initial content.
func NewDocument(content string, opts ...Option) *Document {
	d := &Document{
		registry:       registry.Default(),
		logger:         log.Discard(),
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(d)
	}

	ending := buffer.DetectLineEnding(content)
	if d.lineEnding != nil {
		ending = *d.lineEnding
	}
	d.buf = buffer.NewBufferFromString(content, buffer.WithLineEnding(ending))
	d.history = history.NewHistory(d.maxUndoEntries)
	d.grouper = history.NewGrouper(d.history, history.WithLogger(d.logger))

	if d.language == "" && d.path != "" {
		if lang, ok := d.registry.Detect(d.path); ok {
			d.language = lang
		}
	}
	return d
}

// LoadDocument reads a document from path.
func LoadDocument(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return NewDocument(string(data), append([]Option{WithPath(path)}, opts...)...), nil
}

// IsValid reports whether the document is still open.
func (d *Document) IsValid() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.closed
}

// Close invalidates the document.
func (d *Document) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.buf.LineCount()
}

// ReadLines returns a copy of lines start..end (1-indexed, inclusive).
func (d *Document) ReadLines(start, end int) ([]string, error) {
	if !d.IsValid() {
		return nil, ErrClosed
	}
	return d.buf.Lines(buffer.NewLineRange(start, end))
}

// WriteLines replaces lines start..end with lines and records the edit in
// history.
func (d *Document) WriteLines(start, end int, lines []string) error {
	if !d.IsValid() {
		return ErrClosed
	}
	cmd := history.NewReplaceLinesCommand(buffer.NewLineRange(start, end), lines)
	return d.history.Execute(cmd, d.buf)
}

// Group runs fn as one undoable edit. Nested groups join the outer one.
func (d *Document) Group(name string, fn func() error) error {
	return d.grouper.Do(name, fn)
}

// Language returns the language key.
func (d *Document) Language() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.language
}

// SetLanguage changes the language key.
func (d *Document) SetLanguage(lang string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.language = lang
}

// CommentTemplate returns the comment template.
func (d *Document) CommentTemplate() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.template
}

// SetCommentTemplate changes the comment template.
func (d *Document) SetCommentTemplate(tmpl string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.template = tmpl
}

// SyntaxContext returns a syntax context for the current content, or nil
// when the language has no region grammar.
func (d *Document) SyntaxContext() resolve.SyntaxContext {
	lang := d.Language()
	if !syntax.Supports(d.registry, lang) {
		return nil
	}
	return syntax.New(d.registry, lang, d.buf.AllLines())
}

// Path returns the file path, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Text returns the full content.
func (d *Document) Text() string {
	return d.buf.Text()
}

// Lines returns a copy of every line.
func (d *Document) Lines() []string {
	return d.buf.AllLines()
}

// Save writes the content back to the document's path.
func (d *Document) Save() error {
	path := d.Path()
	if path == "" {
		return ErrNoPath
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(d.buf.Text()), mode); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.logger.Debug("saved document", "path", path)
	return nil
}

// Undo reverts the last edit group.
func (d *Document) Undo() error {
	return d.history.Undo(d.buf)
}

// Redo reapplies the last undone edit group.
func (d *Document) Redo() error {
	return d.history.Redo(d.buf)
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// History returns the document's undo history.
func (d *Document) History() *history.History {
	return d.history
}

// Grouper returns the document's edit grouper.
func (d *Document) Grouper() *history.Grouper {
	return d.grouper
}

// RevisionID returns the buffer's current revision.
func (d *Document) RevisionID() buffer.RevisionID {
	return d.buf.RevisionID()
}
