package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// RevisionID identifies a buffer revision.
type RevisionID uint64

var revisionCounter atomic.Uint64

// NewRevisionID returns a process-unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(revisionCounter.Add(1))
}

// Buffer holds text as a slice of lines without terminators.
// A new empty buffer has a single empty line, as editors present it.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	lineEnding LineEnding
	revisionID RevisionID
	// trailingNewline records whether the loaded text ended with a line
	// terminator, so Text reproduces it.
	trailingNewline bool
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
		revisionID: NewRevisionID(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.load(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

func (b *Buffer) load(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.trailingNewline = strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	b.lines = strings.Split(s, "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns line n (1-indexed).
func (b *Buffer) Line(n int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n < 1 || n > len(b.lines) {
		return "", fmt.Errorf("line %d of %d: %w", n, len(b.lines), ErrLineOutOfRange)
	}
	return b.lines[n-1], nil
}

// Lines returns a copy of the lines in r.
func (b *Buffer) Lines(r LineRange) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkLocked(r); err != nil {
		return nil, err
	}
	out := make([]string, r.Len())
	copy(out, b.lines[r.Start-1:r.End])
	return out, nil
}

// AllLines returns a copy of every line.
func (b *Buffer) AllLines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// ReplaceLines replaces the lines in r with lines, which may have a
// different length. It returns the replaced lines.
func (b *Buffer) ReplaceLines(r LineRange, lines []string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkLocked(r); err != nil {
		return nil, err
	}
	return b.spliceLocked(r.Start, r.Len(), lines), nil
}

// Splice removes count lines starting at line start and inserts lines in
// their place. A count of zero inserts before start; start may be
// LineCount()+1 to append. It returns the removed lines. A splice that
// would leave no lines leaves a single empty line.
func (b *Buffer) Splice(start, count int, lines []string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if count < 0 || start < 1 || start-1+count > len(b.lines) {
		return nil, fmt.Errorf("splice %d+%d of %d lines: %w", start, count, len(b.lines), ErrLineOutOfRange)
	}
	return b.spliceLocked(start, count, lines), nil
}

func (b *Buffer) spliceLocked(start, count int, lines []string) []string {
	old := make([]string, count)
	copy(old, b.lines[start-1:start-1+count])

	next := make([]string, 0, len(b.lines)-count+len(lines))
	next = append(next, b.lines[:start-1]...)
	next = append(next, lines...)
	next = append(next, b.lines[start-1+count:]...)
	if len(next) == 0 {
		next = []string{""}
	}
	b.lines = next
	b.revisionID = NewRevisionID()
	return old
}

func (b *Buffer) checkLocked(r LineRange) error {
	if !r.IsValid() {
		return fmt.Errorf("%s: %w", r, ErrRangeInvalid)
	}
	if r.End > len(b.lines) {
		return fmt.Errorf("%s of %d lines: %w", r, len(b.lines), ErrLineOutOfRange)
	}
	return nil
}

// Text returns the full content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seq := b.lineEnding.Sequence()
	text := strings.Join(b.lines, seq)
	if b.trailingNewline {
		text += seq
	}
	return text
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}
