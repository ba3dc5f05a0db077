package history

import (
	"slices"
	"time"

	"github.com/dshills/commentary/internal/engine/buffer"
)

// Operation represents a single undoable line replacement.
type Operation struct {
	Start    int      // First replaced line (1-indexed)
	OldLines []string // Lines that were replaced (for undo)
	NewLines []string // Lines that were written (for redo)

	Timestamp time.Time
}

// NewOperation creates a new operation.
func NewOperation(start int, oldLines, newLines []string) *Operation {
	return &Operation{
		Start:     start,
		OldLines:  oldLines,
		NewLines:  newLines,
		Timestamp: time.Now(),
	}
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return slices.Equal(op.OldLines, op.NewLines)
}

// LinesDelta returns the change in line count.
func (op *Operation) LinesDelta() int {
	return len(op.NewLines) - len(op.OldLines)
}

// Apply writes NewLines over the OldLines span.
func (op *Operation) Apply(buf *buffer.Buffer) error {
	_, err := buf.Splice(op.Start, len(op.OldLines), op.NewLines)
	return err
}

// Revert restores OldLines over the NewLines span.
func (op *Operation) Revert(buf *buffer.Buffer) error {
	_, err := buf.Splice(op.Start, len(op.NewLines), op.OldLines)
	return err
}

// OperationInfo provides read-only info about a history entry.
type OperationInfo struct {
	Description string
	GroupID     string // Empty for ungrouped entries
	Timestamp   time.Time
	LinesDelta  int
}
