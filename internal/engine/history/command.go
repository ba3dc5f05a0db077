package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/commentary/internal/engine/buffer"
)

// ErrNotExecuted is returned when undoing a command that never ran.
var ErrNotExecuted = errors.New("command not executed")

// Command represents a composable edit action that can be executed and undone.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *buffer.Buffer) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *buffer.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// ReplaceLinesCommand replaces a line range with new lines.
type ReplaceLinesCommand struct {
	Range buffer.LineRange
	Lines []string
	Name  string

	op *Operation
}

// NewReplaceLinesCommand creates a new replace command.
func NewReplaceLinesCommand(r buffer.LineRange, lines []string) *ReplaceLinesCommand {
	return &ReplaceLinesCommand{Range: r, Lines: lines}
}

// Execute replaces the range. Re-executing after Undo replays the
// recorded operation. Deleting every line of the buffer writes one empty
// line, and that line is what Undo replaces.
func (c *ReplaceLinesCommand) Execute(buf *buffer.Buffer) error {
	if c.op != nil {
		return c.op.Apply(buf)
	}
	lines := c.Lines
	if len(lines) == 0 && c.Range.Start == 1 && c.Range.Len() == buf.LineCount() {
		lines = []string{""}
	}
	old, err := buf.ReplaceLines(c.Range, lines)
	if err != nil {
		return fmt.Errorf("replace lines %s: %w", c.Range, err)
	}
	c.op = NewOperation(c.Range.Start, old, lines)
	return nil
}

// Undo restores the replaced lines.
func (c *ReplaceLinesCommand) Undo(buf *buffer.Buffer) error {
	if c.op == nil {
		return ErrNotExecuted
	}
	return c.op.Revert(buf)
}

// Description returns a human-readable description.
func (c *ReplaceLinesCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Replace lines %d-%d", c.Range.Start, c.Range.End)
}

// LinesDelta returns the change in line count, or 0 before execution.
func (c *ReplaceLinesCommand) LinesDelta() int {
	if c.op == nil {
		return 0
	}
	return c.op.LinesDelta()
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	ID       uuid.UUID
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command with a fresh ID.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		ID:       uuid.New(),
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(buf *buffer.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// LinesDelta returns the total change in line count.
func (c *CompoundCommand) LinesDelta() int {
	total := 0
	for _, cmd := range c.Commands {
		total += linesDelta(cmd)
	}
	return total
}

func linesDelta(cmd Command) int {
	if d, ok := cmd.(interface{ LinesDelta() int }); ok {
		return d.LinesDelta()
	}
	return 0
}
