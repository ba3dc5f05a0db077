package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/commentary/internal/engine/buffer"
)

// Errors returned by Undo and Redo.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

const defaultMaxEntries = 1000

// entry is one undo step.
type entry struct {
	cmd Command
	at  time.Time
}

func (e entry) info() OperationInfo {
	info := OperationInfo{
		Description: e.cmd.Description(),
		Timestamp:   e.at,
		LinesDelta:  linesDelta(e.cmd),
	}
	if c, ok := e.cmd.(*CompoundCommand); ok {
		info.GroupID = c.ID.String()
	}
	return info
}

// pending collects commands between BeginGroup and EndGroup.
type pending struct {
	name string
	cmds []Command
}

// History is a bounded undo/redo stack for one buffer.
type History struct {
	mu    sync.Mutex
	undo  []entry
	redo  []entry
	group *pending
	max   int
}

// NewHistory creates a history keeping at most maxEntries undo steps.
// A non-positive value uses the default of 1000.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &History{max: maxEntries}
}

// Execute runs cmd against buf and records it.
func (h *History) Execute(cmd Command, buf *buffer.Buffer) error {
	if err := cmd.Execute(buf); err != nil {
		return err
	}
	h.Push(cmd)
	return nil
}

// Push records an already executed command. Inside a group the command
// joins the group; otherwise it becomes an undo step and clears redo.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.group != nil {
		h.group.cmds = append(h.group.cmds, cmd)
		return
	}
	h.record(cmd)
}

func (h *History) record(cmd Command) {
	h.undo = append(h.undo, entry{cmd: cmd, at: time.Now()})
	h.redo = nil
	if over := len(h.undo) - h.max; over > 0 {
		h.undo = h.undo[over:]
	}
}

// Undo reverts the most recent step.
func (h *History) Undo(buf *buffer.Buffer) error {
	return h.move(&h.undo, &h.redo, ErrNothingToUndo, func(c Command) error {
		return c.Undo(buf)
	})
}

// Redo reapplies the most recently undone step.
func (h *History) Redo(buf *buffer.Buffer) error {
	return h.move(&h.redo, &h.undo, ErrNothingToRedo, func(c Command) error {
		return c.Execute(buf)
	})
}

// move pops the top of from, applies it without holding the lock, and
// pushes it onto to. On failure the entry goes back onto from.
func (h *History) move(from, to *[]entry, empty error, apply func(Command) error) error {
	h.mu.Lock()
	n := len(*from)
	if n == 0 {
		h.mu.Unlock()
		return empty
	}
	e := (*from)[n-1]
	*from = (*from)[:n-1]
	h.mu.Unlock()

	err := apply(e.cmd)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		*from = append(*from, e)
		return err
	}
	*to = append(*to, e)
	return nil
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return h.UndoCount() > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return h.RedoCount() > 0 }

// UndoCount returns the number of undo steps.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

// RedoCount returns the number of redo steps.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

// BeginGroup starts collecting commands into one undo step. A call while a
// group is open is ignored; Grouper handles nesting.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.group == nil {
		h.group = &pending{name: name}
	}
}

// EndGroup closes the open group. A group with commands is recorded as a
// single CompoundCommand; an empty group records nothing.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	g := h.group
	h.group = nil
	if g == nil || len(g.cmds) == 0 {
		return
	}
	h.record(NewCompoundCommand(g.name, g.cmds...))
}

// IsGrouping reports whether a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.group != nil
}

// PeekUndo describes the next undo step.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return OperationInfo{}, false
	}
	return h.undo[len(h.undo)-1].info(), true
}

// MaxEntries returns the undo step limit.
func (h *History) MaxEntries() int {
	return h.max
}
