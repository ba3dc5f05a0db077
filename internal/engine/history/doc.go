// Package history provides undo/redo and atomic edit grouping for documents.
//
// Edits are Commands that can be executed, undone, and redone against a
// line buffer. The History type manages the undo/redo stacks:
//
//	h := NewHistory(1000) // Max 1000 undo entries
//	h.Execute(NewReplaceLinesCommand(buffer.NewLineRange(1, 3), lines), buf)
//	h.Undo(buf)
//	h.Redo(buf)
//
// # Grouping
//
// Commands pushed between BeginGroup and EndGroup collapse into a single
// CompoundCommand, so a multi-line toggle undoes in one step.
//
// Grouper layers a reentrant depth counter over any GroupHost. Only the
// outermost Start begins a host group and only the matching outermost End
// closes it, so nested callers join the enclosing group:
//
//	g := NewGrouper(h)
//	err := g.Do("Toggle Comment", func() error {
//	    return h.Execute(cmd, buf)
//	})
package history
