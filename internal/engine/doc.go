// Package engine hosts the documents the comment engine edits.
//
// A Document combines a line buffer, undo history, and an edit grouper
// with the language and comment template the resolver needs. It
// implements toggle.Buffer, so every toggle lands in history as one
// undo step:
//
//	ws := engine.NewWorkspace()
//	n := ws.Open(engine.NewDocument("a := 1\nb := 2", engine.WithLanguage("go")))
//	e := toggle.New(ws)
//	e.ToggleRange(n, 1, 2, toggle.Options{})
//	doc, _ := ws.Get(n)
//	doc.Undo()
//
// # Thread Safety
//
// Document and Workspace methods are safe for concurrent use. Edits are
// expected to be serialized by the caller, one user action at a time.
package engine
