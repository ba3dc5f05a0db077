// Package buffer provides a line-oriented, thread-safe text buffer.
//
// Lines are addressed with 1-indexed, inclusive line ranges, the same
// coordinates the comment engine and the plugin API use:
//
//	buf := buffer.NewBufferFromString("a\nb\nc")
//	lines, _ := buf.Lines(buffer.LineRange{Start: 1, End: 2}) // ["a", "b"]
//	old, _ := buf.ReplaceLines(buffer.LineRange{Start: 2, End: 2}, []string{"// b"})
//
// Line endings are normalized on load and restored by Text.
// Every mutation assigns a fresh revision ID.
package buffer
