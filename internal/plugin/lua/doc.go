// Package lua runs Lua scripts against the comment engine.
//
// A State is a restricted gopher-lua runtime: no io, os or debug
// libraries, no loading of code from disk, and print writes to a
// configurable writer. Modules register Go functions into it; the
// CommentModule exposes the toggle engine as the global table "comment",
// also available through require("comment").
//
//	state := lua.NewState(lua.WithTimeout(5 * time.Second))
//	defer state.Close()
//
//	if err := state.Register(lua.NewCommentModule(eng, ws, 1)); err != nil {
//	    return err
//	}
//	err := state.DoString(ctx, `
//	    local ok, msg = comment.toggle(0, 1, 3)
//	    print(ok, msg)
//	`)
//
// Functions in the comment module return false plus a message for
// recoverable failures (invalid buffer, blank range, no style). Invalid
// arguments, such as conflicting force flags or an unknown style type,
// raise a Lua error.
package lua
