// Package plugin finds Lua scripts by name.
//
// Scripts live in search directories, checked in order:
//
//	<user config dir>/commentary/scripts/
//	./.commentary/scripts/
//
// A script is either NAME.lua or a directory NAME containing init.lua.
// The first directory holding a name wins. Scripts run through
// internal/plugin/lua.
package plugin
