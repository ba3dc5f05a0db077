// Package config loads commentary's settings and per-language comment
// overrides from TOML or YAML files.
//
// Files are parsed into generic maps and merged in layer order (built-in
// defaults, then the user file, then the project file), so a later layer
// only replaces the fields it sets:
//
//	[comment]
//	default_style = "line"  # line | block
//	padding = true
//
//	[languages.lua]
//	line = "--"
//	block = ["--[[", "]]"]
//	nesting = false
//
//	[filetypes]
//	"**/*.tmpl" = "gotmpl"
//
// A Watcher reloads the files on change and notifies subscribers, which
// typically swap the resolver's override table.
package config
