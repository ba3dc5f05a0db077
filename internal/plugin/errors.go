package plugin

import "errors"

// Errors returned by script discovery.
var (
	// ErrScriptNotFound indicates no search directory holds the script.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNoEntryPoint indicates a script directory without init.lua.
	ErrNoEntryPoint = errors.New("script directory has no init.lua")
)
