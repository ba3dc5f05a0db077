package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Script is a discovered Lua script.
type Script struct {
	Name string
	// Path is the file to execute.
	Path string
	// Dir is the search directory the script was found in.
	Dir string
}

// Loader discovers scripts in its search paths.
type Loader struct {
	paths []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPaths replaces the search paths.
func WithPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.paths = paths
	}
}

// NewLoader creates a loader using DefaultPaths unless WithPaths is given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{paths: DefaultPaths()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultPaths returns the user and project script directories.
func DefaultPaths() []string {
	paths := make([]string, 0, 2)
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "commentary", "scripts"))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".commentary", "scripts"))
	}
	return paths
}

// Paths returns the search paths in order.
func (l *Loader) Paths() []string {
	return l.paths
}

// Discover lists every script in the search paths, sorted by name.
// Missing directories are skipped. Directories without init.lua are
// ignored.
func (l *Loader) Discover() ([]Script, error) {
	found := make(map[string]Script)
	for _, dir := range l.paths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read script directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			s, ok := inspect(dir, entry)
			if !ok {
				continue
			}
			if _, exists := found[s.Name]; !exists {
				found[s.Name] = s
			}
		}
	}

	scripts := make([]Script, 0, len(found))
	for _, s := range found {
		scripts = append(scripts, s)
	}
	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}

func inspect(dir string, entry os.DirEntry) (Script, bool) {
	if !entry.IsDir() {
		if filepath.Ext(entry.Name()) != ".lua" {
			return Script{}, false
		}
		return Script{
			Name: strings.TrimSuffix(entry.Name(), ".lua"),
			Path: filepath.Join(dir, entry.Name()),
			Dir:  dir,
		}, true
	}

	initPath := filepath.Join(dir, entry.Name(), "init.lua")
	if _, err := os.Stat(initPath); err != nil {
		return Script{}, false
	}
	return Script{Name: entry.Name(), Path: initPath, Dir: dir}, true
}

// Find returns the first script named name.
func (l *Loader) Find(name string) (Script, error) {
	for _, dir := range l.paths {
		file := filepath.Join(dir, name+".lua")
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return Script{Name: name, Path: file, Dir: dir}, nil
		}

		sub := filepath.Join(dir, name)
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			initPath := filepath.Join(sub, "init.lua")
			if _, err := os.Stat(initPath); err != nil {
				return Script{}, fmt.Errorf("%w: %s", ErrNoEntryPoint, sub)
			}
			return Script{Name: name, Path: initPath, Dir: dir}, nil
		}
	}
	return Script{}, fmt.Errorf("%w: %s", ErrScriptNotFound, name)
}

// Resolve returns arg itself when it names an existing file, otherwise
// the script found under that name.
func (l *Loader) Resolve(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}
	s, err := l.Find(strings.TrimSuffix(arg, ".lua"))
	if err != nil {
		return "", err
	}
	return s.Path, nil
}
