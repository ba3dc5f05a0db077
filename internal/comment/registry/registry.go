// Package registry maps language identifiers to their comment syntax.
//
// A Registry is built once and is read-only afterward. Derived registries
// (for example with user filetype globs added) are new values; the
// original is never mutated.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dshills/commentary/internal/comment/style"
)

// Definition is a registry entry.
type Definition struct {
	// Name is the canonical language key, e.g. "javascriptreact".
	Name string

	// Style is the language's comment syntax.
	Style style.CommentStyle

	// Aliases are extra keys that resolve to this entry, e.g. "jsx".
	Aliases []string

	// Patterns are doublestar globs used for filetype detection.
	Patterns []string

	// Markup is the comment form used inside embedded markup, if any.
	Markup *style.CommentStyle
}

type pattern struct {
	glob string
	lang string
}

// Registry is an immutable language table.
type Registry struct {
	defs     map[string]*Definition
	aliases  map[string]string
	patterns []pattern
}

// New builds a registry from definitions. Later definitions replace
// earlier ones with the same name.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{
		defs:    make(map[string]*Definition, len(defs)),
		aliases: make(map[string]string),
	}
	for i := range defs {
		if err := r.add(defs[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("registry: definition without name")
	}
	d := def
	d.Aliases = append([]string(nil), def.Aliases...)
	d.Patterns = append([]string(nil), def.Patterns...)
	r.defs[d.Name] = &d
	for _, a := range d.Aliases {
		if a == d.Name {
			continue
		}
		r.aliases[a] = d.Name
	}
	for _, p := range d.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("registry: %s: invalid pattern %q", d.Name, p)
		}
		r.patterns = append(r.patterns, pattern{glob: p, lang: d.Name})
	}
	return nil
}

// canonical follows alias links until a defined name is reached.
// Alias chains are not bounded, but cycles terminate.
func (r *Registry) canonical(key string) (string, bool) {
	seen := make(map[string]bool)
	for {
		if _, ok := r.defs[key]; ok {
			return key, true
		}
		next, ok := r.aliases[key]
		if !ok || seen[key] {
			return "", false
		}
		seen[key] = true
		key = next
	}
}

// Lookup returns the comment style for a language key or alias.
// Unknown keys return false; this is not an error.
func (r *Registry) Lookup(key string) (style.CommentStyle, bool) {
	def, ok := r.Definition(key)
	if !ok {
		return style.CommentStyle{}, false
	}
	return def.Style, true
}

// Definition returns a copy of the entry for a key or alias.
func (r *Registry) Definition(key string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	name, ok := r.canonical(strings.ToLower(key))
	if !ok {
		return Definition{}, false
	}
	return *r.defs[name], true
}

// Canonical returns the canonical name for a key or alias.
func (r *Registry) Canonical(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.canonical(strings.ToLower(key))
}

// Markup returns the markup comment form for a language. Languages without
// an explicit markup form fall back to the JSX expression comment.
func (r *Registry) Markup(key string) style.CommentStyle {
	if def, ok := r.Definition(key); ok && def.Markup != nil {
		m := *def.Markup
		m.Markup = true
		return m
	}
	return style.CommentStyle{Block: jsxMarkup, Markup: true}
}

// Detect returns the language for a file path using the registered globs.
// Patterns without a slash match the base name; others match the
// slash-separated path. The first registered matching pattern wins.
func (r *Registry) Detect(path string) (string, bool) {
	if r == nil || path == "" {
		return "", false
	}
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, p := range r.patterns {
		target := base
		if strings.Contains(p.glob, "/") {
			target = slashed
		}
		if ok, _ := doublestar.Match(p.glob, target); ok {
			return p.lang, true
		}
	}
	return "", false
}

// WithPatterns returns a new registry whose detection globs are prefixed
// with the given glob -> language mappings. Unknown languages are allowed
// so templates and overrides can still serve them.
func (r *Registry) WithPatterns(globs map[string]string) (*Registry, error) {
	out := &Registry{
		defs:    r.defs,
		aliases: r.aliases,
	}
	keys := make([]string, 0, len(globs))
	for g := range globs {
		keys = append(keys, g)
	}
	sort.Strings(keys)
	for _, g := range keys {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("registry: invalid filetype pattern %q", g)
		}
		out.patterns = append(out.patterns, pattern{glob: g, lang: globs[g]})
	}
	out.patterns = append(out.patterns, r.patterns...)
	return out, nil
}

// Languages returns the sorted canonical language names.
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the built-in registry. It is initialized on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(builtin()...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
