// Package resolve determines the effective comment style for a buffer
// position.
//
// Resolution runs a fallback chain, each stage tried only when the
// previous produced nothing:
//
//  1. the host syntax context at the position (embedded languages, markup)
//  2. the language registry
//  3. the buffer's comment template ("# %s", "/*%s*/")
//
// User overrides for the language are then merged onto the result.
package resolve

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/comment/style"
	"github.com/dshills/commentary/internal/log"
)

// Position is a buffer position: 1-indexed line, 0-indexed byte column.
type Position struct {
	Line int
	Col  int
}

// SyntaxContext is the optional host capability describing the syntax at
// a position. A nil SyntaxContext is normal and means syntax analysis is
// unavailable.
type SyntaxContext interface {
	// StyleAt returns the comment style at pos, if the host knows one.
	StyleAt(pos Position) (style.CommentStyle, bool)

	// IsMarkupContext reports whether pos is inside embedded markup.
	IsMarkupContext(pos Position) bool
}

// Source identifies the stage that produced a style.
type Source uint8

const (
	SourceNone Source = iota
	SourceSyntax
	SourceRegistry
	SourceTemplate
)

// String returns the stage name.
func (s Source) String() string {
	switch s {
	case SourceSyntax:
		return "syntax"
	case SourceRegistry:
		return "registry"
	case SourceTemplate:
		return "template"
	default:
		return "none"
	}
}

// Request describes what to resolve.
type Request struct {
	Language string
	Position Position
	Syntax   SyntaxContext
	Template string
}

// Resolution is a resolved style and where it came from.
type Resolution struct {
	Style      style.CommentStyle
	Source     Source
	Overridden bool
}

// Resolver runs the fallback chain against a registry and an override
// table. The override table may be swapped at runtime (config reload).
type Resolver struct {
	mu        sync.RWMutex
	registry  *registry.Registry
	overrides style.Overrides
	pending   style.Overrides
	logger    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOverrides sets the initial override table.
func WithOverrides(o style.Overrides) Option {
	return func(r *Resolver) {
		r.pending = o
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver over reg. A nil reg uses registry.Default().
func New(reg *registry.Registry, opts ...Option) *Resolver {
	if reg == nil {
		reg = registry.Default()
	}
	r := &Resolver{
		registry: reg,
		logger:   log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.overrides = r.canonicalize(r.pending)
	r.pending = nil
	return r
}

// Registry returns the registry the resolver consults.
func (r *Resolver) Registry() *registry.Registry {
	return r.registry
}

// SetOverrides replaces the override table. Keys naming a registry
// language or alias are stored under the canonical name.
func (r *Resolver) SetOverrides(o style.Overrides) {
	table := r.canonicalize(o)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = table
}

// canonicalize rekeys o by canonical language name. Alias entries are
// merged in key order, and an entry keyed by the canonical name itself
// is applied on top. Unknown keys are kept as given.
func (r *Resolver) canonicalize(o style.Overrides) style.Overrides {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(style.Overrides, len(o))
	var exact []string
	for _, k := range keys {
		name, ok := r.registry.Canonical(k)
		if !ok {
			out[k] = o[k]
			continue
		}
		if name == k {
			exact = append(exact, k)
			continue
		}
		out[name] = out[name].Merge(o[k])
	}
	for _, k := range exact {
		out[k] = out[k].Merge(o[k])
	}
	return out
}

// Overrides returns a copy of the current override table, keyed by
// canonical name where the registry knows the language.
func (r *Resolver) Overrides() style.Overrides {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overrides.Clone()
}

// Resolve runs the fallback chain. It reports false only when no stage
// produced a style; callers treat that as "no comment syntax here".
func (r *Resolver) Resolve(req Request) (Resolution, bool) {
	res, ok := r.base(req)
	if !ok {
		r.logger.Debug("no comment style", "language", req.Language, "line", req.Position.Line)
		return Resolution{}, false
	}

	if o, found := r.override(req.Language); found {
		res.Style = o.Apply(res.Style)
		res.Overridden = true
	}
	return res, true
}

// Style is Resolve without provenance.
func (r *Resolver) Style(req Request) (style.CommentStyle, bool) {
	res, ok := r.Resolve(req)
	return res.Style, ok
}

func (r *Resolver) base(req Request) (Resolution, bool) {
	if req.Syntax != nil {
		s, ok := req.Syntax.StyleAt(req.Position)
		markup := req.Syntax.IsMarkupContext(req.Position)
		if ok && (s.Markup || markup) {
			return Resolution{Style: r.registry.Markup(req.Language), Source: SourceSyntax}, true
		}
		if ok && !s.Empty() {
			return Resolution{Style: s, Source: SourceSyntax}, true
		}
		if markup {
			return Resolution{Style: r.registry.Markup(req.Language), Source: SourceSyntax}, true
		}
		r.logger.Debug("syntax context has no style, falling back", "language", req.Language)
	}

	if s, ok := r.registry.Lookup(req.Language); ok {
		return Resolution{Style: s, Source: SourceRegistry}, true
	}

	if s, ok := ParseTemplate(req.Template); ok {
		return Resolution{Style: s, Source: SourceTemplate}, true
	}
	return Resolution{}, false
}

// override finds the override for a language by its canonical name, or
// by the key itself when the registry does not know it.
func (r *Resolver) override(lang string) (style.Override, bool) {
	if lang == "" {
		return style.Override{}, false
	}
	if name, ok := r.registry.Canonical(lang); ok {
		lang = name
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overrides.Lookup(lang)
}
