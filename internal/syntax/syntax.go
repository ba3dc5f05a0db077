// Package syntax is a lightweight syntax-context provider for the comment
// resolver. It recognizes embedded-language regions (script and style
// blocks in markup files, fenced code in markdown) and JSX element bodies
// with line-level regex and state tracking, in the manner of a simple
// highlighter rather than a full parser.
package syntax

import (
	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
)

// lineState is the context at the start of a line.
type lineState struct {
	language string // embedded language, empty for the host
	markup   bool
}

// Provider answers style queries for one snapshot of a document.
// It implements resolve.SyntaxContext.
type Provider struct {
	registry *registry.Registry
	language string
	states   []lineState
}

var defaultRules = DefaultRules()

// Supports reports whether language has a region grammar.
func Supports(reg *registry.Registry, language string) bool {
	_, ok := rulesFor(reg, language)
	return ok
}

func rulesFor(reg *registry.Registry, language string) (RuleSet, bool) {
	if reg == nil {
		reg = registry.Default()
	}
	name, ok := reg.Canonical(language)
	if !ok {
		return RuleSet{}, false
	}
	rs, ok := defaultRules[name]
	return rs, ok
}

// New analyzes lines of a document in language. A nil registry means the
// default registry.
func New(reg *registry.Registry, language string, lines []string) *Provider {
	if reg == nil {
		reg = registry.Default()
	}
	p := &Provider{
		registry: reg,
		language: language,
		states:   make([]lineState, len(lines)),
	}
	if rs, ok := rulesFor(reg, language); ok {
		p.analyze(rs, lines)
	}
	return p
}

// For returns a SyntaxContext for the document, or nil when language has
// no region grammar.
func For(reg *registry.Registry, language string, lines []string) resolve.SyntaxContext {
	if !Supports(reg, language) {
		return nil
	}
	return New(reg, language, lines)
}

func (p *Provider) analyze(rs RuleSet, lines []string) {
	var (
		active *Rule
		lang   string
		jsx    jsxState
	)

	for i, line := range lines {
		if active != nil {
			if active.End.MatchString(line) {
				active = nil
				continue
			}
			p.states[i].language = lang
			continue
		}

		if rs.JSX {
			p.states[i].markup = jsx.depth > 0 && !jsx.inTag
			jsx.scan(line)
		}

		for j := range rs.Regions {
			r := &rs.Regions[j]
			m := r.Start.FindStringSubmatchIndex(line)
			if m == nil {
				continue
			}
			if r.End.MatchString(line[m[1]:]) {
				// Opened and closed on the same line.
				break
			}
			active, lang = r, r.Language
			if lang == "" && len(m) >= 4 && m[2] >= 0 {
				lang = line[m[2]:m[3]]
			}
			break
		}
	}
}

func (p *Provider) state(line int) (lineState, bool) {
	if line < 1 || line > len(p.states) {
		return lineState{}, false
	}
	return p.states[line-1], true
}

// LanguageAt returns the language in effect on line: the embedded
// language inside a region, the host language otherwise.
func (p *Provider) LanguageAt(line int) string {
	if st, ok := p.state(line); ok && st.language != "" {
		return st.language
	}
	return p.language
}

// StyleAt returns the embedded language's style inside a region and the
// host style flagged as markup inside JSX element bodies. Elsewhere it
// reports no opinion so the resolver falls back to the registry.
func (p *Provider) StyleAt(pos resolve.Position) (style.CommentStyle, bool) {
	st, ok := p.state(pos.Line)
	if !ok {
		return style.CommentStyle{}, false
	}
	switch {
	case st.language != "":
		return p.registry.Lookup(st.language)
	case st.markup:
		s, ok := p.registry.Lookup(p.language)
		if !ok {
			return style.CommentStyle{}, false
		}
		s.Markup = true
		return s, true
	}
	return style.CommentStyle{}, false
}

// IsMarkupContext reports whether pos is inside a JSX element body.
func (p *Provider) IsMarkupContext(pos resolve.Position) bool {
	st, _ := p.state(pos.Line)
	return st.markup
}
