// Package toggle is the comment toggle orchestrator. It classifies a line
// range as commented, uncommented, or mixed, decides what to do, builds
// the replacement lines, and commits them to the host buffer as a single
// grouped edit.
//
// Recoverable problems (bad handle, bad range, no comment syntax) come
// back as a Result with OK false. Only caller contract violations are
// returned as errors.
package toggle

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dshills/commentary/internal/comment/marker"
	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/scan"
	"github.com/dshills/commentary/internal/comment/style"
	"github.com/dshills/commentary/internal/log"
)

// Action is what a toggle did to a range.
type Action uint8

const (
	ActionNone Action = iota
	ActionComment
	ActionUncomment
	ActionConvert
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionComment:
		return "comment"
	case ActionUncomment:
		return "uncomment"
	case ActionConvert:
		return "convert"
	default:
		return "none"
	}
}

// Result is the outcome of a buffer edit.
type Result struct {
	OK      bool
	Message string
	Err     error

	Action Action
	State  style.LineState // State of the range before the edit
	Style  style.CommentStyle
}

func failed(err error, format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), Err: err}
}

// Engine is the entry point for toggling, analyzing, and converting
// comments in host buffers.
type Engine struct {
	host        Host
	resolver    *resolve.Resolver
	logger      *slog.Logger
	defaultKind style.Kind
	padding     bool
}

// New creates an engine over host.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:     host,
		resolver: resolve.New(nil),
		logger:   log.Discard(),
		padding:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolver returns the engine's style resolver.
func (e *Engine) Resolver() *resolve.Resolver {
	return e.resolver
}

// target is a validated buffer range and its contents.
type target struct {
	buf    Buffer
	start  int
	end    int
	lines  []string
	syntax resolve.SyntaxContext
}

func (e *Engine) load(bufnr, start, end int) (*target, Result, bool) {
	buf, ok := e.host.Buffer(bufnr)
	if !ok || buf == nil || !buf.IsValid() {
		return nil, failed(ErrInvalidBuffer, "buffer %d is not valid", bufnr), false
	}
	if count := buf.LineCount(); start < 1 || end < start || end > count {
		return nil, failed(ErrInvalidRange, "range %d-%d is outside buffer %d (%d lines)", start, end, bufnr, count), false
	}
	lines, err := buf.ReadLines(start, end)
	if err != nil {
		return nil, failed(fmt.Errorf("%w: %w", ErrInvalidRange, err), "read lines %d-%d: %v", start, end, err), false
	}
	t := &target{buf: buf, start: start, end: end, lines: lines}
	if src, ok := buf.(SyntaxSource); ok {
		t.syntax = src.SyntaxContext()
	}
	return t, Result{}, true
}

func (e *Engine) request(t *target, line int) resolve.Request {
	return resolve.Request{
		Language: t.buf.Language(),
		Position: resolve.Position{Line: line},
		Syntax:   t.syntax,
		Template: t.buf.CommentTemplate(),
	}
}

// rangeStyle resolves the style at the first non-blank line.
func (e *Engine) rangeStyle(t *target) (style.CommentStyle, bool) {
	line := t.start
	for i, l := range t.lines {
		if !scan.IsBlank(l) {
			line = t.start + i
			break
		}
	}
	return e.resolver.Style(e.request(t, line))
}

// kind picks the comment kind for a new comment. A requested kind the
// style lacks is passed through; the marker builder falls back to the
// kind the style has.
func (e *Engine) kind(s style.CommentStyle, requested style.Kind) style.Kind {
	if requested.Valid() {
		return requested
	}
	if e.defaultKind.Valid() && s.Has(e.defaultKind) {
		return e.defaultKind
	}
	return s.Preferred()
}

// ToggleRange comments or uncomments lines start..end of buffer bufnr.
// All-commented ranges are uncommented; uncommented and mixed ranges are
// commented in full. The edit is one undo step.
func (e *Engine) ToggleRange(bufnr, start, end int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return failed(err, "%v", err), err
	}

	t, res, ok := e.load(bufnr, start, end)
	if !ok {
		return res, nil
	}
	if allBlank(t.lines) {
		return failed(ErrBlankRange, "lines %d-%d are blank", start, end), nil
	}

	s, ok := e.rangeStyle(t)
	if !ok {
		return failed(ErrNoStyle, "no comment syntax for %q", t.buf.Language()), nil
	}

	a := e.analyze(t, s)
	res = Result{State: a.State, Style: s, Action: decide(a.State, opts)}

	var next []string
	switch res.Action {
	case ActionUncomment:
		next = marker.Uncomment(t.lines, s)
	default:
		k := e.kind(s, opts.StyleType)
		next = marker.CommentWith(t.lines, s, marker.Options{Kind: k, NoPadding: !e.padding})
	}

	if err := e.commit(t, "Toggle Comment", next); err != nil {
		return failed(err, "toggle lines %d-%d: %v", start, end, err), nil
	}

	res.OK = true
	res.Message = fmt.Sprintf("%sed %d line(s)", res.Action, len(t.lines))
	e.logger.Debug("toggle", "buffer", bufnr, "start", start, "end", end,
		"state", a.State.String(), "action", res.Action.String())
	return res, nil
}

// ConvertRange re-comments an already commented range with kind to.
func (e *Engine) ConvertRange(bufnr, start, end int, to style.Kind) (Result, error) {
	if !to.Valid() {
		err := fmt.Errorf("%w: %d", ErrInvalidStyleType, to)
		return failed(err, "%v", err), err
	}

	t, res, ok := e.load(bufnr, start, end)
	if !ok {
		return res, nil
	}
	if allBlank(t.lines) {
		return failed(ErrBlankRange, "lines %d-%d are blank", start, end), nil
	}
	s, ok := e.rangeStyle(t)
	if !ok {
		return failed(ErrNoStyle, "no comment syntax for %q", t.buf.Language()), nil
	}
	if !s.Has(to) {
		return failed(ErrKindUnavailable, "%q has no %s comments", t.buf.Language(), to), nil
	}

	a := e.analyze(t, s)
	if a.State != style.AllCommented {
		return failed(ErrNotCommented, "lines %d-%d are not fully commented (%s)", start, end, a.State), nil
	}

	plain := marker.Uncomment(t.lines, s)
	next := marker.CommentWith(plain, s, marker.Options{Kind: to, NoPadding: !e.padding})
	if err := e.commit(t, "Convert Comment", next); err != nil {
		return failed(err, "convert lines %d-%d: %v", start, end, err), nil
	}

	return Result{
		OK:      true,
		Message: fmt.Sprintf("converted %d line(s) to %s comments", len(t.lines), to),
		Action:  ActionConvert,
		State:   a.State,
		Style:   s,
	}, nil
}

// commit writes the replacement lines as one grouped edit. Unchanged
// ranges are not written.
func (e *Engine) commit(t *target, name string, next []string) error {
	if slices.Equal(next, t.lines) {
		return nil
	}
	return t.buf.Group(name, func() error {
		return t.buf.WriteLines(t.start, t.end, next)
	})
}

// ResolveStyle returns the effective comment style at line of bufnr.
func (e *Engine) ResolveStyle(bufnr, line int) (resolve.Resolution, bool) {
	t, _, ok := e.load(bufnr, line, line)
	if !ok {
		return resolve.Resolution{}, false
	}
	return e.resolver.Resolve(e.request(t, line))
}

// IsCommented reports whether line is commented in language, using the
// registry and override table but no buffer context.
func (e *Engine) IsCommented(line, language string) bool {
	s, ok := e.resolver.Style(resolve.Request{Language: language})
	if !ok {
		return false
	}
	return scan.IsCommented(line, s)
}

func decide(state style.LineState, opts Options) Action {
	switch {
	case opts.ForceComment:
		return ActionComment
	case opts.ForceUncomment:
		return ActionUncomment
	case state == style.AllCommented:
		return ActionUncomment
	default:
		return ActionComment
	}
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if !scan.IsBlank(l) {
			return false
		}
	}
	return true
}
