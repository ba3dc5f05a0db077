package toggle

import (
	"github.com/dshills/commentary/internal/comment/marker"
	"github.com/dshills/commentary/internal/comment/scan"
	"github.com/dshills/commentary/internal/comment/style"
)

// Analysis is the classification of a line range.
type Analysis struct {
	OK      bool
	Message string
	Err     error

	State       style.LineState
	Commented   int
	Uncommented int
	Blank       int

	// Wrapped is set when the range is enclosed by block delimiter lines.
	Wrapped bool
}

// AnalyzeRange classifies lines start..end of buffer bufnr. Blank lines
// are not counted; an all-blank range is NoneCommented.
func (e *Engine) AnalyzeRange(bufnr, start, end int) Analysis {
	t, res, ok := e.load(bufnr, start, end)
	if !ok {
		return Analysis{Message: res.Message, Err: res.Err}
	}
	if allBlank(t.lines) {
		return Analysis{OK: true, State: style.NoneCommented, Blank: len(t.lines)}
	}
	s, ok := e.rangeStyle(t)
	if !ok {
		return Analysis{
			Message: "no comment syntax for " + t.buf.Language(),
			Err:     ErrNoStyle,
		}
	}
	a := e.analyze(t, s)
	a.OK = true
	return a
}

// analyze tallies the range. Each line is classified with the style in
// effect at its own position; rs is the range style used for the
// block-wrap check and for lines whose own style cannot be resolved.
func (e *Engine) analyze(t *target, rs style.CommentStyle) Analysis {
	var a Analysis
	for _, l := range t.lines {
		if scan.IsBlank(l) {
			a.Blank++
		}
	}

	if marker.IsBlockWrapped(t.lines, rs) {
		a.Wrapped = true
		a.Commented = len(t.lines) - a.Blank
		a.State = style.AllCommented
		return a
	}

	for i, l := range t.lines {
		if scan.IsBlank(l) {
			continue
		}
		s, ok := e.resolver.Style(e.request(t, t.start+i))
		if !ok {
			s = rs
		}
		if scan.IsCommented(l, s) {
			a.Commented++
		} else {
			a.Uncommented++
		}
	}
	a.State = classify(a.Commented, a.Uncommented)
	return a
}

func classify(commented, uncommented int) style.LineState {
	switch {
	case commented > 0 && uncommented == 0:
		return style.AllCommented
	case commented > 0 && uncommented > 0:
		return style.Mixed
	default:
		return style.NoneCommented
	}
}
