// Package scan implements the quote-aware comment scanner.
//
// All functions operate on a single line of text and a style.CommentStyle.
// They are pure: no state is kept between calls. Quoted literals are
// tracked with a single-quote flag, a double-quote flag and a pending
// escape flag, which is enough to ignore marker-like text inside strings
// for most languages without a per-language lexer.
package scan

import (
	"strings"

	"github.com/dshills/commentary/internal/comment/style"
)

// quoteState tracks string literal context while scanning left to right.
type quoteState struct {
	single bool
	double bool
	escape bool
}

func (q *quoteState) quoted() bool {
	return q.single || q.double
}

// step advances the state over byte c.
func (q *quoteState) step(c byte) {
	if q.escape {
		q.escape = false
		return
	}
	switch c {
	case '\\':
		q.escape = true
	case '\'':
		if !q.double {
			q.single = !q.single
		}
	case '"':
		if !q.single {
			q.double = !q.double
		}
	}
}

// Index returns the byte index of the first occurrence of marker in line
// that is not inside a quoted literal, or -1.
//
// Once an unquoted line marker of s is reached, the remainder of the line
// is comment text: quotes there are not tracked but markers still match.
func Index(line, marker string, s style.CommentStyle) int {
	if marker == "" {
		return -1
	}
	var q quoteState
	for i := 0; i < len(line); i++ {
		if !q.quoted() && !q.escape {
			if strings.HasPrefix(line[i:], marker) {
				return i
			}
			if s.HasLine() && strings.HasPrefix(line[i:], s.Line) {
				if j := strings.Index(line[i:], marker); j >= 0 {
					return i + j
				}
				return -1
			}
		}
		q.step(line[i])
	}
	return -1
}

// ContainsBlockMarker reports whether any line holds an unquoted block
// start or end delimiter of s.
func ContainsBlockMarker(lines []string, s style.CommentStyle) bool {
	if !s.HasBlock() {
		return false
	}
	for _, line := range lines {
		if Index(line, s.Block.Start, s) >= 0 || Index(line, s.Block.End, s) >= 0 {
			return true
		}
	}
	return false
}

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Indent returns the leading whitespace of line.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// blockEnd returns the index in text of the delimiter closing the block
// comment that opens at index 0, or -1. With nesting, inner start/end
// pairs are balanced. The comment body is not quote-tracked.
func blockEnd(text string, b style.Block, nesting bool) int {
	depth := 1
	i := len(b.Start)
	for i < len(text) {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, b.End):
			depth--
			if depth == 0 {
				return i
			}
			i += len(b.End)
		case nesting && strings.HasPrefix(rest, b.Start):
			depth++
			i += len(b.Start)
		default:
			i++
		}
	}
	return -1
}

// completeBlock reports whether trimmed is exactly one well-formed block
// comment span.
func completeBlock(trimmed string, s style.CommentStyle) bool {
	if !s.HasBlock() || !strings.HasPrefix(trimmed, s.Block.Start) {
		return false
	}
	if len(trimmed) < len(s.Block.Start)+len(s.Block.End) {
		return false
	}
	end := blockEnd(trimmed, s.Block, s.Nesting)
	return end >= 0 && end+len(s.Block.End) == len(trimmed)
}

// Markers locates the comment marker that makes line commented.
//
// A line marker at the start of the trimmed line takes priority over a
// block span, except when the block start is a longer delimiter that
// itself begins with the line marker (Lua "--[[" vs "--") and the block
// span is complete.
func Markers(line string, s style.CommentStyle) (style.Markers, bool) {
	indent := len(Indent(line))
	rest := line[indent:]
	trimmed := strings.TrimRight(rest, " \t")

	lineMatch := s.HasLine() && strings.HasPrefix(rest, s.Line)
	blockMatch := completeBlock(trimmed, s)

	if lineMatch && blockMatch && len(s.Block.Start) > len(s.Line) && strings.HasPrefix(s.Block.Start, s.Line) {
		lineMatch = false
	}

	switch {
	case lineMatch:
		return style.Markers{Start: indent + 1, End: indent + len(s.Line), Kind: style.KindLine}, true
	case blockMatch:
		return style.Markers{Start: indent + 1, End: indent + len(trimmed), Kind: style.KindBlock}, true
	}
	return style.Markers{}, false
}

// IsCommented reports whether line is commented under s.
func IsCommented(line string, s style.CommentStyle) bool {
	_, ok := Markers(line, s)
	return ok
}

// Strip removes one comment marker occurrence from line. A line marker
// takes one following space with it; block delimiters each take one
// adjacent inner space. Indentation and trailing whitespace are kept.
// Lines that are not commented are returned unchanged.
func Strip(line string, s style.CommentStyle) string {
	m, ok := Markers(line, s)
	if !ok {
		return line
	}
	indent := line[:m.Start-1]

	if m.Kind == style.KindLine {
		after := strings.TrimPrefix(line[m.End:], " ")
		return indent + after
	}

	inner := line[m.Start-1+len(s.Block.Start) : m.End-len(s.Block.End)]
	inner = strings.TrimPrefix(inner, " ")
	inner = strings.TrimSuffix(inner, " ")
	return indent + inner + line[m.End:]
}

// Add inserts comment markers into line. The line marker is used unless
// preferBlock is set or the style has no line marker, in which case the
// block pair is used. The line is returned unchanged when the style
// offers neither.
func Add(line string, s style.CommentStyle, preferBlock bool) string {
	kind := style.KindLine
	if preferBlock || !s.HasLine() {
		kind = style.KindBlock
	}
	return Insert(line, s, kind, true)
}

// Insert comments line with the given kind, falling back to the other
// kind when the requested one is unavailable. With pad set, one space
// separates markers from the text.
func Insert(line string, s style.CommentStyle, kind style.Kind, pad bool) string {
	if s.Empty() {
		return line
	}
	if !s.Has(kind) {
		kind = s.Preferred()
	}

	indent := Indent(line)
	body := line[len(indent):]
	sp := ""
	if pad && body != "" {
		sp = " "
	}

	if kind == style.KindLine {
		return indent + s.Line + sp + body
	}
	return indent + s.Block.Start + sp + body + sp + s.Block.End
}
