// Package marker applies and removes comment markers over line ranges.
//
// Multi-line block comments use a nesting-priority policy: a selection
// that already holds block delimiters is only wrapped again when the
// language allows nested block comments; otherwise every line is
// commented on its own so no unterminated or overlapping block comment
// is ever produced.
package marker

import (
	"strings"

	"github.com/dshills/commentary/internal/comment/scan"
	"github.com/dshills/commentary/internal/comment/style"
)

// Options controls how markers are inserted.
type Options struct {
	// Kind is the requested comment kind. Zero means the style's
	// preferred kind.
	Kind style.Kind

	// NoPadding drops the space between marker and text.
	NoPadding bool
}

// Comment comments lines with the requested kind using padded markers.
func Comment(lines []string, s style.CommentStyle, kind style.Kind) []string {
	return CommentWith(lines, s, Options{Kind: kind})
}

// CommentWith comments lines according to opts. The input is not modified.
func CommentWith(lines []string, s style.CommentStyle, opts Options) []string {
	if len(lines) == 0 || s.Empty() {
		return clone(lines)
	}
	kind := opts.Kind
	if !kind.Valid() {
		kind = s.Preferred()
	}
	pad := !opts.NoPadding

	if len(lines) == 1 {
		return []string{scan.Insert(lines[0], s, kind, pad)}
	}

	if kind != style.KindBlock || !s.HasBlock() {
		return eachLine(lines, s, kind, pad)
	}

	if scan.ContainsBlockMarker(lines, s) {
		switch {
		case s.Nesting:
			return wrap(lines, s)
		case s.HasLine():
			return eachLine(lines, s, style.KindLine, pad)
		default:
			return eachLine(lines, s, style.KindBlock, pad)
		}
	}
	return wrap(lines, s)
}

// Uncomment removes comment markers from lines. A block-wrapped range
// loses its delimiter lines; any other range is stripped line by line.
func Uncomment(lines []string, s style.CommentStyle) []string {
	if len(lines) == 0 {
		return clone(lines)
	}
	if len(lines) == 1 {
		return []string{scan.Strip(lines[0], s)}
	}
	if isWrapped(lines, s, true) {
		return clone(lines[1 : len(lines)-1])
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = scan.Strip(line, s)
	}
	return out
}

// Convert re-comments an already commented range with another kind.
func Convert(lines []string, s style.CommentStyle, to style.Kind) []string {
	return Comment(Uncomment(lines, s), s, to)
}

// IsBlockWrapped reports whether the range is wrapped by delimiter lines:
// the first trimmed line is exactly the block start and the last trimmed
// line is exactly the block end.
func IsBlockWrapped(lines []string, s style.CommentStyle) bool {
	return isWrapped(lines, s, false)
}

// isWrapped checks the delimiter lines. With degenerate set, a first line
// holding an empty block comment ("/* */") also counts as an opener.
func isWrapped(lines []string, s style.CommentStyle, degenerate bool) bool {
	if len(lines) < 2 || !s.HasBlock() {
		return false
	}
	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if last != s.Block.End {
		return false
	}
	if first == s.Block.Start {
		return true
	}
	if !degenerate || !strings.HasPrefix(first, s.Block.Start) || !strings.HasSuffix(first, s.Block.End) {
		return false
	}
	if len(first) < len(s.Block.Start)+len(s.Block.End) {
		return false
	}
	inner := first[len(s.Block.Start) : len(first)-len(s.Block.End)]
	return strings.TrimSpace(inner) == ""
}

// wrap surrounds lines with delimiter lines at the minimum indentation of
// the non-blank lines. The original lines are kept verbatim.
func wrap(lines []string, s style.CommentStyle) []string {
	indent := MinIndent(lines)
	out := make([]string, 0, len(lines)+2)
	out = append(out, indent+s.Block.Start)
	out = append(out, lines...)
	out = append(out, indent+s.Block.End)
	return out
}

// eachLine comments every non-blank line independently.
func eachLine(lines []string, s style.CommentStyle, kind style.Kind, pad bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if scan.IsBlank(line) {
			out[i] = line
			continue
		}
		out[i] = scan.Insert(line, s, kind, pad)
	}
	return out
}

// MinIndent returns the shortest leading whitespace among non-blank lines.
func MinIndent(lines []string) string {
	found := false
	var min string
	for _, line := range lines {
		if scan.IsBlank(line) {
			continue
		}
		ind := scan.Indent(line)
		if !found || len(ind) < len(min) {
			min = ind
			found = true
		}
	}
	return min
}

func clone(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
