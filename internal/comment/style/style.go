// Package style defines the value types shared by the comment engine:
// comment syntax descriptions, located marker spans, range states and
// partial user overrides.
package style

import "fmt"

// Kind identifies a comment form.
type Kind uint8

const (
	// KindLine is a marker prefixing a single line, e.g. "//".
	KindLine Kind = iota + 1
	// KindBlock is a start/end pair wrapping text, e.g. "/*" and "*/".
	KindBlock
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k == KindLine || k == KindBlock
}

// ParseKind parses "line" or "block".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "line":
		return KindLine, nil
	case "block":
		return KindBlock, nil
	default:
		return 0, fmt.Errorf("invalid comment kind %q (must be line or block)", s)
	}
}

// Block is a block comment delimiter pair.
type Block struct {
	Start string
	End   string
}

// Valid reports whether both delimiters are set.
func (b Block) Valid() bool {
	return b.Start != "" && b.End != ""
}

// CommentStyle describes the comment syntax for a language or a position
// within a buffer. It is an immutable value; modifications produce copies.
type CommentStyle struct {
	// Line is the line comment marker. Empty when the language has none.
	Line string

	// Block is the block comment pair. Zero when the language has none.
	Block Block

	// Nesting reports whether block comments may nest.
	Nesting bool

	// Markup is set when the position sits inside embedded markup (JSX)
	// and the markup comment form must be used instead.
	Markup bool
}

// HasLine reports whether a line marker is available.
func (s CommentStyle) HasLine() bool {
	return s.Line != ""
}

// HasBlock reports whether a block pair is available.
func (s CommentStyle) HasBlock() bool {
	return s.Block.Valid()
}

// Empty reports whether the style has no comment support at all.
func (s CommentStyle) Empty() bool {
	return !s.HasLine() && !s.HasBlock()
}

// Has reports whether the given kind is available.
func (s CommentStyle) Has(k Kind) bool {
	switch k {
	case KindLine:
		return s.HasLine()
	case KindBlock:
		return s.HasBlock()
	}
	return false
}

// Preferred returns the kind used when the caller expresses no preference:
// line when available, otherwise block.
func (s CommentStyle) Preferred() Kind {
	if s.HasLine() {
		return KindLine
	}
	return KindBlock
}

// String renders the style for diagnostics.
func (s CommentStyle) String() string {
	line := "-"
	if s.HasLine() {
		line = s.Line
	}
	block := "-"
	if s.HasBlock() {
		block = s.Block.Start + " " + s.Block.End
	}
	return fmt.Sprintf("line=%s block=%s nesting=%t markup=%t", line, block, s.Nesting, s.Markup)
}

// Markers is the span of a comment marker located on one line.
// Positions are 1-indexed byte columns, inclusive of the marker text.
type Markers struct {
	Start int
	End   int
	Kind  Kind
}

// LineState classifies the comment state of a line range.
type LineState uint8

const (
	// NoneCommented means no non-blank line in the range is commented.
	NoneCommented LineState = iota
	// AllCommented means every non-blank line is commented, or the range
	// is wrapped in a block comment.
	AllCommented
	// Mixed means the range has both commented and uncommented lines.
	Mixed
)

// String returns the state name.
func (s LineState) String() string {
	switch s {
	case AllCommented:
		return "all"
	case NoneCommented:
		return "none"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}
