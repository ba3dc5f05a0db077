package buffer

import "fmt"

// LineRange is a 1-indexed, inclusive range of lines.
type LineRange struct {
	Start int
	End   int
}

// NewLineRange creates a line range.
func NewLineRange(start, end int) LineRange {
	return LineRange{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r LineRange) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// Len returns the number of lines in the range.
func (r LineRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// IsValid reports whether the range is well formed (1 <= Start <= End).
func (r LineRange) IsValid() bool {
	return r.Start >= 1 && r.Start <= r.End
}

// Within reports whether the range fits a buffer of lineCount lines.
func (r LineRange) Within(lineCount int) bool {
	return r.IsValid() && r.End <= lineCount
}

// Contains reports whether line is inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}
