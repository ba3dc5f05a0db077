package toggle

import "errors"

// Caller contract violations. These are returned as errors.
var (
	// ErrConflictingForce indicates both ForceComment and ForceUncomment were set.
	ErrConflictingForce = errors.New("force comment and force uncomment are mutually exclusive")

	// ErrInvalidStyleType indicates a style type other than line or block.
	ErrInvalidStyleType = errors.New("invalid style type")
)

// Recoverable conditions. These are reported in Result.Err and
// Analysis.Err with OK set to false.
var (
	// ErrInvalidBuffer indicates an unknown or closed buffer handle.
	ErrInvalidBuffer = errors.New("invalid buffer")

	// ErrInvalidRange indicates line numbers outside the buffer or end < start.
	ErrInvalidRange = errors.New("invalid line range")

	// ErrNoStyle indicates no comment syntax could be resolved.
	ErrNoStyle = errors.New("no comment style available")

	// ErrBlankRange indicates the range holds only blank lines.
	ErrBlankRange = errors.New("range contains only blank lines")

	// ErrNotCommented indicates a convert over a range that is not fully commented.
	ErrNotCommented = errors.New("range is not commented")

	// ErrKindUnavailable indicates the language lacks the requested comment kind.
	ErrKindUnavailable = errors.New("comment kind not available")
)
