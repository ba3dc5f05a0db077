package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithLF configures the buffer to use Unix line endings (\n).
func WithLF() Option {
	return WithLineEnding(LineEndingLF)
}

// WithCRLF configures the buffer to use Windows line endings (\r\n).
func WithCRLF() Option {
	return WithLineEnding(LineEndingCRLF)
}

// DetectLineEnding returns the most common line ending in text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			crlf++
			i++
		case text[i] == '\r':
			cr++
		case text[i] == '\n':
			lf++
		}
	}
	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	}
	return LineEndingLF
}

// WithDetectedLineEnding sets the line ending style from content.
func WithDetectedLineEnding(text string) Option {
	return WithLineEnding(DetectLineEnding(text))
}
