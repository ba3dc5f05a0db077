package syntax

// jsxState tracks element depth across lines of a JSX/TSX document.
type jsxState struct {
	depth   int
	inTag   bool
	closing bool
	braces  int
	quote   byte // inside a tag attribute or a script string
}

// scan advances the state over one line.
func (s *jsxState) scan(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]

		if s.inTag {
			switch {
			case s.quote != 0:
				if c == s.quote {
					s.quote = 0
				}
			case c == '"' || c == '\'':
				s.quote = c
			case c == '{':
				s.braces++
			case c == '}':
				if s.braces > 0 {
					s.braces--
				}
			case s.braces > 0:
			case c == '/' && i+1 < len(line) && line[i+1] == '>':
				s.inTag = false
				i++
			case c == '>':
				s.inTag = false
				if s.closing {
					s.pop()
				} else {
					s.depth++
				}
			}
			continue
		}

		// Script strings only exist outside markup; element text may
		// contain bare apostrophes.
		if s.depth == 0 {
			if s.quote != 0 {
				if c == '\\' {
					i++
				} else if c == s.quote {
					s.quote = 0
				}
				continue
			}
			if c == '"' || c == '\'' || c == '`' {
				s.quote = c
				continue
			}
		}

		if c != '<' || i+1 >= len(line) {
			continue
		}
		switch next := line[i+1]; {
		case next == '/':
			s.inTag, s.closing = true, true
			i++
		case next == '>':
			s.depth++
			i++
		case isTagStart(next) && tagBoundary(line, i):
			s.inTag, s.closing = true, false
		}
	}

	// Only template literals continue onto the next line.
	if !s.inTag && s.quote != '`' {
		s.quote = 0
	}
}

func (s *jsxState) pop() {
	if s.depth > 0 {
		s.depth--
	}
}

func isTagStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tagBoundary rejects comparisons and generics such as a<b or Array<T>.
func tagBoundary(line string, i int) bool {
	if i == 0 {
		return true
	}
	p := line[i-1]
	return !(isTagStart(p) || (p >= '0' && p <= '9') || p == '_' || p == '$' || p == ')' || p == ']')
}
