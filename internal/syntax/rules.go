package syntax

import "regexp"

// Rule opens an embedded-language region on a line matching Start and
// closes it on a later line matching End. Lines strictly between the two
// belong to the region.
type Rule struct {
	Start *regexp.Regexp
	End   *regexp.Regexp

	// Language is the embedded language. Empty means submatch 1 of Start
	// names it, as in a markdown fence.
	Language string
}

// RuleSet is the region grammar for one host language.
type RuleSet struct {
	Regions []Rule

	// JSX enables markup tracking for JSX/TSX element bodies.
	JSX bool
}

// NewRule compiles a region rule.
func NewRule(start, end, language string) Rule {
	return Rule{
		Start:    regexp.MustCompile(start),
		End:      regexp.MustCompile(end),
		Language: language,
	}
}

func markupRegions() []Rule {
	return []Rule{
		NewRule(`(?i)<script\b[^>]*\blang=["']?(?:ts|typescript)\b`, `(?i)</script\s*>`, "typescript"),
		NewRule(`(?i)<script\b[^>]*>`, `(?i)</script\s*>`, "javascript"),
		NewRule(`(?i)<style\b[^>]*\blang=["']?scss\b`, `(?i)</style\s*>`, "scss"),
		NewRule(`(?i)<style\b[^>]*\blang=["']?less\b`, `(?i)</style\s*>`, "less"),
		NewRule(`(?i)<style\b[^>]*>`, `(?i)</style\s*>`, "css"),
	}
}

// DefaultRules returns the built-in region grammars keyed by canonical
// language name.
func DefaultRules() map[string]RuleSet {
	markup := RuleSet{Regions: markupRegions()}
	return map[string]RuleSet{
		"html":   markup,
		"vue":    markup,
		"svelte": markup,
		"markdown": {Regions: []Rule{
			NewRule("^\\s*(?:```|~~~)\\s*\\{?\\.?([A-Za-z0-9_+#-]+)", "^\\s*(?:```|~~~)\\s*$", ""),
		}},
		"javascriptreact": {JSX: true},
		"typescriptreact": {JSX: true},
	}
}
