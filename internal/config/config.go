package config

import (
	"fmt"
	"maps"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dshills/commentary/internal/comment/style"
)

// Config is the decoded, validated configuration.
type Config struct {
	Comment   CommentSettings
	Languages map[string]style.Override

	// Filetypes maps doublestar globs to language keys.
	Filetypes map[string]string
}

// CommentSettings are the engine-wide defaults.
type CommentSettings struct {
	// DefaultStyle is the kind used when a toggle requests none.
	// Zero means each language's preferred kind.
	DefaultStyle style.Kind

	// Padding inserts one space between marker and text.
	Padding bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Comment:   CommentSettings{Padding: true},
		Languages: make(map[string]style.Override),
		Filetypes: make(map[string]string),
	}
}

// Overrides returns the per-language override table.
func (c *Config) Overrides() style.Overrides {
	return style.Overrides(maps.Clone(c.Languages))
}

// Decode converts a merged configuration map into a Config. Invalid fields
// are reported and skipped.
func Decode(data map[string]any) (*Config, []*FieldError) {
	cfg := Default()
	var errs []*FieldError
	fail := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if raw, ok := data["comment"]; ok {
		section, ok := raw.(map[string]any)
		if !ok {
			fail("comment", "expected a table, got %T", raw)
		} else {
			decodeComment(section, &cfg.Comment, fail)
		}
	}

	if raw, ok := data["languages"]; ok {
		section, ok := raw.(map[string]any)
		if !ok {
			fail("languages", "expected a table, got %T", raw)
		} else {
			for _, name := range sortedKeys(section) {
				field := "languages." + name
				entry, ok := section[name].(map[string]any)
				if !ok {
					fail(field, "expected a table, got %T", section[name])
					continue
				}
				if o, ok := decodeLanguage(field, entry, fail); ok {
					cfg.Languages[name] = o
				}
			}
		}
	}

	if raw, ok := data["filetypes"]; ok {
		section, ok := raw.(map[string]any)
		if !ok {
			fail("filetypes", "expected a table, got %T", raw)
		} else {
			for _, glob := range sortedKeys(section) {
				field := fmt.Sprintf("filetypes.%q", glob)
				lang, ok := section[glob].(string)
				switch {
				case !ok || lang == "":
					fail(field, "expected a language name, got %v", section[glob])
				case !doublestar.ValidatePattern(glob):
					fail(field, "invalid glob pattern")
				default:
					cfg.Filetypes[glob] = lang
				}
			}
		}
	}

	return cfg, errs
}

type failFunc func(field, format string, args ...any)

func decodeComment(section map[string]any, out *CommentSettings, fail failFunc) {
	if raw, ok := section["default_style"]; ok {
		s, isStr := raw.(string)
		k, err := style.ParseKind(s)
		if !isStr || err != nil {
			fail("comment.default_style", "expected \"line\" or \"block\", got %v", raw)
		} else {
			out.DefaultStyle = k
		}
	}
	if raw, ok := section["padding"]; ok {
		b, isBool := raw.(bool)
		if !isBool {
			fail("comment.padding", "expected a boolean, got %T", raw)
		} else {
			out.Padding = b
		}
	}
}

// decodeLanguage builds an override from the fields a language table sets.
// Empty strings clear a marker: line = "" removes line comments.
func decodeLanguage(field string, entry map[string]any, fail failFunc) (style.Override, bool) {
	var o style.Override
	valid := true

	if raw, ok := entry["line"]; ok {
		if s, isStr := raw.(string); isStr {
			o.Line = style.String(s)
		} else {
			fail(field+".line", "expected a string, got %T", raw)
			valid = false
		}
	}

	if raw, ok := entry["block"]; ok {
		if b, ok := decodePair(raw); ok {
			o.Block = &b
		} else {
			fail(field+".block", "expected [start, end] strings, got %v", raw)
			valid = false
		}
	}

	if raw, ok := entry["nesting"]; ok {
		if b, isBool := raw.(bool); isBool {
			o.Nesting = style.Bool(b)
		} else {
			fail(field+".nesting", "expected a boolean, got %T", raw)
			valid = false
		}
	}

	// A table with any invalid field is dropped whole.
	if !valid {
		return style.Override{}, false
	}
	return o, !o.IsZero()
}

func decodePair(raw any) (style.Block, bool) {
	var items []string
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return style.Block{}, false
			}
			items = append(items, s)
		}
	case []string:
		items = v
	default:
		return style.Block{}, false
	}
	switch len(items) {
	case 0:
		return style.Block{}, true
	case 2:
		if (items[0] == "") != (items[1] == "") {
			return style.Block{}, false
		}
		return style.Block{Start: items[0], End: items[1]}, true
	}
	return style.Block{}, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode converts c back into the map form read by Decode.
func (c *Config) Encode() map[string]any {
	comment := map[string]any{"padding": c.Comment.Padding}
	if c.Comment.DefaultStyle.Valid() {
		comment["default_style"] = c.Comment.DefaultStyle.String()
	}
	out := map[string]any{"comment": comment}

	if len(c.Languages) > 0 {
		langs := make(map[string]any, len(c.Languages))
		for name, o := range c.Languages {
			entry := make(map[string]any)
			if o.Line != nil {
				entry["line"] = *o.Line
			}
			if o.Block != nil {
				if o.Block.Valid() {
					entry["block"] = []any{o.Block.Start, o.Block.End}
				} else {
					entry["block"] = []any{}
				}
			}
			if o.Nesting != nil {
				entry["nesting"] = *o.Nesting
			}
			langs[name] = entry
		}
		out["languages"] = langs
	}

	if len(c.Filetypes) > 0 {
		fts := make(map[string]any, len(c.Filetypes))
		for glob, lang := range c.Filetypes {
			fts[glob] = lang
		}
		out["filetypes"] = fts
	}
	return out
}
