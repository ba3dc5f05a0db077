package resolve

import (
	"strings"

	"github.com/dshills/commentary/internal/comment/style"
)

// Placeholder marks where text goes in a comment template.
const Placeholder = "%s"

// ParseTemplate derives a style from a single-placeholder comment template
// such as "# %s" or "/*%s*/". Text only before the placeholder yields a
// line style; text on both sides yields a block style. Line markers
// always precede the text, so a template with text only after the
// placeholder ("%s -->") yields false. Templates that are empty,
// whitespace-only, lack the placeholder or repeat it also yield false.
func ParseTemplate(tmpl string) (style.CommentStyle, bool) {
	if strings.TrimSpace(tmpl) == "" || strings.Count(tmpl, Placeholder) != 1 {
		return style.CommentStyle{}, false
	}
	before, after, _ := strings.Cut(tmpl, Placeholder)
	left := strings.TrimSpace(before)
	right := strings.TrimSpace(after)

	switch {
	case left != "" && right == "":
		return style.CommentStyle{Line: left}, true
	case left != "" && right != "":
		return style.CommentStyle{Block: style.Block{Start: left, End: right}}, true
	}
	return style.CommentStyle{}, false
}
