package scan

import (
	"testing"

	"github.com/dshills/commentary/internal/comment/style"
)

var (
	cStyle   = style.CommentStyle{Line: "//", Block: style.Block{Start: "/*", End: "*/"}}
	luaStyle = style.CommentStyle{Line: "--", Block: style.Block{Start: "--[[", End: "]]"}}
	hsStyle  = style.CommentStyle{Line: "--", Block: style.Block{Start: "{-", End: "-}"}, Nesting: true}
	cssStyle = style.CommentStyle{Block: style.Block{Start: "/*", End: "*/"}}
	pyStyle  = style.CommentStyle{Line: "#"}
	vimStyle = style.CommentStyle{Line: `"`}
)

func TestIsCommented(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		style style.CommentStyle
		want  bool
	}{
		{"line marker", "// hello", cStyle, true},
		{"indented line marker", "\t  // hello", cStyle, true},
		{"marker without space", "//hello", cStyle, true},
		{"code", "x := 1", cStyle, false},
		{"trailing comment", "x := 1 // note", cStyle, false},
		{"marker in double quotes", `x = "// not a comment"`, cStyle, false},
		{"marker in single quotes", `x = '// not a comment'`, cStyle, false},
		{"quoted line start", `"// quoted"`, cStyle, false},
		{"complete block", "/* hello */", cStyle, true},
		{"indented block trailing space", "  /* hello */  ", cStyle, true},
		{"block with code after", "/* a */ x", cStyle, false},
		{"two blocks", "/* a */ x /* b */", cStyle, false},
		{"unterminated block", "/* hello", cStyle, false},
		{"block only style", "/* rule */", cssStyle, true},
		{"block only uncommented", "a { color: red }", cssStyle, false},
		{"apostrophe in block", "/* don't */", cStyle, true},
		{"nested block", "{- a {- b -} c -}", hsStyle, true},
		{"nested block unbalanced", "{- a {- b -}", hsStyle, false},
		{"python", "# x", pyStyle, true},
		{"python string", `s = "# x"`, pyStyle, false},
		{"vim quote marker", `" set number`, vimStyle, true},
		{"blank", "   ", cStyle, false},
		{"empty style", "// x", style.CommentStyle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCommented(tt.line, tt.style); got != tt.want {
				t.Errorf("IsCommented(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		line  string
		style style.CommentStyle
		want  style.Markers
		ok    bool
	}{
		{"// x", cStyle, style.Markers{Start: 1, End: 2, Kind: style.KindLine}, true},
		{"    // x", cStyle, style.Markers{Start: 5, End: 6, Kind: style.KindLine}, true},
		{"  /* x */", cStyle, style.Markers{Start: 3, End: 9, Kind: style.KindBlock}, true},
		{"// a /* b */", cStyle, style.Markers{Start: 1, End: 2, Kind: style.KindLine}, true},
		{"-- x", luaStyle, style.Markers{Start: 1, End: 2, Kind: style.KindLine}, true},
		{"--[[ x ]]", luaStyle, style.Markers{Start: 1, End: 9, Kind: style.KindBlock}, true},
		{"--[[ open", luaStyle, style.Markers{Start: 1, End: 2, Kind: style.KindLine}, true},
		{"x", cStyle, style.Markers{}, false},
	}

	for _, tt := range tests {
		got, ok := Markers(tt.line, tt.style)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Markers(%q) = %+v, %v; want %+v, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		line  string
		style style.CommentStyle
		want  string
	}{
		{"// hello", cStyle, "hello"},
		{"//hello", cStyle, "hello"},
		{"//  hello", cStyle, " hello"},
		{"    // hello // again", cStyle, "    hello // again"},
		{"/* hello */", cStyle, "hello"},
		{"  /*hello*/  ", cStyle, "  hello  "},
		{"/*  hello  */", cStyle, " hello "},
		{"-- local x = 1", luaStyle, "local x = 1"},
		{"--[[ local x = 1 ]]", luaStyle, "local x = 1"},
		{`x = "// keep"`, cStyle, `x = "// keep"`},
		{"plain", cStyle, "plain"},
		{"//", cStyle, ""},
		{"/**/", cStyle, ""},
		{"", cStyle, ""},
	}

	for _, tt := range tests {
		if got := Strip(tt.line, tt.style); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		line        string
		style       style.CommentStyle
		preferBlock bool
		want        string
	}{
		{"local x = 1", style.CommentStyle{Line: "--"}, false, "-- local x = 1"},
		{"  x := 1", cStyle, false, "  // x := 1"},
		{"  x := 1", cStyle, true, "  /* x := 1 */"},
		{"a { }", cssStyle, false, "/* a { } */"},
		{"x = 1", pyStyle, true, "# x = 1"},
		{`s := "/* keep */"`, cStyle, false, `// s := "/* keep */"`},
		{"", cStyle, false, "//"},
		{"    ", cStyle, true, "    /**/"},
		{"x", style.CommentStyle{}, false, "x"},
	}

	for _, tt := range tests {
		if got := Add(tt.line, tt.style, tt.preferBlock); got != tt.want {
			t.Errorf("Add(%q, block=%v) = %q, want %q", tt.line, tt.preferBlock, got, tt.want)
		}
	}
}

func TestInsertWithoutPadding(t *testing.T) {
	if got := Insert("x", cStyle, style.KindLine, false); got != "//x" {
		t.Errorf("Insert line no pad = %q", got)
	}
	if got := Insert("x", cStyle, style.KindBlock, false); got != "/*x*/" {
		t.Errorf("Insert block no pad = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"local x = 1",
		"    return foo(bar)",
		`print("-- not a comment")`,
		"\tif a then",
		"x  ",
		"",
		"   ",
	}
	styles := []style.CommentStyle{cStyle, luaStyle, hsStyle, cssStyle, pyStyle}

	for _, s := range styles {
		for _, line := range lines {
			for _, block := range []bool{false, true} {
				commented := Add(line, s, block)
				if !IsCommented(commented, s) {
					t.Errorf("IsCommented(Add(%q)) = false for %v", line, s)
				}
				if got := Strip(commented, s); got != line {
					t.Errorf("Strip(Add(%q, block=%v)) = %q for %v", line, block, got, s)
				}
			}
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		line   string
		marker string
		want   int
	}{
		{"a /* b", "/*", 2},
		{`a = "/*" + b`, "/*", -1},
		{`a = '/*' /* real`, "/*", 9},
		{`a = "\"/*" + b`, "/*", -1},
		{`a = "x\\" /* real`, "/*", 10},
		{"// don't /* here", "/*", 9},
		{"x */", "*/", 2},
		{"x", "", -1},
	}

	for _, tt := range tests {
		if got := Index(tt.line, tt.marker, cStyle); got != tt.want {
			t.Errorf("Index(%q, %q) = %d, want %d", tt.line, tt.marker, got, tt.want)
		}
	}
}

func TestContainsBlockMarker(t *testing.T) {
	if !ContainsBlockMarker([]string{"a", "b */"}, cStyle) {
		t.Error("partial block end should be detected")
	}
	if !ContainsBlockMarker([]string{"/* a */"}, cStyle) {
		t.Error("complete block should be detected")
	}
	if ContainsBlockMarker([]string{`s := "/* x */"`, "b"}, cStyle) {
		t.Error("quoted markers should be ignored")
	}
	if ContainsBlockMarker([]string{"/* a */"}, pyStyle) {
		t.Error("style without block never contains block markers")
	}
}
