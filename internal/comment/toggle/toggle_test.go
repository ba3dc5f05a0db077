package toggle

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
)

// memBuffer is an in-memory Buffer.
type memBuffer struct {
	lines    []string
	language string
	template string
	closed   bool
	syntax   resolve.SyntaxContext

	groups int
	writes int
}

func (b *memBuffer) IsValid() bool           { return !b.closed }
func (b *memBuffer) LineCount() int          { return len(b.lines) }
func (b *memBuffer) Language() string        { return b.language }
func (b *memBuffer) CommentTemplate() string { return b.template }

func (b *memBuffer) ReadLines(start, end int) ([]string, error) {
	out := make([]string, end-start+1)
	copy(out, b.lines[start-1:end])
	return out, nil
}

func (b *memBuffer) WriteLines(start, end int, lines []string) error {
	b.writes++
	next := append([]string{}, b.lines[:start-1]...)
	next = append(next, lines...)
	b.lines = append(next, b.lines[end:]...)
	return nil
}

func (b *memBuffer) Group(name string, fn func() error) error {
	b.groups++
	return fn()
}

// syntaxBuffer adds a syntax context.
type syntaxBuffer struct {
	*memBuffer
}

func (b syntaxBuffer) SyntaxContext() resolve.SyntaxContext { return b.syntax }

// markupSyntax marks every line as markup.
type markupSyntax struct{}

func (markupSyntax) StyleAt(resolve.Position) (style.CommentStyle, bool) {
	return style.CommentStyle{}, false
}
func (markupSyntax) IsMarkupContext(resolve.Position) bool { return true }

func newEngine(t *testing.T, bufs map[int]Buffer, opts ...Option) *Engine {
	t.Helper()
	return New(HostFunc(func(n int) (Buffer, bool) {
		b, ok := bufs[n]
		return b, ok
	}), opts...)
}

func single(t *testing.T, b Buffer, opts ...Option) *Engine {
	t.Helper()
	return newEngine(t, map[int]Buffer{1: b}, opts...)
}

func mustToggle(t *testing.T, e *Engine, start, end int, opts Options) Result {
	t.Helper()
	res, err := e.ToggleRange(1, start, end, opts)
	if err != nil {
		t.Fatalf("ToggleRange() error = %v", err)
	}
	if !res.OK {
		t.Fatalf("ToggleRange() not applied: %s", res.Message)
	}
	return res
}

func TestToggleRoundTripLua(t *testing.T) {
	buf := &memBuffer{lines: []string{"local x = 1"}, language: "lua"}
	e := single(t, buf)

	res := mustToggle(t, e, 1, 1, Options{})
	if res.Action != ActionComment || res.State != style.NoneCommented {
		t.Errorf("first toggle = %v from %v", res.Action, res.State)
	}
	if buf.lines[0] != "-- local x = 1" {
		t.Errorf("commented = %q, want %q", buf.lines[0], "-- local x = 1")
	}

	res = mustToggle(t, e, 1, 1, Options{})
	if res.Action != ActionUncomment {
		t.Errorf("second toggle = %v, want uncomment", res.Action)
	}
	if buf.lines[0] != "local x = 1" {
		t.Errorf("uncommented = %q, want %q", buf.lines[0], "local x = 1")
	}
	if buf.groups != 2 {
		t.Errorf("groups = %d, want one per toggle", buf.groups)
	}
}

func TestToggleBlockWrap(t *testing.T) {
	lines := []string{"a := 1", "b := 2", "c := 3"}
	buf := &memBuffer{lines: append([]string{}, lines...), language: "go"}
	e := single(t, buf)

	mustToggle(t, e, 1, 3, Options{StyleType: style.KindBlock})
	want := []string{"/*", "a := 1", "b := 2", "c := 3", "*/"}
	if !reflect.DeepEqual(buf.lines, want) {
		t.Fatalf("wrapped = %q, want %q", buf.lines, want)
	}

	res := mustToggle(t, e, 1, 5, Options{})
	if res.Action != ActionUncomment || res.State != style.AllCommented {
		t.Errorf("toggle of wrapped range = %v from %v", res.Action, res.State)
	}
	if !reflect.DeepEqual(buf.lines, lines) {
		t.Errorf("unwrapped = %q, want %q", buf.lines, lines)
	}
}

func TestToggleRewrapWithoutNesting(t *testing.T) {
	buf := &memBuffer{lines: []string{"/*", "a", "*/"}, language: "go"}
	e := single(t, buf)

	mustToggle(t, e, 1, 3, Options{StyleType: style.KindBlock, ForceComment: true})
	want := []string{"// /*", "// a", "// */"}
	if !reflect.DeepEqual(buf.lines, want) {
		t.Errorf("re-commented = %q, want %q", buf.lines, want)
	}
}

func TestToggleMixedCommentsEverything(t *testing.T) {
	buf := &memBuffer{lines: []string{"// a", "b"}, language: "go"}
	e := single(t, buf)

	res := mustToggle(t, e, 1, 2, Options{})
	if res.State != style.Mixed || res.Action != ActionComment {
		t.Errorf("toggle = %v from %v, want comment from mixed", res.Action, res.State)
	}
	want := []string{"// // a", "// b"}
	if !reflect.DeepEqual(buf.lines, want) {
		t.Errorf("lines = %q, want %q", buf.lines, want)
	}
}

func TestToggleBlankLinesKept(t *testing.T) {
	buf := &memBuffer{lines: []string{"a = 1", "", "b = 2"}, language: "python"}
	e := single(t, buf)

	mustToggle(t, e, 1, 3, Options{})
	want := []string{"# a = 1", "", "# b = 2"}
	if !reflect.DeepEqual(buf.lines, want) {
		t.Errorf("lines = %q, want %q", buf.lines, want)
	}
}

func TestToggleContractViolations(t *testing.T) {
	buf := &memBuffer{lines: []string{"x"}, language: "go"}
	e := single(t, buf)

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"both force flags", Options{ForceComment: true, ForceUncomment: true}, ErrConflictingForce},
		{"bad style type", Options{StyleType: style.Kind(9)}, ErrInvalidStyleType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.ToggleRange(1, 1, 1, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if res.OK || res.Message == "" {
				t.Errorf("result = %+v, want not applied with message", res)
			}
		})
	}
	if buf.writes != 0 {
		t.Error("contract violations must not write")
	}
}

func TestToggleRecoverableFailures(t *testing.T) {
	closed := &memBuffer{lines: []string{"x"}, language: "go", closed: true}
	blank := &memBuffer{lines: []string{"", "  "}, language: "go"}
	unknown := &memBuffer{lines: []string{"x"}, language: "nope"}
	plain := &memBuffer{lines: []string{"a", "b"}, language: "go"}
	e := newEngine(t, map[int]Buffer{1: plain, 2: closed, 3: blank, 4: unknown})

	tests := []struct {
		name       string
		bufnr      int
		start, end int
		want       error
	}{
		{"unknown handle", 9, 1, 1, ErrInvalidBuffer},
		{"closed buffer", 2, 1, 1, ErrInvalidBuffer},
		{"line zero", 1, 0, 1, ErrInvalidRange},
		{"past end", 1, 1, 3, ErrInvalidRange},
		{"inverted", 1, 2, 1, ErrInvalidRange},
		{"blank range", 3, 1, 2, ErrBlankRange},
		{"no style", 4, 1, 1, ErrNoStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.ToggleRange(tt.bufnr, tt.start, tt.end, Options{})
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if res.OK || !errors.Is(res.Err, tt.want) || res.Message == "" {
				t.Errorf("result = %+v, want Err %v", res, tt.want)
			}
		})
	}
}

func TestToggleTemplateFallback(t *testing.T) {
	buf := &memBuffer{lines: []string{"x"}, language: "nope", template: "### %s"}
	e := single(t, buf)

	mustToggle(t, e, 1, 1, Options{})
	if buf.lines[0] != "### x" {
		t.Errorf("line = %q, want %q", buf.lines[0], "### x")
	}
}

func TestToggleForceUncommentNoop(t *testing.T) {
	buf := &memBuffer{lines: []string{"a", "b"}, language: "go"}
	e := single(t, buf)

	res := mustToggle(t, e, 1, 2, Options{ForceUncomment: true})
	if res.Action != ActionUncomment {
		t.Errorf("action = %v, want uncomment", res.Action)
	}
	if buf.writes != 0 || buf.groups != 0 {
		t.Errorf("unchanged range wrote %d times in %d groups", buf.writes, buf.groups)
	}
}

func TestToggleDefaultKindAndPadding(t *testing.T) {
	goBuf := &memBuffer{lines: []string{"a", "b"}, language: "go"}
	pyBuf := &memBuffer{lines: []string{"a", "b"}, language: "python"}
	e := newEngine(t, map[int]Buffer{1: goBuf, 2: pyBuf}, WithDefaultKind(style.KindBlock), WithPadding(false))

	if _, err := e.ToggleRange(1, 1, 2, Options{}); err != nil {
		t.Fatal(err)
	}
	if want := []string{"/*", "a", "b", "*/"}; !reflect.DeepEqual(goBuf.lines, want) {
		t.Errorf("go = %q, want %q", goBuf.lines, want)
	}

	if _, err := e.ToggleRange(2, 1, 2, Options{}); err != nil {
		t.Fatal(err)
	}
	if want := []string{"#a", "#b"}; !reflect.DeepEqual(pyBuf.lines, want) {
		t.Errorf("python = %q, want %q", pyBuf.lines, want)
	}
}

func TestToggleOverride(t *testing.T) {
	r := resolve.New(nil, resolve.WithOverrides(style.Overrides{
		"lua": {Line: style.String("---")},
	}))
	buf := &memBuffer{lines: []string{"x"}, language: "lua"}
	e := single(t, buf, WithResolver(r))

	mustToggle(t, e, 1, 1, Options{})
	if buf.lines[0] != "--- x" {
		t.Errorf("line = %q, want %q", buf.lines[0], "--- x")
	}
}

func TestToggleMarkupContext(t *testing.T) {
	mb := &memBuffer{lines: []string{"      <Header />"}, language: "javascriptreact", syntax: markupSyntax{}}
	e := single(t, syntaxBuffer{mb})

	mustToggle(t, e, 1, 1, Options{})
	if want := "      {/* <Header /> */}"; mb.lines[0] != want {
		t.Errorf("line = %q, want %q", mb.lines[0], want)
	}

	mustToggle(t, e, 1, 1, Options{})
	if want := "      <Header />"; mb.lines[0] != want {
		t.Errorf("line = %q, want %q", mb.lines[0], want)
	}
}

func TestAnalyzeRange(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		lines []string
		want  style.LineState
	}{
		{"blank skipped", "lua", []string{"-- a", "", "-- b"}, style.AllCommented},
		{"none", "lua", []string{"a", "b"}, style.NoneCommented},
		{"mixed", "lua", []string{"-- a", "b"}, style.Mixed},
		{"all blank", "lua", []string{"", " "}, style.NoneCommented},
		{"block wrapped", "go", []string{"/*", "a", "*/"}, style.AllCommented},
		{"quoted marker", "go", []string{`s := "// no"`}, style.NoneCommented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := single(t, &memBuffer{lines: tt.lines, language: tt.lang})
			a := e.AnalyzeRange(1, 1, len(tt.lines))
			if !a.OK {
				t.Fatalf("AnalyzeRange() failed: %s", a.Message)
			}
			if a.State != tt.want {
				t.Errorf("State = %v, want %v", a.State, tt.want)
			}
		})
	}
}

func TestAnalyzeRangeCounts(t *testing.T) {
	e := single(t, &memBuffer{lines: []string{"-- a", "", "-- b", "c"}, language: "lua"})
	a := e.AnalyzeRange(1, 1, 4)
	if a.Commented != 2 || a.Uncommented != 1 || a.Blank != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", a.Commented, a.Uncommented, a.Blank)
	}
	if bad := e.AnalyzeRange(1, 3, 9); bad.OK || !errors.Is(bad.Err, ErrInvalidRange) {
		t.Errorf("out of range analysis = %+v", bad)
	}
}

func TestCommentedRangesAnalyzeAllCommented(t *testing.T) {
	inputs := []struct {
		lang  string
		kind  style.Kind
		lines []string
	}{
		{"go", style.KindLine, []string{"a()", "", "  b()"}},
		{"go", style.KindBlock, []string{"  a()", "    b()"}},
		{"go", style.KindBlock, []string{"/* x */", "y()"}},
		{"rust", style.KindBlock, []string{"/* x */", "y()"}},
		{"css", 0, []string{"a {}", "b {}"}},
		{"lua", style.KindBlock, []string{"x = 1", "y = 2"}},
		{"ocaml", 0, []string{"let x = 1", "(* c *)"}},
		{"html", 0, []string{"<p>", "</p>"}},
		{"python", style.KindBlock, []string{"x = 1"}},
	}
	for _, in := range inputs {
		buf := &memBuffer{lines: append([]string{}, in.lines...), language: in.lang}
		e := single(t, buf)
		if _, err := e.ToggleRange(1, 1, len(in.lines), Options{StyleType: in.kind, ForceComment: true}); err != nil {
			t.Fatal(err)
		}
		if a := e.AnalyzeRange(1, 1, len(buf.lines)); a.State != style.AllCommented {
			t.Errorf("%s %v %q: analyze(comment) = %v (lines %q)", in.lang, in.kind, in.lines, a.State, buf.lines)
		}
	}
}

func TestConvertRange(t *testing.T) {
	buf := &memBuffer{lines: []string{"// a", "// b"}, language: "go"}
	e := single(t, buf)

	res, err := e.ConvertRange(1, 1, 2, style.KindBlock)
	if err != nil || !res.OK {
		t.Fatalf("ConvertRange() = %+v, %v", res, err)
	}
	if want := []string{"/*", "a", "b", "*/"}; !reflect.DeepEqual(buf.lines, want) {
		t.Fatalf("block = %q, want %q", buf.lines, want)
	}

	if _, err := e.ConvertRange(1, 1, 4, style.KindLine); err != nil {
		t.Fatal(err)
	}
	if want := []string{"// a", "// b"}; !reflect.DeepEqual(buf.lines, want) {
		t.Errorf("line = %q, want %q", buf.lines, want)
	}
}

func TestConvertRangeFailures(t *testing.T) {
	goBuf := &memBuffer{lines: []string{"a", "b"}, language: "go"}
	pyBuf := &memBuffer{lines: []string{"# a"}, language: "python"}
	e := newEngine(t, map[int]Buffer{1: goBuf, 2: pyBuf})

	if _, err := e.ConvertRange(1, 1, 2, style.Kind(0)); !errors.Is(err, ErrInvalidStyleType) {
		t.Errorf("invalid kind err = %v", err)
	}
	if res, _ := e.ConvertRange(1, 1, 2, style.KindBlock); !errors.Is(res.Err, ErrNotCommented) {
		t.Errorf("uncommented convert = %+v", res)
	}
	if res, _ := e.ConvertRange(2, 1, 1, style.KindBlock); !errors.Is(res.Err, ErrKindUnavailable) {
		t.Errorf("python block convert = %+v", res)
	}
}

func TestResolveStyleAndIsCommented(t *testing.T) {
	e := single(t, &memBuffer{lines: []string{"x"}, language: "tsx"})

	res, ok := e.ResolveStyle(1, 1)
	if !ok || res.Style.Line != "//" || res.Source != resolve.SourceRegistry {
		t.Errorf("ResolveStyle() = %+v, %v", res, ok)
	}
	if _, ok := e.ResolveStyle(1, 5); ok {
		t.Error("ResolveStyle past end should fail")
	}

	if !e.IsCommented("  # x", "python") {
		t.Error("python comment not detected")
	}
	if e.IsCommented(`x = "# no"`, "python") {
		t.Error("quoted marker detected as comment")
	}
	if e.IsCommented("// x", "nope") {
		t.Error("unknown language should not report comments")
	}
}
