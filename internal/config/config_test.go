package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"config.toml", FormatTOML, false},
		{"config.TOML", FormatTOML, false},
		{".commentary.yaml", FormatYAML, false},
		{"x.yml", FormatYAML, false},
		{"config.json", "", true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if (err != nil) != tt.err {
			t.Errorf("FormatOf(%q) error = %v, wantErr %v", tt.path, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if _, err := FormatOf("a.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatOf(a.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseTOMLAndYAMLAgree(t *testing.T) {
	tomlSrc := `
[comment]
default_style = "block"
padding = false

[languages.lua]
line = "---"
block = ["--[==[", "]==]"]

[filetypes]
"*.tmpl" = "html"
`
	yamlSrc := `
comment:
  default_style: block
  padding: false
languages:
  lua:
    line: "---"
    block: ["--[==[", "]==]"]
filetypes:
  "*.tmpl": html
`
	for _, tc := range []struct {
		name   string
		format Format
		src    string
	}{
		{"toml", FormatTOML, tomlSrc},
		{"yaml", FormatYAML, yamlSrc},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Parse(tc.name, tc.format, []byte(tc.src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			cfg, errs := Decode(data)
			if len(errs) != 0 {
				t.Fatalf("Decode() errors = %v", errs)
			}
			if cfg.Comment.DefaultStyle != style.KindBlock {
				t.Errorf("DefaultStyle = %v, want block", cfg.Comment.DefaultStyle)
			}
			if cfg.Comment.Padding {
				t.Error("Padding = true, want false")
			}
			lua, ok := cfg.Languages["lua"]
			if !ok {
				t.Fatal("languages.lua missing")
			}
			if lua.Line == nil || *lua.Line != "---" {
				t.Errorf("lua.Line = %v, want ---", lua.Line)
			}
			if lua.Block == nil || *lua.Block != (style.Block{Start: "--[==[", End: "]==]"}) {
				t.Errorf("lua.Block = %v", lua.Block)
			}
			if lua.Nesting != nil {
				t.Errorf("lua.Nesting = %v, want unset", *lua.Nesting)
			}
			if got := cfg.Filetypes["*.tmpl"]; got != "html" {
				t.Errorf("Filetypes[*.tmpl] = %q, want html", got)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML} {
		data, err := Parse("empty", f, nil)
		if err != nil {
			t.Errorf("Parse(%s, empty) error = %v", f, err)
			continue
		}
		if data == nil || len(data) != 0 {
			t.Errorf("Parse(%s, empty) = %v, want empty map", f, data)
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("bad.toml", FormatTOML, []byte("[comment\npadding = "))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if pe.Path != "bad.toml" {
		t.Errorf("ParseError.Path = %q, want bad.toml", pe.Path)
	}
}

func TestDecodeDefaults(t *testing.T) {
	cfg, errs := Decode(map[string]any{})
	if len(errs) != 0 {
		t.Fatalf("Decode() errors = %v", errs)
	}
	if !cfg.Comment.Padding {
		t.Error("Padding = false, want true")
	}
	if cfg.Comment.DefaultStyle != 0 {
		t.Errorf("DefaultStyle = %v, want unset", cfg.Comment.DefaultStyle)
	}
	if len(cfg.Overrides()) != 0 {
		t.Errorf("Overrides() = %v, want empty", cfg.Overrides())
	}
}

func TestDecodeFieldErrors(t *testing.T) {
	data := map[string]any{
		"comment": map[string]any{
			"default_style": "inline",
			"padding":       "yes",
		},
		"languages": map[string]any{
			"go":     map[string]any{"line": "//", "nesting": "no"},
			"python": map[string]any{"line": "##"},
			"c":      map[string]any{"block": []any{"/*"}},
			"sh":     "#",
			"css":    map[string]any{"block": []any{"/*", ""}},
		},
		"filetypes": map[string]any{
			"*.[": "go",
			"*.x": "",
			"*.y": "python",
		},
	}
	cfg, errs := Decode(data)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{
		"comment.default_style",
		"comment.padding",
		"languages.go.nesting",
		"languages.c.block",
		"languages.sh",
		"languages.css.block",
		`filetypes."*.["`,
		`filetypes."*.x"`,
	} {
		if !fields[want] {
			t.Errorf("missing FieldError for %s (got %v)", want, errs)
		}
	}

	if !cfg.Comment.Padding {
		t.Error("invalid padding should keep the default")
	}
	if _, ok := cfg.Languages["go"]; ok {
		t.Error("languages.go with an invalid field should be dropped")
	}
	if o, ok := cfg.Languages["python"]; !ok || *o.Line != "##" {
		t.Errorf("languages.python = %v, want line ##", o)
	}
	if len(cfg.Filetypes) != 1 || cfg.Filetypes["*.y"] != "python" {
		t.Errorf("Filetypes = %v, want only *.y", cfg.Filetypes)
	}
}

func TestDecodeClearingMarkers(t *testing.T) {
	cfg, errs := Decode(map[string]any{
		"languages": map[string]any{
			"c": map[string]any{"line": "", "block": []any{}},
		},
	})
	if len(errs) != 0 {
		t.Fatalf("Decode() errors = %v", errs)
	}
	got := cfg.Languages["c"].Apply(style.CommentStyle{Line: "//", Block: style.Block{Start: "/*", End: "*/"}})
	if !got.Empty() {
		t.Errorf("Apply() = %v, want empty style", got)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"comment": map[string]any{"padding": true, "default_style": "line"},
		"keep":    1,
	}
	src := map[string]any{
		"comment": map[string]any{"default_style": "block"},
		"new":     []any{"a"},
	}
	got := DeepMerge(dst, src)
	comment := got["comment"].(map[string]any)
	if comment["padding"] != true {
		t.Errorf("comment.padding = %v, want true", comment["padding"])
	}
	if comment["default_style"] != "block" {
		t.Errorf("comment.default_style = %v, want block", comment["default_style"])
	}
	if got["keep"] != 1 {
		t.Errorf("keep = %v, want 1", got["keep"])
	}

	src["new"].([]any)[0] = "changed"
	if got["new"].([]any)[0] != "a" {
		t.Error("DeepMerge should copy slices from src")
	}
}

func TestLoadFileMissing(t *testing.T) {
	data, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if data != nil {
		t.Errorf("LoadFile() = %v, want nil", data)
	}
}

func TestManagerLayering(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.yaml")
	writeFile(t, user, `
[comment]
default_style = "block"

[languages.lua]
line = "---"
nesting = true
`)
	writeFile(t, project, `
comment:
  padding: false
languages:
  lua:
    line: "--"
`)

	m := NewManager(WithLayer("user", user), WithLayer("project", project))
	var notified int
	m.Subscribe(func(*Config) { notified++ })

	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if notified != 1 {
		t.Errorf("subscribers notified %d times, want 1", notified)
	}
	if cfg.Comment.DefaultStyle != style.KindBlock || cfg.Comment.Padding {
		t.Errorf("Comment = %+v, want block without padding", cfg.Comment)
	}
	lua := cfg.Languages["lua"]
	if lua.Line == nil || *lua.Line != "--" {
		t.Errorf("lua.Line = %v, want -- from the project layer", lua.Line)
	}
	if lua.Nesting == nil || !*lua.Nesting {
		t.Error("lua.Nesting should survive from the user layer")
	}
	if m.Current() != cfg {
		t.Error("Current() should return the loaded config")
	}
}

func TestManagerKeepsPreviousOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[comment]\npadding = false\n")

	m := NewManager(WithLayer("user", path))
	first, err := m.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	writeFile(t, path, "[comment\n")
	if _, err := m.Load(); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if m.Current() != first {
		t.Error("Current() changed after a failed load")
	}
}

func TestManagerDefaultsBeforeLoad(t *testing.T) {
	m := NewManager()
	if cfg := m.Current(); cfg == nil || !cfg.Comment.Padding {
		t.Errorf("Current() = %+v, want defaults", cfg)
	}
}

func TestDefaultLayers(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "mine.toml")

	layers := DefaultLayers(user, dir)
	if len(layers) != 1 || layers[0].Path != user {
		t.Fatalf("DefaultLayers() = %v, want only the user layer", layers)
	}

	writeFile(t, filepath.Join(dir, ".commentary.yaml"), "")
	layers = DefaultLayers(user, dir)
	if len(layers) != 2 || layers[1].Name != "project" {
		t.Fatalf("DefaultLayers() = %v, want user then project", layers)
	}
}

func TestBindResolver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[languages.go]\nline = \"///\"\n")

	m := NewManager(WithLayer("user", path))
	r := resolve.New(registry.Default())
	BindResolver(m, r)

	if _, err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s, ok := r.Style(resolve.Request{Language: "go"})
	if !ok {
		t.Fatal("Style(go) not found")
	}
	if s.Line != "///" {
		t.Errorf("Style(go).Line = %q, want ///", s.Line)
	}
}

func TestEncodeDecode(t *testing.T) {
	cfg := Default()
	cfg.Comment.DefaultStyle = style.KindBlock
	cfg.Languages["lua"] = style.Override{Line: style.String("---"), Block: &style.Block{}, Nesting: style.Bool(true)}
	cfg.Filetypes["*.tmpl"] = "html"

	got, errs := Decode(cfg.Encode())
	if len(errs) != 0 {
		t.Fatalf("Decode() errors = %v", errs)
	}
	if got.Comment != cfg.Comment {
		t.Errorf("Comment = %+v, want %+v", got.Comment, cfg.Comment)
	}
	lua := got.Languages["lua"]
	if lua.Line == nil || *lua.Line != "---" || lua.Block == nil || lua.Block.Valid() || lua.Nesting == nil || !*lua.Nesting {
		t.Errorf("languages.lua = %+v", lua)
	}
	if got.Filetypes["*.tmpl"] != "html" {
		t.Errorf("Filetypes = %v", got.Filetypes)
	}
}
