package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("-- script\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderDiscover(t *testing.T) {
	user := t.TempDir()
	project := t.TempDir()

	mkfile(t, filepath.Join(user, "uncomment-all.lua"))
	mkfile(t, filepath.Join(user, "wrap", "init.lua"))
	mkfile(t, filepath.Join(user, "notes.txt"))
	mkfile(t, filepath.Join(user, "empty", "README"))
	mkfile(t, filepath.Join(project, "uncomment-all.lua"))
	mkfile(t, filepath.Join(project, "local.lua"))

	l := NewLoader(WithPaths(user, project, filepath.Join(user, "missing")))
	scripts, err := l.Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	var names []string
	for _, s := range scripts {
		names = append(names, s.Name)
	}
	if want := []string{"local", "uncomment-all", "wrap"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Discover() names = %v, want %v", names, want)
	}
	for _, s := range scripts {
		if s.Name == "uncomment-all" && s.Dir != user {
			t.Errorf("uncomment-all found in %s, want the first search path", s.Dir)
		}
	}
}

func TestLoaderFind(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "one.lua"))
	mkfile(t, filepath.Join(dir, "two", "init.lua"))
	if err := os.MkdirAll(filepath.Join(dir, "broken"), 0o755); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(WithPaths(dir))

	s, err := l.Find("one")
	if err != nil || s.Path != filepath.Join(dir, "one.lua") {
		t.Errorf("Find(one) = %+v, %v", s, err)
	}
	s, err = l.Find("two")
	if err != nil || s.Path != filepath.Join(dir, "two", "init.lua") {
		t.Errorf("Find(two) = %+v, %v", s, err)
	}
	if _, err := l.Find("broken"); !errors.Is(err, ErrNoEntryPoint) {
		t.Errorf("Find(broken) error = %v, want ErrNoEntryPoint", err)
	}
	if _, err := l.Find("nope"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("Find(nope) error = %v, want ErrScriptNotFound", err)
	}
}

func TestLoaderResolve(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "named.lua"))
	direct := filepath.Join(t.TempDir(), "direct.lua")
	mkfile(t, direct)

	l := NewLoader(WithPaths(dir))
	tests := []struct {
		arg  string
		want string
	}{
		{direct, direct},
		{"named", filepath.Join(dir, "named.lua")},
		{"named.lua", filepath.Join(dir, "named.lua")},
	}
	for _, tt := range tests {
		got, err := l.Resolve(tt.arg)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}
