package target

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// fakeHome redirects HOME and the XDG config tree into a temp directory.
func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func TestDiscoverFindsExistingCandidates(t *testing.T) {
	home := fakeHome(t)
	claudeSkills := filepath.Join(home, ".claude", "skills")
	if err := os.MkdirAll(claudeSkills, 0755); err != nil {
		t.Fatal(err)
	}
	gooseSkills := filepath.Join(home, ".config", "goose", "skills")
	if err := os.MkdirAll(gooseSkills, 0755); err != nil {
		t.Fatal(err)
	}

	dirs := Discover(nil)

	found := make(map[string]string, len(dirs))
	for _, d := range dirs {
		found[d.Tool] = d.Path
	}
	if found["claude-code"] != claudeSkills {
		t.Errorf("claude-code = %q, want %q", found["claude-code"], claudeSkills)
	}
	if found["goose"] != gooseSkills {
		t.Errorf("goose = %q, want %q", found["goose"], gooseSkills)
	}
	if len(dirs) != 2 {
		t.Errorf("discovered %d targets, want 2: %v", len(dirs), dirs)
	}
}

func TestDiscoverSkipsDisabledTools(t *testing.T) {
	home := fakeHome(t)
	if err := os.MkdirAll(filepath.Join(home, ".claude", "skills"), 0755); err != nil {
		t.Fatal(err)
	}

	dirs := Discover([]string{"claude-code"})
	if len(dirs) != 0 {
		t.Errorf("discovered %v, want nothing", dirs)
	}
}

func TestDiscoverIgnoresFilesAtCandidatePaths(t *testing.T) {
	home := fakeHome(t)
	if err := os.MkdirAll(filepath.Join(home, ".claude"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".claude", "skills"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if dirs := Discover(nil); len(dirs) != 0 {
		t.Errorf("discovered %v, want nothing", dirs)
	}
}

func TestExplicitValidDirectory(t *testing.T) {
	dir := t.TempDir()
	d, err := Explicit(dir)
	if err != nil {
		t.Fatalf("Explicit: %v", err)
	}
	if !filepath.IsAbs(d.Path) {
		t.Errorf("Path = %q, want absolute", d.Path)
	}
	if d.Tool != "" {
		t.Errorf("Tool = %q, want empty for explicit target", d.Tool)
	}
}

func TestExplicitMissingIsHardError(t *testing.T) {
	_, err := Explicit(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestExplicitFileIsHardError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Explicit(file)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestKnownReportsExistence(t *testing.T) {
	home := fakeHome(t)
	if err := os.MkdirAll(filepath.Join(home, ".cursor", "skills"), 0755); err != nil {
		t.Fatal(err)
	}

	for _, p := range Known() {
		want := p.Tool == "cursor"
		if p.Exists != want {
			t.Errorf("%s: Exists = %v, want %v", p.Tool, p.Exists, want)
		}
	}
}
