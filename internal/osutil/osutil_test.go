package osutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMkdirExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := Mkdir(dir); err != nil {
		t.Fatal(err)
	}
	if err := Mkdir(dir); err != nil {
		t.Fatalf("second Mkdir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() || IsFile(dir) {
		t.Fatalf("%s should be a directory", dir)
	}
}

func TestMergeOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	dst := filepath.Join(tmpDir, "dst")

	os.MkdirAll(src, 0755)
	os.MkdirAll(dst, 0755)
	os.WriteFile(filepath.Join(src, "a.png"), []byte("new"), 0644)
	os.WriteFile(filepath.Join(dst, "a.png"), []byte("old"), 0644)
	os.WriteFile(filepath.Join(dst, "keep.png"), []byte("keep"), 0644)

	if err := Merge(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("a.png = %q, want %q", got, "new")
	}
	if !IsFile(filepath.Join(dst, "keep.png")) {
		t.Error("merge removed an existing file")
	}
}

func TestGlobInAlternatives(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"logo-ldm-16.png", "logo-ldm-opensource.ico", "logo-ldm-opensource.svg", "app.png"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := GlobIn(tmpDir, "logo-ldm-*.{png,ico}")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(tmpDir, "logo-ldm-16.png"),
		filepath.Join(tmpDir, "logo-ldm-opensource.ico"),
	}
	if len(got) != len(want) {
		t.Fatalf("GlobIn = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGlobInNoMatches(t *testing.T) {
	got, err := GlobIn(t.TempDir(), "*.ico")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
