package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b")
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("ensure nested: %v", err)
	}
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("ensure existing: %v", err)
	}
	info, err := os.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", nested, err)
	}
	if err := EnsureDir("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if FileExists(path) {
		t.Fatal("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if !FileExists(path) {
		t.Fatal("existing file reported as missing")
	}
	if FileExists(dir) {
		t.Fatal("directory reported as regular file")
	}
}

func TestNormalizeExt(t *testing.T) {
	cases := []struct {
		ext, fallback, want string
	}{
		{"mp4", ".mkv", ".mp4"},
		{".mp4", ".mkv", ".mp4"},
		{"", ".mkv", ".mkv"},
		{"", "mkv", ".mkv"},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := NormalizeExt(tc.ext, tc.fallback); got != tc.want {
			t.Fatalf("NormalizeExt(%q, %q) = %q, want %q", tc.ext, tc.fallback, got, tc.want)
		}
	}
}

func TestDefaultExt(t *testing.T) {
	if got := DefaultExt("/media/movie.mkv"); got != ".mkv" {
		t.Fatalf("DefaultExt mkv = %q", got)
	}
	if got := DefaultExt("/media/recording"); got != ".mp4" {
		t.Fatalf("DefaultExt fallback = %q", got)
	}
}
