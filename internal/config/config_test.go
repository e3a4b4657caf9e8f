package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if !cfg.Split.Copy || !cfg.Join.Copy {
		t.Fatal("stream copy should default on")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing file, got exists for %s", path)
	}
	if cfg.Split.Prefix != "chunk" {
		t.Fatalf("expected default prefix, got %q", cfg.Split.Prefix)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleave.toml")
	content := `
[paths]
out_dir = "parts"

[tools]
ffmpeg = "  /opt/ffmpeg/bin/ffmpeg  "

[split]
prefix = "part"
copy = false

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected load from %s, got %s (exists=%v)", path, resolved, exists)
	}
	if !filepath.IsAbs(cfg.Paths.OutDir) || filepath.Base(cfg.Paths.OutDir) != "parts" {
		t.Fatalf("out_dir not normalized: %q", cfg.Paths.OutDir)
	}
	if cfg.Tools.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg not trimmed: %q", cfg.Tools.FFmpeg)
	}
	if cfg.Split.Prefix != "part" || cfg.Split.Copy {
		t.Fatalf("split section not applied: %+v", cfg.Split)
	}
	if cfg.Join.Copy != true {
		t.Fatal("unset join section should keep defaults")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		detail  string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"prefix with separator", "[split]\nprefix = \"a/b\"\n", "split.prefix"},
		{"malformed toml", "[split\n", "parse config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cleave.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.detail) {
				t.Fatalf("expected %q in error, got %v", tc.detail, err)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := ExpandPath("~/chunks")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if expanded != filepath.Join(home, "chunks") {
		t.Fatalf("expanded = %q", expanded)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after creation")
	}
	if cfg.Split.Prefix != "chunk" {
		t.Fatalf("sample should carry defaults, got prefix %q", cfg.Split.Prefix)
	}
}
