package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cleave/internal/testsupport"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCLI(t, &fakeEngineExecutor{}, nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration to "+target) {
		t.Fatalf("unexpected output: %q", out)
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("sample not written: %v", err)
	}
	if !strings.Contains(string(raw), "[split]") {
		t.Fatalf("sample content looks wrong: %q", raw)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, err := runCLI(t, &fakeEngineExecutor{}, nil, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}

	_, err = runCLI(t, &fakeEngineExecutor{}, nil, "config", "init", "--path", target, "--overwrite")
	if err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}
}

func TestConfigValidateReportsSettings(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "pieces")
	path := testsupport.WriteConfigFile(t, "[paths]\nout_dir = \""+outDir+"\"\n")

	cmd := newRootCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", path, "config", "validate"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config validate failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Config path: "+path) {
		t.Fatalf("resolved path missing: %q", got)
	}
	if !strings.Contains(got, outDir) {
		t.Fatalf("configured out dir missing: %q", got)
	}
	if !strings.Contains(got, "Configuration valid") {
		t.Fatalf("validation verdict missing: %q", got)
	}
}

func TestConfigValidateFallsBackToDefaults(t *testing.T) {
	out, err := runCLI(t, &fakeEngineExecutor{}, nil, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "defaults were used") {
		t.Fatalf("expected defaults notice, got %q", out)
	}
}

func TestDepsReportsMissingBinaries(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	out, err := runCLI(t, &fakeEngineExecutor{}, nil, "deps")
	if err == nil || !strings.Contains(err.Error(), "required binaries missing") {
		t.Fatalf("expected missing binaries error, got %v", err)
	}
	if !strings.Contains(out, "ffmpeg") || !strings.Contains(out, "ffprobe") {
		t.Fatalf("table should list both tools: %q", out)
	}
}
