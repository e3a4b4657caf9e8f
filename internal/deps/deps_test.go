package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRequirementsCoverBothTools(t *testing.T) {
	reqs := Requirements("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "ffmpeg" || reqs[1].Command != "ffprobe" {
		t.Fatalf("unexpected commands: %+v", reqs)
	}
}

func TestCheckReportsMissingBinary(t *testing.T) {
	statuses := Check([]Requirement{{Name: "FFmpeg", Command: "definitely-not-a-binary-xyz"}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected unavailable status")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
}

func TestCheckReportsUnconfiguredCommand(t *testing.T) {
	statuses := Check([]Requirement{{Name: "FFmpeg", Command: "  "}})
	if statuses[0].Available || statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected status: %+v", statuses[0])
	}
}

func TestCheckResolvesAvailableBinary(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "fakeffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	t.Setenv("PATH", dir)

	statuses := Check([]Requirement{{Name: "FFmpeg", Command: "fakeffmpeg"}})
	if !statuses[0].Available {
		t.Fatalf("expected available status, got %+v", statuses[0])
	}
	if statuses[0].Detail != fake {
		t.Fatalf("expected resolved path %s, got %s", fake, statuses[0].Detail)
	}
}
