package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEngineExecutor stands in for the ffmpeg binary. Segment invocations
// materialize chunk files from the output template; concat invocations
// record the list file content and write the output.
type fakeEngineExecutor struct {
	segments int
	err      error

	calls       [][]string
	listContent string
}

func (f *fakeEngineExecutor) Run(_ context.Context, _ string, args []string, _ func(string)) error {
	f.calls = append(f.calls, append([]string(nil), args...))
	if f.err != nil {
		return f.err
	}

	last := args[len(args)-1]
	if strings.Contains(last, "%03d") {
		for i := 0; i < f.segments; i++ {
			if err := os.WriteFile(fmt.Sprintf(last, i), []byte("chunk"), 0o644); err != nil {
				return err
			}
		}
		return nil
	}

	for i, arg := range args {
		if arg == "-i" && i+1 < len(args) {
			if raw, err := os.ReadFile(args[i+1]); err == nil {
				f.listContent = string(raw)
			}
		}
	}
	return os.WriteFile(last, []byte("joined"), 0o644)
}

func (f *fakeEngineExecutor) lastArgs() string {
	if len(f.calls) == 0 {
		return ""
	}
	return strings.Join(f.calls[len(f.calls)-1], " ")
}

// fakeProbeRunner stands in for the ffprobe binary.
type fakeProbeRunner struct {
	payload string
	err     error
}

func (f *fakeProbeRunner) Run(_ context.Context, _ string, _ []string) ([]byte, error) {
	if f.err != nil {
		return []byte("probe diagnostics"), f.err
	}
	return []byte(f.payload), nil
}

func probePayload(duration string, bitrate string, size string) string {
	return fmt.Sprintf(`{"streams": [], "format": {"duration": %q, "bit_rate": %q, "size": %q}}`, duration, bitrate, size)
}

// runCLI executes the root command with fake external tools and a config
// path that never resolves to the developer's real configuration.
func runCLI(t *testing.T, engine *fakeEngineExecutor, probe *fakeProbeRunner, args ...string) (string, error) {
	t.Helper()

	oldEngine, oldProbe := engineExecutor, probeRunner
	engineExecutor = engine
	if probe != nil {
		probeRunner = probe
	}
	t.Cleanup(func() {
		engineExecutor, probeRunner = oldEngine, oldProbe
	})

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	configPath := filepath.Join(t.TempDir(), "cleave.toml")
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fixture"), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
