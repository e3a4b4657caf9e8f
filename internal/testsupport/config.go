// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"cleave/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutDir = filepath.Join(base, "chunks")
	cfg.Paths.LogDir = ""
	return &cfg
}

// WriteConfigFile renders cfg-relevant settings as a TOML file under a temp
// directory and returns its path.
func WriteConfigFile(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cleave.toml")
	WriteFile(t, path, []byte(content))
	return path
}
