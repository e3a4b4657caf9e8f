// Package fileutil provides small filesystem and file-naming helpers shared
// by the splitting and joining stages.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and parents) when missing. A pre-existing
// directory is not an error.
func EnsureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("empty directory path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// NormalizeExt returns ext with a leading dot, falling back when ext is
// empty. NormalizeExt("mp4", ".mkv") yields ".mp4".
func NormalizeExt(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = fallback
	}
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// DefaultExt returns the extension of inputPath, or ".mp4" for inputs
// without one. Chunks inherit the source container unless overridden.
func DefaultExt(inputPath string) string {
	if ext := filepath.Ext(inputPath); ext != "" {
		return ext
	}
	return ".mp4"
}
