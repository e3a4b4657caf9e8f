package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// WriteConcatList writes a concat-demuxer list file naming the inputs in
// order and returns its path. Paths are made absolute and single quotes are
// escaped per the demuxer's quoting rules. The list is ephemeral; callers
// remove it once the engine run finishes.
func WriteConcatList(dir string, inputs []string) (string, error) {
	if len(inputs) == 0 {
		return "", errors.New("concat list: no inputs")
	}
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}

	var builder strings.Builder
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return "", fmt.Errorf("resolve %q: %w", input, err)
		}
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&builder, "file '%s'\n", escaped)
	}

	path := filepath.Join(dir, fmt.Sprintf("concat-%s.txt", uuid.NewString()))
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}
	return path, nil
}
