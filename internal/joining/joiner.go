package joining

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cleave/internal/fileutil"
	"cleave/internal/services"
	"cleave/internal/services/ffmpeg"
)

// Engine is the concatenation capability the stage needs from the media engine.
type Engine interface {
	Concat(ctx context.Context, req ffmpeg.ConcatRequest, onLine func(string)) error
}

// Request describes one join run over an already-ordered chunk set.
type Request struct {
	Inputs []string
	Output string
	Copy   bool
}

// Joiner orchestrates engine-driven concatenation.
type Joiner struct {
	engine Engine
	logger *slog.Logger
}

// New constructs a Joiner.
func New(engine Engine, logger *slog.Logger) *Joiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Joiner{engine: engine, logger: logger}
}

// CollectDir lists the files in dir carrying ext, sorted lexicographically
// by filename. The sort coincides with temporal order only when chunk names
// use the zero-padded index pattern.
func CollectDir(dir, ext string) ([]string, error) {
	ext = fileutil.NormalizeExt(ext, "")
	if ext == "" {
		return nil, services.Wrap(services.ErrUsage, "collect chunks", "extension required with --dir", nil)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrConcatenation, "collect chunks", fmt.Sprintf("list %s", dir), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	inputs := make([]string, len(names))
	for i, name := range names {
		inputs[i] = filepath.Join(dir, name)
	}
	return inputs, nil
}

// Join concatenates the request's inputs into a single file at the output
// path, replacing any existing file there. The concat list fed to the
// engine is ephemeral and removed before returning.
func (j *Joiner) Join(ctx context.Context, req Request) (string, error) {
	if len(req.Inputs) == 0 {
		return "", services.Wrap(services.ErrConcatenation, "join", "no input chunks", nil)
	}
	if strings.TrimSpace(req.Output) == "" {
		return "", services.Wrap(services.ErrConcatenation, "join", "output path required", nil)
	}
	for _, input := range req.Inputs {
		if !fileutil.FileExists(input) {
			return "", services.Wrap(services.ErrConcatenation, "join", fmt.Sprintf("missing chunk %s", input), nil)
		}
	}

	if parent := filepath.Dir(req.Output); parent != "." {
		if err := fileutil.EnsureDir(parent); err != nil {
			return "", services.Wrap(services.ErrConcatenation, "join", "prepare output directory", err)
		}
	}

	listPath, err := ffmpeg.WriteConcatList("", req.Inputs)
	if err != nil {
		return "", services.Wrap(services.ErrConcatenation, "join", "", err)
	}
	defer os.Remove(listPath)

	mode := "reencode"
	if req.Copy {
		mode = "copy"
	}
	j.logger.Info("joining chunks",
		slog.Int("inputs", len(req.Inputs)),
		slog.String("output", req.Output),
		slog.String("mode", mode),
	)

	err = j.engine.Concat(ctx, ffmpeg.ConcatRequest{
		ListPath: listPath,
		Output:   req.Output,
		Copy:     req.Copy,
	}, nil)
	if err != nil {
		return "", services.Wrap(services.ErrConcatenation, "join", "", err)
	}

	j.logger.Info("joining finished", slog.String("output", req.Output))
	return req.Output, nil
}
