package splitting

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"cleave/internal/fileutil"
	"cleave/internal/plan"
	"cleave/internal/services"
	"cleave/internal/services/ffmpeg"
)

// Engine is the segmentation capability the stage needs from the media engine.
type Engine interface {
	Segment(ctx context.Context, req ffmpeg.SegmentRequest, onLine func(string)) error
}

// Request describes one segmentation run.
type Request struct {
	Input  string
	OutDir string
	Prefix string
	// Ext overrides the chunk extension; empty means inherit from the input.
	Ext  string
	Plan plan.Plan
}

// Chunk is one ordered output file of a segmentation run.
type Chunk struct {
	Index int
	Path  string
}

// Segmenter orchestrates engine-driven splitting.
type Segmenter struct {
	engine Engine
	logger *slog.Logger
}

// New constructs a Segmenter.
func New(engine Engine, logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{engine: engine, logger: logger}
}

// Split cuts the source per the plan and returns the produced chunks in
// ascending index order. The output directory is created when missing.
// In copy mode actual boundaries snap to source keyframes, so chunk
// durations can differ from the plan by up to one keyframe interval.
func (s *Segmenter) Split(ctx context.Context, req Request) ([]Chunk, error) {
	prefix := strings.TrimSpace(req.Prefix)
	if prefix == "" {
		return nil, services.Wrap(services.ErrSegmentation, "split", "chunk prefix required", nil)
	}
	ext := fileutil.NormalizeExt(req.Ext, fileutil.DefaultExt(req.Input))

	if err := fileutil.EnsureDir(req.OutDir); err != nil {
		return nil, services.Wrap(services.ErrSegmentation, "split", "prepare output directory", err)
	}

	template := filepath.Join(req.OutDir, prefix+"_%03d"+ext)
	s.logger.Info("splitting source",
		slog.String("input", req.Input),
		slog.Float64("segment_seconds", req.Plan.SegmentSeconds),
		slog.String("mode", string(req.Plan.Mode)),
		slog.String("template", template),
	)

	err := s.engine.Segment(ctx, ffmpeg.SegmentRequest{
		Input:          req.Input,
		OutputTemplate: template,
		SegmentSeconds: req.Plan.SegmentSeconds,
		Copy:           req.Plan.Mode == plan.ModeCopy,
	}, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrSegmentation, "split", "", err)
	}

	chunks, err := collectChunks(req.OutDir, prefix, ext)
	if err != nil {
		return nil, services.Wrap(services.ErrSegmentation, "split", "inspect output directory", err)
	}
	if len(chunks) == 0 {
		return nil, services.Wrap(services.ErrSegmentation, "split",
			fmt.Sprintf("no chunks produced in %s (source shorter than one segment?)", req.OutDir), nil)
	}

	s.logger.Info("splitting finished", slog.Int("chunks", len(chunks)))
	return chunks, nil
}

// collectChunks gathers files matching {prefix}_{digits}{ext} and orders
// them by index.
func collectChunks(dir, prefix, ext string) ([]Chunk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	chunks := make([]Chunk, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		index, ok := parseChunkIndex(entry.Name(), prefix, ext)
		if !ok {
			continue
		}
		chunks = append(chunks, Chunk{Index: index, Path: filepath.Join(dir, entry.Name())})
	}
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Index < chunks[j].Index })
	return chunks, nil
}

func parseChunkIndex(name, prefix, ext string) (int, bool) {
	if !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ext) {
		return 0, false
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"_"), ext)
	if len(middle) < 3 {
		return 0, false
	}
	index, err := strconv.Atoi(middle)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
