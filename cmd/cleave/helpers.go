package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cleave/internal/config"
	"cleave/internal/plan"
)

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveInputFile makes the argument absolute and verifies it names an
// existing regular file before any external tool runs.
func resolveInputFile(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("input not found: %s", absPath)
		}
		return "", fmt.Errorf("inspect input: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}
	return absPath, nil
}

// splitFlags carries the options shared by the two chunking subcommands.
type splitFlags struct {
	outDir string
	prefix string
	ext    string
	copy   bool
	noCopy bool
}

func (f *splitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.outDir, "out-dir", "", "Output directory for chunks (default from config)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Chunk filename prefix (default from config)")
	cmd.Flags().StringVar(&f.ext, "ext", "", "Chunk extension (default: input extension)")
	registerCopyFlags(cmd, &f.copy, &f.noCopy)
}

// resolve merges flag values with config defaults.
func (f *splitFlags) resolve(cmd *cobra.Command, cfg *config.Config) (outDir, prefix, ext string, mode plan.Mode) {
	outDir = f.outDir
	if outDir == "" {
		outDir = cfg.Paths.OutDir
	}
	prefix = f.prefix
	if prefix == "" {
		prefix = cfg.Split.Prefix
	}
	return outDir, prefix, f.ext, resolveMode(cmd, cfg.Split.Copy, f.copy, f.noCopy)
}

func registerCopyFlags(cmd *cobra.Command, copyFlag, noCopyFlag *bool) {
	cmd.Flags().BoolVar(copyFlag, "copy", false, "Stream-copy without re-encoding (default from config)")
	cmd.Flags().BoolVar(noCopyFlag, "no-copy", false, "Re-encode for exact cuts")
	cmd.MarkFlagsMutuallyExclusive("copy", "no-copy")
}

// resolveMode picks stream copy unless --no-copy was given, starting from
// the configured default when neither flag is present.
func resolveMode(cmd *cobra.Command, configDefault bool, copyFlag, noCopyFlag bool) plan.Mode {
	copyStreams := configDefault
	if cmd.Flags().Changed("copy") {
		copyStreams = copyFlag
	}
	if noCopyFlag {
		copyStreams = false
	}
	if copyStreams {
		return plan.ModeCopy
	}
	return plan.ModeReEncode
}
