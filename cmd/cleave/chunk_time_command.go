package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleave/internal/plan"
	"cleave/internal/splitting"
)

func newChunkTimeCommand(ctx *commandContext) *cobra.Command {
	var segmentTime string
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "chunk-time <input>",
		Short: "Split a video into fixed-duration chunks",
		Long: `Split a video into chunks of a fixed duration. With stream copy (the
default) cut points snap to source keyframes, so chunk boundaries can miss
the requested time by up to one keyframe interval; pass --no-copy for
exact, re-encoded cuts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			input, err := resolveInputFile(args[0])
			if err != nil {
				return err
			}

			outDir, prefix, ext, mode := flags.resolve(cmd, cfg)
			segmentPlan, err := plan.ByTime(segmentTime, mode)
			if err != nil {
				return err
			}

			segmenter := splitting.New(ctx.engine(cfg), logger)
			chunks, err := segmenter.Split(cmd.Context(), splitting.Request{
				Input:  input,
				OutDir: outDir,
				Prefix: prefix,
				Ext:    ext,
				Plan:   segmentPlan,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d chunks to %s\n", len(chunks), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&segmentTime, "segment-time", "", "Chunk duration as seconds or HH:MM:SS (required)")
	_ = cmd.MarkFlagRequired("segment-time")
	flags.register(cmd)

	return cmd
}
