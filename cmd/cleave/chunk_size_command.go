package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"cleave/internal/plan"
	"cleave/internal/services"
	"cleave/internal/splitting"
	"cleave/internal/timeutil"
)

func newChunkSizeCommand(ctx *commandContext) *cobra.Command {
	var targetMB float64
	var minSeconds, maxSeconds float64
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "chunk-size <input>",
		Short: "Split a video into chunks of an approximate target size",
		Long: `Probe the source bitrate and split into chunks of roughly --target-mb
megabytes each. The whole-file bitrate stands in for every chunk, so real
chunk sizes deviate from the target where bitrate varies.`,
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

			result, err := ctx.prober(cfg).Inspect(cmd.Context(), input)
			if err != nil {
				return services.Wrap(services.ErrProbe, "chunk-size", "", err)
			}
			duration := result.DurationSeconds()
			if math.IsNaN(duration) || duration <= 0 {
				return services.Wrap(services.ErrProbe, "chunk-size", "could not determine source duration", nil)
			}
			bitrate := result.EffectiveBitRate()

			outDir, prefix, ext, mode := flags.resolve(cmd, cfg)
			segmentPlan, err := plan.BySize(plan.SizeRequest{
				TargetMB:   targetMB,
				BitrateBPS: bitrate,
				MinSeconds: minSeconds,
				MaxSeconds: maxSeconds,
			}, mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Duration", "Size", "Bitrate", "Target", "Segment time"},
				[][]string{{
					timeutil.FormatSeconds(duration),
					fmt.Sprintf("%.2fMB", float64(result.SizeBytes())/(1024*1024)),
					fmt.Sprintf("%.1f kbps", float64(bitrate)/1000),
					fmt.Sprintf("%.1fMB", targetMB),
					fmt.Sprintf("%.3fs", segmentPlan.SegmentSeconds),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))

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

			fmt.Fprintf(out, "Wrote %d chunks to %s\n", len(chunks), outDir)
			return nil
		},
	}

	cmd.Flags().Float64Var(&targetMB, "target-mb", 0, "Approximate target chunk size in MB (required)")
	_ = cmd.MarkFlagRequired("target-mb")
	cmd.Flags().Float64Var(&minSeconds, "min-seconds", 0, "Clamp the estimated segment time to at least this")
	cmd.Flags().Float64Var(&maxSeconds, "max-seconds", 0, "Clamp the estimated segment time to at most this")
	flags.register(cmd)

	return cmd
}
