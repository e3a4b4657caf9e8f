package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleave/internal/config"
	"cleave/internal/joining"
	"cleave/internal/plan"
	"cleave/internal/services"
)

func newConcatCommand(ctx *commandContext) *cobra.Command {
	var dirFlag, extFlag, outputFlag string
	var copyFlag, noCopyFlag bool

	cmd := &cobra.Command{
		Use:   "concat [files...]",
		Short: "Join ordered chunk files into a single video",
		Long: `Join chunks into one output file. Provide either an explicit file list
(used verbatim, in the given order) or --dir with --ext to take every
matching file in a directory, sorted lexicographically by filename. Any
existing file at the output path is replaced. Stream-copy joining requires
all chunks to share codec parameters; pass --no-copy to re-encode instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (dirFlag == "") == (len(args) == 0) {
				return services.Wrap(services.ErrUsage, "concat", "provide either --dir or an explicit file list", nil)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputs := args
			if dirFlag != "" {
				dir, err := config.ExpandPath(dirFlag)
				if err != nil {
					return err
				}
				inputs, err = joining.CollectDir(dir, extFlag)
				if err != nil {
					return err
				}
			}

			output := outputFlag
			if output == "" {
				output = cfg.Join.Output
			}

			mode := resolveMode(cmd, cfg.Join.Copy, copyFlag, noCopyFlag)
			joiner := joining.New(ctx.engine(cfg), logger)
			written, err := joiner.Join(cmd.Context(), joining.Request{
				Inputs: inputs,
				Output: output,
				Copy:   mode == plan.ModeCopy,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s from %d chunks\n", written, len(inputs))
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory of chunks to join")
	cmd.Flags().StringVar(&extFlag, "ext", "", "Extension filter when using --dir")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default from config)")
	registerCopyFlags(cmd, &copyFlag, &noCopyFlag)

	return cmd
}
