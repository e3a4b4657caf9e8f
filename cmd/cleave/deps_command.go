package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleave/internal/deps"
	"cleave/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external media binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			requirements := deps.Requirements(cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
			statuses := deps.Check(requirements)
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for i, status := range statuses {
				available := "yes"
				if !status.Available {
					available = "no"
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, requirements[i].Description, available, status.Detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Needed for", "Available", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missing > 0 {
				return services.Wrap(services.ErrUsage, "deps", fmt.Sprintf("%d required binaries missing", missing), nil)
			}
			return nil
		},
	}
}
