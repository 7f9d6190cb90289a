package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcut/internal/deps"
	"subcut/internal/gpu"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show device detection and external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			out := cmd.OutOrStdout()

			decision := gpu.Detect()
			device := string(decision.Accelerator)
			detail := "no probe was conclusive; CPU assumed"
			if decision.Probe != "" {
				detail = fmt.Sprintf("decided by %s probe", decision.Probe)
			}
			if decision.Fatal() {
				device = "unusable"
				detail = decision.Err.Error()
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Device", "Detail"},
				[][]string{{device, detail}},
			))

			rows := make([][]string, 0, 4)
			for _, status := range deps.Check(deps.Requirements()) {
				availability := "missing"
				if status.Available {
					availability = "ok"
				} else if status.Optional {
					availability = "missing (optional)"
				}
				rows = append(rows, []string{status.Name, availability, status.Description})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Status", "Purpose"},
				rows,
			))

			fmt.Fprintf(out, "Model cache: %s\nWork dir:    %s\n", cfg.Paths.ModelCacheDir, cfg.Paths.WorkDir)
			return nil
		},
	}
}
