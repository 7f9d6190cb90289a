package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcut/internal/models"
)

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the Whisper model variants subcut accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(models.Catalog))
			for _, entry := range models.Catalog {
				tier := ""
				if models.IsHighEnd(entry.Name) {
					tier = "high-end"
				}
				if entry.Name == models.DefaultModel {
					tier = "default"
				}
				rows = append(rows, []string{entry.Name, tier, entry.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Model", "Tier", "Notes"},
				rows,
			))
			return nil
		},
	}
}
