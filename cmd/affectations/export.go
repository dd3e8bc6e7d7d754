// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/affectations/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored history as YAML or JSON",
	Long: `Export loads the CSV history from the output directory and writes
historique.yaml or historique.json next to it, with every city's yearly
statistics, its evolution metrics, and the global summary rows.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported format %q (use yaml or json)", format)
	}
	cmd.SilenceUsage = true

	snap, err := report.NewCSVStore(cfg.OutputDir, logger).Load()
	if err != nil {
		return err
	}

	var path string
	switch format {
	case "json":
		path, err = report.ExportJSON(snap, cfg.OutputDir)
	default:
		path, err = report.ExportYAML(snap, cfg.OutputDir)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d cities and %d years to %s\n", len(snap.Cities), len(snap.Summary), path)
	return nil
}
