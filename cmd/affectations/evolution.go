// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/affectations/internal/history"
	"github.com/pdiddy/affectations/internal/report"
	"github.com/pdiddy/affectations/pkg/types"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution",
	Short: "Print per-city evolution metrics from the stored history",
	Long: `Evolution loads statistiques_par_ville.csv from the output directory and
prints, for every city with at least two years on record, the average yearly
change of the remaining-place percentage, the trend over the last three years,
the range of remaining places, the volatility, and the stability score.`,
	Args: cobra.NoArgs,
	RunE: runEvolution,
}

func init() {
	evolutionCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(evolutionCmd)
}

// cityEvolution is one entry of the JSON output.
type cityEvolution struct {
	City string `json:"city"`
	types.EvolutionMetrics
}

func runEvolution(cmd *cobra.Command, args []string) error {
	snap, err := report.NewCSVStore(cfg.OutputDir, logger).Load()
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatEvolution(os.Stdout, snap, jsonOutput)
}

func formatEvolution(w io.Writer, snap history.Snapshot, jsonOutput bool) error {
	entries := []cityEvolution{}
	for _, city := range snap.CityNames() {
		if m, ok := snap.Evolution(city); ok {
			entries = append(entries, cityEvolution{City: city, EvolutionMetrics: m})
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No city has two years of history yet.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %9s  %9s  %5s  %5s  %10s  %9s\n",
		"City", "Avg/yr", "Trend 3y", "Min", "Max", "Volatility", "Stability")
	fmt.Fprintln(w, strings.Repeat("-", 82))
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s  %9.1f  %9.1f  %5d  %5d  %10.2f  %9.1f\n",
			e.City, e.AverageEvolution, e.RecentTrend, e.MinRemaining, e.MaxRemaining,
			e.Volatility, e.StabilityScore)
	}
	return nil
}
