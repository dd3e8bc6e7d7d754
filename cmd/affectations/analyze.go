// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/affectations/internal/pipeline"
)

// analyzeArgs accepts exactly two positive integers, the year and the rank.
func analyzeArgs(cmd *cobra.Command, args []string) error {
	_, _, err := parseYearRank(args)
	return err
}

func parseYearRank(args []string) (year, rank int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected <year> <rank>, got %d argument(s)", pipeline.ErrInvalidArgs, len(args))
	}
	year, err = positiveInt("year", args[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err = positiveInt("rank", args[1])
	if err != nil {
		return 0, 0, err
	}
	return year, rank, nil
}

func positiveInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s %q", pipeline.ErrInvalidArgs, name, s)
	}
	return n, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	year, rank, err := parseYearRank(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	a, err := pipeline.NewAnalyzer(cfg, logger)
	if err != nil {
		return err
	}
	_, err = a.Run(cmd.Context(), year, rank, os.Stdout)
	return err
}
