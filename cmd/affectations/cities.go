// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/affectations/internal/city"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the recognised cities in match order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range city.NewResolver(cfg.Cities...).Cities() {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
