// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the affectations CLI. The root command
// analyses one year; subcommands inspect and export the accumulated history.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/affectations/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Set by the root PersistentPreRunE before any subcommand runs.
var (
	cfg    types.AnalysisConfig
	logger = zap.NewNop()
)

// rootCmd analyses one year and hosts the history subcommands.
var rootCmd = &cobra.Command{
	Use:   "affectations <year> <rank>",
	Short: "Analyse yearly internship placement rankings",
	Long: `affectations reads input/affectations_<year>.pdf, extracts the ranked
placement records of one specialty, and counts per city how many places were
still available from <rank> onwards.

Each run writes resultats_<year>.txt and merges the year into the history kept
in statistiques_par_ville.csv, resume_global.csv and statistiques_internat.xlsx.
Re-running a year replaces its values.`,
	Example: "  affectations 2024 120\n  affectations --backend pdftotext 2023 95",
	Args:    analyzeArgs,
	RunE:    runAnalyze,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := newLogger(c.LogLevel)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
}

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"input-dir":  "input_dir",
	"output-dir": "output_dir",
	"specialty":  "specialty",
	"backend":    "backend",
	"pdftotext":  "pdftotext_path",
	"city":       "cities",
	"log-level":  "log_level",
}

func init() {
	cobra.OnInitialize(initConfig)

	def := types.DefaultAnalysisConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./affectations.yaml or ~/.config/affectations/affectations.yaml)")
	flags.String("input-dir", def.InputDir, "directory holding affectations_<year>.pdf")
	flags.String("output-dir", def.OutputDir, "directory receiving reports and history")
	flags.String("specialty", string(def.Specialty), "specialty whose records are counted")
	flags.String("backend", string(def.Backend), "text extraction backend: ledongthuc, dslipak, or pdftotext")
	flags.String("pdftotext", def.PdftotextPath, "pdftotext binary for the pdftotext backend")
	flags.StringSlice("city", nil, "additional city name to recognise (repeatable)")
	flags.String("log-level", def.LogLevel, "log level: debug, info, warn, or error")

	if err := bindFlags(flags, flagKeys); err != nil {
		panic(err)
	}
}

// bindFlags ties each flag to its viper key so that config files and
// AFFECTATIONS_* variables apply when the flag is not set.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("affectations")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "affectations"))
		}
	}

	viper.SetEnvPrefix("AFFECTATIONS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, environment, and file settings.
func loadConfig() (types.AnalysisConfig, error) {
	var c types.AnalysisConfig
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("reading configuration: %w", err)
	}
	return c, nil
}

// newLogger builds a console logger on stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
